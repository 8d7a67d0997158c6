package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planFixture(t *testing.T, root *DirNode, rootName string) *Plan {
	t.Helper()
	require.NoError(t, allocIdents(root))
	plan, err := PlanTypes(root, rootName)
	require.NoError(t, err)
	return plan
}

func TestPlanDeduplicatesIdenticalShapes(t *testing.T) {
	// Two leaf directories holding one equally named, equally sized file
	// must share a single struct type.
	root := &DirNode{Name: "assets", Children: []Node{
		&DirNode{Name: "en", Children: []Node{
			&FileNode{Name: "strings.json", Data: []byte(`{"a":1}`)},
		}},
		&DirNode{Name: "fr", Children: []Node{
			&FileNode{Name: "strings.json", Data: []byte(`{"a":2}`)},
		}},
	}}

	plan := planFixture(t, root, "assets")

	en := root.Children[0].(*DirNode)
	fr := root.Children[1].(*DirNode)
	assert.Equal(t, en.TypeName, fr.TypeName)

	// One type for the shared leaf shape, one for the root.
	require.Len(t, plan.Types, 2)
}

func TestPlanDistinguishesByteLength(t *testing.T) {
	// The array length is part of the C field type, so equal names with
	// different sizes cannot share a struct.
	root := &DirNode{Name: "assets", Children: []Node{
		&DirNode{Name: "a", Children: []Node{
			&FileNode{Name: "x.bin", Data: []byte{1, 2}},
		}},
		&DirNode{Name: "b", Children: []Node{
			&FileNode{Name: "x.bin", Data: []byte{1, 2, 3}},
		}},
	}}

	plan := planFixture(t, root, "assets")

	a := root.Children[0].(*DirNode)
	b := root.Children[1].(*DirNode)
	assert.NotEqual(t, a.TypeName, b.TypeName)
	assert.Len(t, plan.Types, 3)
}

func TestPlanDistinguishesKind(t *testing.T) {
	root := &DirNode{Name: "assets", Children: []Node{
		&DirNode{Name: "a", Children: []Node{
			&FileNode{Name: "x", Data: []byte("hi")},
		}},
		&DirNode{Name: "b", Children: []Node{
			&FileNode{Name: "x", Data: []byte("hi"), Text: true},
		}},
	}}

	plan := planFixture(t, root, "assets")

	a := root.Children[0].(*DirNode)
	b := root.Children[1].(*DirNode)
	assert.NotEqual(t, a.TypeName, b.TypeName)
	assert.Len(t, plan.Types, 3)
}

func TestPlanTypeNameCollision(t *testing.T) {
	// assets/a/b and assets/a_b both derive the type base __assets_a_b;
	// the later one must get a numeric suffix.
	root := &DirNode{Name: "assets", Children: []Node{
		&DirNode{Name: "a", Children: []Node{
			&DirNode{Name: "b", Children: []Node{
				&FileNode{Name: "one.bin", Data: []byte{1}},
			}},
		}},
		&DirNode{Name: "a_b", Children: []Node{
			&FileNode{Name: "two.bin", Data: []byte{2, 3}},
		}},
	}}

	plan := planFixture(t, root, "assets")

	inner := root.Children[0].(*DirNode).Children[0].(*DirNode)
	sibling := root.Children[1].(*DirNode)
	assert.Equal(t, "__assets_a_b_t", inner.TypeName)
	assert.Equal(t, "__assets_a_b_1_t", sibling.TypeName)
	assert.NotEqual(t, inner.TypeName, sibling.TypeName)
	_ = plan
}

func TestPlanDependencyOrder(t *testing.T) {
	root := &DirNode{Name: "assets", Children: []Node{
		&DirNode{Name: "sub", Children: []Node{
			&DirNode{Name: "deep", Children: []Node{
				&FileNode{Name: "x.bin", Data: []byte{1}},
			}},
		}},
	}}

	plan := planFixture(t, root, "assets")

	// Children's types must be declared before the types containing them.
	pos := make(map[string]int, len(plan.Types))
	for i, st := range plan.Types {
		pos[st.Name] = i
	}
	for _, st := range plan.Types {
		for _, f := range st.Fields {
			if f.Kind == FieldStruct {
				assert.Less(t, pos[f.TypeName], pos[st.Name],
					"%s must be declared before %s", f.TypeName, st.Name)
			}
		}
	}

	assert.Equal(t, plan.Root, plan.Types[len(plan.Types)-1])
}

func TestPlanRootFields(t *testing.T) {
	root := &DirNode{Name: "assets", Children: []Node{
		&FileNode{Name: "a.txt", Data: []byte("hi")},
		&DirNode{Name: "sub", Children: []Node{
			&FileNode{Name: "b.bin", Data: []byte{0x01, 0x02}},
		}},
	}}

	plan := planFixture(t, root, "assets")

	require.Len(t, plan.Root.Fields, 2)
	assert.Equal(t, Field{Ident: "a_txt", Kind: FieldBytes, Size: 2}, plan.Root.Fields[0])
	assert.Equal(t, "sub", plan.Root.Fields[1].Ident)
	assert.Equal(t, FieldStruct, plan.Root.Fields[1].Kind)
	assert.Equal(t, "__assets_sub_t", plan.Root.Fields[1].TypeName)
	assert.Equal(t, "__assets_t", plan.Root.Name)
}
