package generator

import (
	"strconv"
	"strings"
)

// FieldKind distinguishes the three C representations a struct field can
// take: a byte array, a string literal array, or a nested struct.
type FieldKind int

const (
	FieldBytes FieldKind = iota
	FieldString
	FieldStruct
)

// Field is one member of a planned struct type.
type Field struct {
	Ident string
	Kind  FieldKind
	// Size is the raw byte length for file fields.
	Size int
	// TypeName is the planned struct type for directory fields.
	TypeName string
}

// StructType is one distinct directory shape, declared once in the header
// and shared by every directory with the same shape.
type StructType struct {
	Name   string
	Fields []Field
}

// Plan is the finished layout: every distinct struct type in dependency
// order (children before the types that contain them), the root type, and
// the root binding name.
type Plan struct {
	Types    []*StructType
	Root     *StructType
	RootName string
}

// shapeKey builds the canonical fingerprint of a directory's shape. The
// byte length is part of a C array type, so it participates in the key:
// two directories only share a struct type when their generated types are
// interchangeable byte for byte.
func shapeKey(fields []Field) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f.Ident)
		b.WriteByte(':')
		switch f.Kind {
		case FieldBytes:
			b.WriteByte('b')
			b.WriteString(strconv.Itoa(f.Size))
		case FieldString:
			b.WriteByte('s')
			b.WriteString(strconv.Itoa(f.Size))
		case FieldStruct:
			b.WriteByte('d')
			b.WriteString(f.TypeName)
		}
		b.WriteByte(';')
	}
	return b.String()
}

// planner assigns struct types to directories, deduplicating identical
// shapes through the shape table. Type names live in one namespace per
// compilation run, modeled as an explicit table rather than a global.
type planner struct {
	names  *identTable
	shapes map[string]*StructType
	types  []*StructType
}

// PlanTypes walks the identifier-annotated tree bottom-up and assigns each
// directory a struct type, reusing one type per distinct shape. rootName is
// the root binding identifier; it seeds the global namespace so no type
// name can collide with it.
func PlanTypes(root *DirNode, rootName string) (*Plan, error) {
	p := &planner{
		names:  newIdentTable(),
		shapes: make(map[string]*StructType),
	}
	p.names.reserve(rootName)

	rootType, err := p.planDir(root, "__"+rootName)
	if err != nil {
		return nil, err
	}

	return &Plan{Types: p.types, Root: rootType, RootName: rootName}, nil
}

func (p *planner) planDir(dir *DirNode, base string) (*StructType, error) {
	fields := make([]Field, 0, len(dir.Children))
	for _, child := range dir.Children {
		switch n := child.(type) {
		case *FileNode:
			kind := FieldBytes
			if n.Text {
				kind = FieldString
			}
			fields = append(fields, Field{Ident: n.Ident, Kind: kind, Size: len(n.Data)})
		case *DirNode:
			sub, err := p.planDir(n, base+"_"+n.Ident)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Ident: n.Ident, Kind: FieldStruct, TypeName: sub.Name})
		}
	}

	key := shapeKey(fields)
	if st, ok := p.shapes[key]; ok {
		dir.TypeName = st.Name
		return st, nil
	}

	uniq, err := p.names.alloc(base)
	if err != nil {
		return nil, err
	}
	st := &StructType{Name: uniq + "_t", Fields: fields}
	p.shapes[key] = st
	p.types = append(p.types, st)
	dir.TypeName = st.Name
	return st, nil
}
