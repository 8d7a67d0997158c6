package generator

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidName reports a filesystem name or user-supplied prefix that
// cannot serve as a C identifier.
var ErrInvalidName = errors.New("invalid name")

// cKeywords is the C11 keyword list. A sanitized name that lands on one of
// these would not compile as a struct field, so the allocator appends an
// underscore.
var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extern": true,
	"float": true, "for": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true,
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Bool": true,
	"_Complex": true, "_Generic": true, "_Imaginary": true,
	"_Noreturn": true, "_Static_assert": true, "_Thread_local": true,
}

// Sanitize maps an arbitrary filesystem name to a valid C identifier:
// every byte outside [A-Za-z0-9_] becomes '_' (1:1, no collapsing), a
// leading digit gets a '_' prefix, and a keyword gets a '_' suffix.
// Returns ErrInvalidName for an empty name.
func Sanitize(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	out := make([]byte, 0, len(name)+1)
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			out = append(out, c)
		case c >= '0' && c <= '9':
			if i == 0 {
				out = append(out, '_')
			}
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}

	s := string(out)
	if cKeywords[s] {
		s += "_"
	}
	return s, nil
}

// ValidIdent reports whether s already satisfies the C identifier rules.
// Used to validate a user-supplied prefix, which is taken verbatim.
func ValidIdent(s string) bool {
	if s == "" || cKeywords[s] {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// identTable allocates unique identifiers within one namespace: one table
// per directory for sibling fields, one global table per run for struct
// type names. Allocation is deterministic; the first taker of a candidate
// keeps it and later collisions walk _1, _2, ... until free.
type identTable struct {
	used map[string]bool
}

func newIdentTable() *identTable {
	return &identTable{used: make(map[string]bool)}
}

// reserve marks an identifier as taken without deriving it, e.g. the root
// binding name which must stay exactly as supplied.
func (t *identTable) reserve(ident string) {
	t.used[ident] = true
}

// alloc sanitizes name and returns a collision-free identifier, recording
// it in the table.
func (t *identTable) alloc(name string) (string, error) {
	base, err := Sanitize(name)
	if err != nil {
		return "", err
	}

	ident := base
	for n := 1; t.used[ident]; n++ {
		ident = base + "_" + strconv.Itoa(n)
	}
	t.used[ident] = true
	return ident, nil
}

// allocIdents assigns every node in the tree its identifier. Sibling
// identifiers are unique within their directory only; uniqueness across
// directories is not needed because fields live in separate structs.
func allocIdents(root *DirNode) error {
	siblings := newIdentTable()
	for _, child := range root.Children {
		ident, err := siblings.alloc(child.NodeName())
		if err != nil {
			return err
		}
		switch n := child.(type) {
		case *FileNode:
			n.Ident = ident
		case *DirNode:
			n.Ident = ident
			if err := allocIdents(n); err != nil {
				return err
			}
		}
	}
	return nil
}
