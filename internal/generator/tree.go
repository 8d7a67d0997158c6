package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Node is one entry in the asset tree: either a *FileNode or a *DirNode.
// The tree is built once by BuildTree and never mutated afterwards.
type Node interface {
	// NodeName returns the raw filesystem name of the entry.
	NodeName() string

	node()
}

// FileNode holds the full contents of a regular file.
type FileNode struct {
	Name string
	Data []byte
	// Text marks files emitted as C string literals instead of byte arrays.
	Text bool

	// Ident is assigned by the allocator after the tree is built.
	Ident string
}

// DirNode holds the ordered children of a directory. Child order is the
// lexicographic order returned by os.ReadDir and is preserved through
// planning and emission, since initializer order must match field order.
type DirNode struct {
	Name     string
	Children []Node

	// Ident and TypeName are assigned by the allocator and planner.
	Ident    string
	TypeName string
}

func (f *FileNode) NodeName() string { return f.Name }
func (d *DirNode) NodeName() string  { return d.Name }

func (f *FileNode) node() {}
func (d *DirNode) node()  {}

// TreeOptions controls how the asset directory is walked.
type TreeOptions struct {
	// Strict aborts the build when an unsupported entry (symlink, device,
	// socket) is encountered. When false such entries are skipped with a
	// warning.
	Strict bool

	// TextExts is the set of file extensions (without dot, lower case)
	// whose contents are embedded as C string literals.
	TextExts map[string]bool
}

// BuildTree walks the directory at root and returns its tree. Every regular
// file is read fully into memory. Any read failure aborts the build; there
// is no partial result.
func BuildTree(root string, opts TreeOptions) (*DirNode, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	children, err := buildChildren(root, opts)
	if err != nil {
		return nil, err
	}

	return &DirNode{Name: filepath.Base(root), Children: children}, nil
}

func buildChildren(dir string, opts TreeOptions) ([]Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	// os.ReadDir already sorts by name; the order is load-bearing.
	var children []Node
	for _, entry := range entries {
		name := entry.Name()
		if name == "" {
			return nil, fmt.Errorf("%w: empty entry name in %s", ErrInvalidName, dir)
		}
		path := filepath.Join(dir, name)

		switch {
		case entry.IsDir():
			sub, err := buildChildren(path, opts)
			if err != nil {
				return nil, err
			}
			children = append(children, &DirNode{Name: name, Children: sub})

		case entry.Type().IsRegular():
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			children = append(children, &FileNode{
				Name: name,
				Data: data,
				Text: opts.TextExts[fileExt(name)],
			})

		default:
			if opts.Strict {
				return nil, fmt.Errorf("unsupported entry %s (%s)", path, entry.Type())
			}
			log.Warn().Str("path", path).Stringer("mode", entry.Type()).
				Msg("skipping unsupported entry")
		}
	}

	return children, nil
}

// fileExt returns the lower-cased extension of name without the dot.
func fileExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}
