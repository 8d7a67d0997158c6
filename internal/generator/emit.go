package generator

import (
	"bytes"
	"fmt"
	"strings"
)

// bytesPerLine is the number of byte literals per line in array
// initializers.
const bytesPerLine = 16

// EmitOptions controls how the planned tree is rendered.
type EmitOptions struct {
	// BaseName is the output base name, used for the include guard and the
	// companion file's #include line. It must already be a valid
	// identifier when sanitized upstream.
	BaseName string
	// Split routes definitions to a separate .c stream instead of an
	// IMPLEMENTATION-guarded block in the header.
	Split bool
}

// Emit renders the planned tree. The header stream is always produced; the
// source stream is non-nil only in split mode. Output is deterministic:
// the same tree and options yield byte-identical text.
func Emit(plan *Plan, root *DirNode, opts EmitOptions) (header, source []byte, err error) {
	guard, err := Sanitize(opts.BaseName)
	if err != nil {
		return nil, nil, err
	}
	guard = strings.ToUpper(guard)

	var h bytes.Buffer
	emitHeader(&h, plan, guard)

	var def bytes.Buffer
	emitDefinitions(&def, plan, root)

	if opts.Split {
		var s bytes.Buffer
		fmt.Fprintf(&s, "#include \"%s.h\"\n\n", opts.BaseName)
		s.WriteString("#include <stdint.h>\n")
		s.WriteString("#include <stddef.h>\n\n")
		s.WriteString("#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")
		s.Write(def.Bytes())
		s.WriteString("\n#ifdef __cplusplus\n}\n#endif\n")
		return h.Bytes(), s.Bytes(), nil
	}

	// Single-file mode: append the definitions after the include guard,
	// protected by an IMPLEMENTATION macro so the header stays safe to
	// include from multiple translation units.
	fmt.Fprintf(&h, "\n#ifdef %s_IMPLEMENTATION\n\n", guard)
	h.Write(def.Bytes())
	fmt.Fprintf(&h, "\n#undef %s_IMPLEMENTATION\n#endif\n", guard)
	return h.Bytes(), nil, nil
}

// emitHeader writes the declaration stream: include guard, one typedef per
// distinct shape in dependency order, and the extern root binding.
func emitHeader(w *bytes.Buffer, plan *Plan, guard string) {
	fmt.Fprintf(w, "#ifndef %s_H\n", guard)
	fmt.Fprintf(w, "#define %s_H\n\n", guard)
	w.WriteString("#include <stdint.h>\n")
	w.WriteString("#include <stddef.h>\n\n")
	w.WriteString("#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")

	for _, st := range plan.Types {
		w.WriteString("typedef struct {\n")
		for _, f := range st.Fields {
			switch f.Kind {
			case FieldBytes:
				fmt.Fprintf(w, "\tconst uint8_t %s[%d];\n", f.Ident, f.Size)
			case FieldString:
				fmt.Fprintf(w, "\tconst char %s[%d];\n", f.Ident, f.Size+1)
			case FieldStruct:
				fmt.Fprintf(w, "\t%s %s;\n", f.TypeName, f.Ident)
			}
		}
		fmt.Fprintf(w, "} %s;\n\n", st.Name)
	}

	fmt.Fprintf(w, "extern const %s %s;\n\n", plan.Root.Name, plan.RootName)
	w.WriteString("#ifdef __cplusplus\n}\n#endif\n\n")
	w.WriteString("#endif\n")
}

// emitDefinitions writes the single definition of the root binding with
// its full nested initializer.
func emitDefinitions(w *bytes.Buffer, plan *Plan, root *DirNode) {
	fmt.Fprintf(w, "const %s %s = {\n", plan.Root.Name, plan.RootName)
	for _, child := range root.Children {
		emitValue(w, child, 1)
	}
	w.WriteString("};\n")
}

// emitValue writes one initializer element: a byte array, a string
// literal, or a nested brace initializer, in declared field order.
func emitValue(w *bytes.Buffer, node Node, depth int) {
	indent := strings.Repeat("\t", depth)

	switch n := node.(type) {
	case *FileNode:
		if n.Text {
			fmt.Fprintf(w, "%s%s,\n", indent, cStringLiteral(n.Data))
			return
		}
		fmt.Fprintf(w, "%s{\n", indent)
		emitByteRows(w, n.Data, indent)
		fmt.Fprintf(w, "%s},\n", indent)

	case *DirNode:
		fmt.Fprintf(w, "%s{\n", indent)
		for _, child := range n.Children {
			emitValue(w, child, depth+1)
		}
		fmt.Fprintf(w, "%s},\n", indent)
	}
}

// emitByteRows writes data as hex byte literals, bytesPerLine per row.
func emitByteRows(w *bytes.Buffer, data []byte, indent string) {
	for i, b := range data {
		if i%bytesPerLine == 0 {
			w.WriteString(indent)
			w.WriteByte('\t')
		}
		fmt.Fprintf(w, "0x%02x,", b)
		if (i+1)%bytesPerLine == 0 || i == len(data)-1 {
			w.WriteByte('\n')
		} else {
			w.WriteByte(' ')
		}
	}
}

// cStringLiteral renders data as a double-quoted C string literal. The
// common escapes are spelled out; any other byte outside printable ASCII
// uses a three-digit octal escape, which cannot swallow a following digit
// the way hex escapes do.
func cStringLiteral(data []byte) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range data {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&b, "\\%03o", c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
