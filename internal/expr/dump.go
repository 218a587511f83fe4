package expr

import "strings"

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func dumpChildren(depth int, label string, children ...Node) string {
	var b strings.Builder
	b.WriteString(indent(depth))
	b.WriteString(label)
	b.WriteString("\n")
	for _, c := range children {
		b.WriteString(c.Dump(depth + 1))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
