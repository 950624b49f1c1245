package term

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a Pattern in the surface syntax: quoted strings, "()"
// for triv, parenthesized sub-terms, uppercase identifiers for
// variables, and "name arg1 arg2 ..." for constructors.
func (p Pattern) String() string {
	var b strings.Builder
	writePattern(&b, p)
	return b.String()
}

func writePattern(b *strings.Builder, p Pattern) {
	switch p.kind {
	case KindVar:
		b.WriteString(p.name)
	case KindInt:
		b.WriteString(strconv.FormatInt(p.ival, 10))
	case KindString:
		b.WriteByte('"')
		b.WriteString(p.sval)
		b.WriteByte('"')
	case KindTriv:
		b.WriteString("()")
	case KindConst:
		if len(p.args) == 0 {
			b.WriteString(p.name)
			return
		}
		b.WriteByte('(')
		b.WriteString(p.name)
		for _, a := range p.args {
			b.WriteByte(' ')
			writePattern(b, a)
		}
		b.WriteByte(')')
	}
}

// String renders ground Data with the same grammar as Pattern.
func (d Data) String() string { return d.AsPattern().String() }

// FormatProposition renders "name arg1 .. argn" or, when values is
// non-empty, "name arg1 .. argn = v1 .. vm".
func FormatProposition(name string, args, values []Data) string {
	var b strings.Builder
	b.WriteString(name)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	if len(values) > 0 {
		b.WriteString(" =")
		for _, v := range values {
			b.WriteByte(' ')
			b.WriteString(v.String())
		}
	}
	return b.String()
}

// FormatSubst renders a substitution as "t1/X1, t2/X2, ..." with
// variables sorted by name (Substitution already keeps entries sorted).
func FormatSubst(s Substitution) string {
	var b strings.Builder
	for i, e := range s.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s/%s", e.val.String(), e.name)
	}
	return b.String()
}
