// Package term implements the ground-data and pattern algebra: construction,
// first-order matching, substitution application, structural equality, and
// printing. It has no knowledge of rules, databases, or search — it is the
// leaf layer everything else is built on.
package term

import "fmt"

// Kind tags the closed set of term constructors. Both Pattern and Data share
// it; Data never carries KindVar.
type Kind int

const (
	KindConst Kind = iota
	KindInt
	KindString
	KindTriv
	KindVar
)

// Pattern is a term that may contain variables. A Pattern with no KindVar
// node anywhere in it is interchangeable with a Data (see AssertGround).
type Pattern struct {
	kind Kind

	name string    // KindConst: constructor name. KindVar: variable name.
	args []Pattern // KindConst: sub-patterns.
	ival int64     // KindInt.
	sval string    // KindString.
}

// Data is a ground term: the same shape as Pattern minus KindVar. Keeping it
// a distinct type (rather than a runtime tag on Pattern) means a compile
// error, not a runtime fault, greets any code path that tries to store a
// variable where a fact requires ground data.
type Data struct {
	kind Kind

	name string
	args []Data
	ival int64
	sval string
}

// Constructors — Pattern side.

func Const(name string, args ...Pattern) Pattern {
	return Pattern{kind: KindConst, name: name, args: args}
}

func Int(v int64) Pattern { return Pattern{kind: KindInt, ival: v} }

func Str(v string) Pattern { return Pattern{kind: KindString, sval: v} }

func Triv() Pattern { return Pattern{kind: KindTriv} }

func Var(name string) Pattern { return Pattern{kind: KindVar, name: name} }

// Constructors — Data side.

func DConst(name string, args ...Data) Data {
	return Data{kind: KindConst, name: name, args: args}
}

func DInt(v int64) Data { return Data{kind: KindInt, ival: v} }

func DStr(v string) Data { return Data{kind: KindString, sval: v} }

func DTriv() Data { return Data{kind: KindTriv} }

// Accessors. Patterns and Data expose the same read surface; callers that
// work generically over "a term" can type-switch on Kind() without caring
// which of the two they were handed.

func (p Pattern) Kind() Kind      { return p.kind }
func (p Pattern) Name() string    { return p.name }
func (p Pattern) Args() []Pattern { return p.args }
func (p Pattern) IntVal() int64   { return p.ival }
func (p Pattern) StrVal() string  { return p.sval }

func (d Data) Kind() Kind    { return d.kind }
func (d Data) Name() string  { return d.name }
func (d Data) Args() []Data  { return d.args }
func (d Data) IntVal() int64 { return d.ival }
func (d Data) StrVal() string { return d.sval }

// AsPattern lifts a Data into the Pattern algebra (used when a conclusion
// head needs to feed a ground seed fact through Apply/Match uniformly).
func (d Data) AsPattern() Pattern {
	switch d.kind {
	case KindConst:
		args := make([]Pattern, len(d.args))
		for i, a := range d.args {
			args[i] = a.AsPattern()
		}
		return Pattern{kind: KindConst, name: d.name, args: args}
	case KindInt:
		return Pattern{kind: KindInt, ival: d.ival}
	case KindString:
		return Pattern{kind: KindString, sval: d.sval}
	default:
		return Pattern{kind: KindTriv}
	}
}

// NonGround is returned by AssertGround when a var node is reachable.
type NonGround struct {
	Var string
}

func (e *NonGround) Error() string { return fmt.Sprintf("term: unbound in ground context: %s", e.Var) }

// AssertGround witnesses that p contains no KindVar node, converting it to
// a Data. It never mutates p.
func AssertGround(p Pattern) (Data, error) {
	switch p.kind {
	case KindVar:
		return Data{}, &NonGround{Var: p.name}
	case KindConst:
		args := make([]Data, len(p.args))
		for i, a := range p.args {
			d, err := AssertGround(a)
			if err != nil {
				return Data{}, err
			}
			args[i] = d
		}
		return Data{kind: KindConst, name: p.name, args: args}, nil
	case KindInt:
		return Data{kind: KindInt, ival: p.ival}, nil
	case KindString:
		return Data{kind: KindString, sval: p.sval}, nil
	default:
		return Data{kind: KindTriv}, nil
	}
}

// FreeVars collects the distinct variable names reachable in p, in
// first-occurrence order.
func FreeVars(p Pattern) []string {
	var out []string
	seen := make(map[string]struct{})
	var walk func(Pattern)
	walk = func(p Pattern) {
		switch p.kind {
		case KindVar:
			if _, ok := seen[p.name]; !ok {
				seen[p.name] = struct{}{}
				out = append(out, p.name)
			}
		case KindConst:
			for _, a := range p.args {
				walk(a)
			}
		}
	}
	walk(p)
	return out
}

// Equal reports structural equality against o, letting Data participate
// directly in github.com/google/go-cmp comparisons despite its
// unexported fields.
func (d Data) Equal(o Data) bool { return Equal(d, o) }

// Equal is structural equality over ground Data.
func Equal(a, b Data) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindConst:
		if a.name != b.name || len(a.args) != len(b.args) {
			return false
		}
		for i := range a.args {
			if !Equal(a.args[i], b.args[i]) {
				return false
			}
		}
		return true
	case KindInt:
		return a.ival == b.ival
	case KindString:
		return a.sval == b.sval
	default: // KindTriv
		return true
	}
}

// EqualList is Equal lifted pointwise over same-length slices.
func EqualList(a, b []Data) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
