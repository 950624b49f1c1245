package term

import "fmt"

// Match is first-order one-way matching: patterns may carry variables,
// data never does. No occurs check — patterns are only ever matched
// against ground data, never against other patterns.
//
//   const vs const: names and arity must agree; children match pointwise,
//   threading the substitution through in order.
//   int/string/triv: same shape and value required.
//   var(X): if X is already bound, recurse on the bound value; otherwise
//   bind X to data and succeed.
func Match(s Substitution, p Pattern, d Data) (Substitution, bool) {
	switch p.kind {
	case KindVar:
		if bound, ok := s.Lookup(p.name); ok {
			return matchData(s, bound, d)
		}
		return s.Extend(p.name, d), true
	case KindConst:
		if d.kind != KindConst || p.name != d.name || len(p.args) != len(d.args) {
			return s, false
		}
		cur := s
		for i := range p.args {
			next, ok := Match(cur, p.args[i], d.args[i])
			if !ok {
				return s, false
			}
			cur = next
		}
		return cur, true
	case KindInt:
		if d.kind != KindInt || p.ival != d.ival {
			return s, false
		}
		return s, true
	case KindString:
		if d.kind != KindString || p.sval != d.sval {
			return s, false
		}
		return s, true
	default: // KindTriv
		if d.kind != KindTriv {
			return s, false
		}
		return s, true
	}
}

// matchData is Match specialized to two ground terms (used when a variable
// already bound in s must agree with newly-offered data).
func matchData(s Substitution, bound, d Data) (Substitution, bool) {
	if !Equal(bound, d) {
		return s, false
	}
	return s, true
}

// MatchList threads a substitution across two equal-length pattern/data
// lists, failing the whole list if any element fails or the lengths
// disagree.
func MatchList(s Substitution, ps []Pattern, ds []Data) (Substitution, bool) {
	if len(ps) != len(ds) {
		return s, false
	}
	cur := s
	for i := range ps {
		next, ok := Match(cur, ps[i], ds[i])
		if !ok {
			return s, false
		}
		cur = next
	}
	return cur, true
}

// UnboundVariable is returned by Apply when a pattern references a variable
// the substitution does not bind.
type UnboundVariable struct {
	Var string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf("term: unbound variable in apply: %s", e.Var)
}

// Apply is structural: it walks p and replaces each var(X) with s[X],
// failing if X is unbound. A fully-applied pattern with no variables left
// unresolved is returned as Data.
func Apply(s Substitution, p Pattern) (Data, error) {
	switch p.kind {
	case KindVar:
		v, ok := s.Lookup(p.name)
		if !ok {
			return Data{}, &UnboundVariable{Var: p.name}
		}
		return v, nil
	case KindConst:
		args := make([]Data, len(p.args))
		for i, a := range p.args {
			d, err := Apply(s, a)
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

// ApplyList is Apply lifted over a pattern list.
func ApplyList(s Substitution, ps []Pattern) ([]Data, error) {
	out := make([]Data, len(ps))
	for i, p := range ps {
		d, err := Apply(s, p)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
