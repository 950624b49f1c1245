package term

import (
	"encoding/binary"
)

// Canon keys are used two places downstream: as the "key" half of the
// functional fact-store invariant (db.facts[name][key] = values) and as
// the byte key of the radix-tree-backed stores in package database. Each
// encoding below is self-delimiting (every variable-length piece is
// length-prefixed), so concatenating sibling encodings needs no
// separator and two distinct terms can never collide on encoding.

const (
	tagConst byte = iota
	tagInt
	tagString
	tagTriv
)

// CanonData appends the canonical encoding of d to buf and returns the
// extended slice.
func CanonData(buf []byte, d Data) []byte {
	switch d.kind {
	case KindConst:
		buf = append(buf, tagConst)
		buf = binary.AppendUvarint(buf, uint64(len(d.name)))
		buf = append(buf, d.name...)
		buf = binary.AppendUvarint(buf, uint64(len(d.args)))
		for _, a := range d.args {
			buf = CanonData(buf, a)
		}
		return buf
	case KindInt:
		buf = append(buf, tagInt)
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], uint64(d.ival))
		return append(buf, tmp[:]...)
	case KindString:
		buf = append(buf, tagString)
		buf = binary.AppendUvarint(buf, uint64(len(d.sval)))
		return append(buf, d.sval...)
	default: // KindTriv
		return append(buf, tagTriv)
	}
}

// CanonDataList is CanonData lifted over a slice, itself length-prefixed
// so it can be concatenated with other encoded pieces unambiguously.
func CanonDataList(buf []byte, ds []Data) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(ds)))
	for _, d := range ds {
		buf = CanonData(buf, d)
	}
	return buf
}

// CanonKey is the canonical byte key for a single Data list (e.g. a
// relation's argument tuple). Allocates a fresh slice.
func CanonKey(ds []Data) []byte {
	return CanonDataList(nil, ds)
}

// CanonSubstKey is the canonical byte key for a substitution, used to
// de-duplicate prefix-store entries by pointwise equality rather than by
// Go identity. Entries are already kept name-sorted by Substitution, so
// this is a direct linear encoding.
func CanonSubstKey(s Substitution) []byte {
	var buf []byte
	buf = binary.AppendUvarint(buf, uint64(len(s.entries)))
	for _, e := range s.entries {
		buf = binary.AppendUvarint(buf, uint64(len(e.name)))
		buf = append(buf, e.name...)
		buf = CanonData(buf, e.val)
	}
	return buf
}
