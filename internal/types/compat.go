package types

// Identical reports whether a and b denote the same type after resolving
// aliases.
func (in *Interner) Identical(a, b TypeID) bool {
	a, b = in.Resolve(a), in.Resolve(b)
	if a == NoTypeID || b == NoTypeID {
		return false
	}
	if a == b {
		return true
	}
	ta, okA := in.Lookup(a)
	tb, okB := in.Lookup(b)
	if !okA || !okB || ta.Kind != KindArray || tb.Kind != KindArray {
		return false
	}
	return ta.Count == tb.Count && in.Identical(ta.Elem, tb.Elem)
}

// Assignable reports whether a value of type src may be stored where dst is
// declared. null fits any reference type; arrays need identical element types
// and equal lengths when both lengths are fixed.
func (in *Interner) Assignable(dst, src TypeID) bool {
	dst, src = in.Resolve(dst), in.Resolve(src)
	if dst == NoTypeID || src == NoTypeID {
		return false
	}
	if dst == src {
		return true
	}
	td, _ := in.Lookup(dst)
	ts, _ := in.Lookup(src)
	if ts.Kind == KindNull {
		return td.Kind.IsReference()
	}
	if td.Kind == KindArray && ts.Kind == KindArray {
		if td.Count != ArrayDynamicLength && ts.Count != ArrayDynamicLength && td.Count != ts.Count {
			return false
		}
		return in.Identical(td.Elem, ts.Elem)
	}
	return false
}

// Comparable reports whether == and != apply to a and b.
func (in *Interner) Comparable(a, b TypeID) bool {
	ka, kb := in.KindOf(a), in.KindOf(b)
	switch {
	case ka == KindVoid || kb == KindVoid:
		return false
	case ka == KindNull && kb == KindNull:
		return true
	}
	return in.Assignable(a, b) || in.Assignable(b, a)
}

// Ordered reports whether < > <= >= apply to a and b.
func (in *Interner) Ordered(a, b TypeID) bool {
	ka := in.KindOf(a)
	return (ka == KindInt || ka == KindChar) && ka == in.KindOf(b)
}
