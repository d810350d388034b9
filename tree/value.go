package tree

// Value is a sparse numeric map keyed by column name (a year, a
// currency code, etc). Keys that are absent are treated as zero by all
// of the algebra below. Operations never mutate their inputs; every
// result is a freshly allocated map.
type Value map[string]float64

// Sum adds any number of value maps key-wise across the union of their
// keys. Absent keys contribute zero. Sum() returns an empty map.
func Sum(ms ...Value) Value {
	out := Value{}
	for _, m := range ms {
		for k, v := range m {
			out[k] += v
		}
	}
	return out
}

// Negate flips the sign of every entry.
func Negate(m Value) Value {
	out := make(Value, len(m))
	for k, v := range m {
		out[k] = -v
	}
	return out
}

// Subtract computes m minus the key-wise sum of the remaining maps.
// A key present only in a subtrahend comes out negative; this is not a
// merge-by-key subtraction, which would leave such keys positive.
func Subtract(m Value, ms ...Value) Value {
	out := make(Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, s := range ms {
		for k, v := range s {
			out[k] -= v
		}
	}
	return out
}

// Equal reports whether two value maps agree at every key. An absent
// key and an explicit zero are equivalent, so a map that cancels to
// all zeros equals the empty map.
func (m Value) Equal(o Value) bool {
	for k, v := range m {
		if v != o[k] {
			return false
		}
	}
	for k, v := range o {
		if v != m[k] {
			return false
		}
	}
	return true
}

func (m Value) clone() Value {
	out := make(Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
