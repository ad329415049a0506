package vocab

// #region token
// Token is an opaque non-negative vocabulary identifier.
type Token = int32

// #endregion token

// #region special
// Special holds the reserved token IDs of a vocabulary.
// The inference service reports these once at startup; all masking and feed
// logic takes them as an explicit parameter rather than reading globals.
type Special struct {
	Pad     Token
	Mask    Token
	Hole    Token
	EndHole Token
	Start   Token
	End     Token

	VocabSize int
}

// IsMeta reports whether t is one of the reserved tokens.
func (s Special) IsMeta(t Token) bool {
	switch t {
	case s.Pad, s.Mask, s.Hole, s.EndHole, s.Start, s.End:
		return true
	}
	return false
}

// #endregion special

// #region sequence-helpers

// ActualLength returns the index of the first pad token in seq, or len(seq)
// if the sequence carries no padding.
func ActualLength(seq []Token, pad Token) int {
	for i, t := range seq {
		if t == pad {
			return i
		}
	}
	return len(seq)
}

// PadTo appends pad tokens until seq has length n. Sequences already at or
// beyond n are returned unchanged.
func PadTo(seq []Token, pad Token, n int) []Token {
	for len(seq) < n {
		seq = append(seq, pad)
	}
	return seq
}

// InputMask returns a parallel 1/0 slice: 1 up to the first pad, 0 after.
func InputMask(seq []Token, pad Token) []int32 {
	mask := make([]int32, len(seq))
	cut := ActualLength(seq, pad)
	for i := 0; i < cut; i++ {
		mask[i] = 1
	}
	return mask
}

// CountOpen returns how many mask or hole placeholders remain in seq.
func CountOpen(seq []Token, s Special) int {
	n := 0
	for _, t := range seq {
		if t == s.Mask || t == s.Hole {
			n++
		}
	}
	return n
}

// WrapStartEnd inserts the start and end tokens around an unpadded sequence,
// skipping either when already present.
func WrapStartEnd(seq []Token, s Special) []Token {
	out := make([]Token, 0, len(seq)+2)
	if len(seq) == 0 || seq[0] != s.Start {
		out = append(out, s.Start)
	}
	out = append(out, seq...)
	if len(seq) == 0 || seq[len(seq)-1] != s.End {
		out = append(out, s.End)
	}
	return out
}

// #endregion sequence-helpers
