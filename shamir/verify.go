package shamir

// Verify reports which of the extra shares do not lie on the polynomial
// defined by the base shares. An empty result means every extra share is
// consistent.
func Verify(base, extra []Share) ([]Share, error) {
	var mismatched []Share

	for i, s := range extra {
		if !s.valid() {
			return nil, ErrInvalidShare
		}

		expected, err := Evaluate(base, s.X)
		if err != nil {
			return nil, err
		}

		if !expected.EqualInt(s.Y) {
			mismatched = append(mismatched, extra[i])
		}
	}

	return mismatched, nil
}

// VerifyAll checks that every share beyond the first k lies on the
// polynomial through the first k.
func VerifyAll(shares []Share, k int) ([]Share, error) {
	base, err := SelectThreshold(shares, k)
	if err != nil {
		return nil, err
	}
	return Verify(base, shares[k:])
}
