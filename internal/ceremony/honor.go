package ceremony

// Honor is the distinction printed on a certificate.
type Honor string

const (
	HonorPass               Honor = "pass"
	HonorMerit              Honor = "merit"
	HonorDistinction        Honor = "distinction"
	HonorHighestDistinction Honor = "highest-distinction"
)

// AllHonors returns all honors in order from lowest to highest.
func AllHonors() []Honor {
	return []Honor{HonorPass, HonorMerit, HonorDistinction, HonorHighestDistinction}
}

// DisplayName returns a human-readable label for the honor.
func (h Honor) DisplayName() string {
	switch h {
	case HonorPass:
		return "Pass"
	case HonorMerit:
		return "Merit"
	case HonorDistinction:
		return "Distinction"
	case HonorHighestDistinction:
		return "Highest Distinction"
	default:
		return string(h)
	}
}

// HonorForScore returns the honor earned by a final graduation score.
func HonorForScore(score int) Honor {
	switch {
	case score >= 95:
		return HonorHighestDistinction
	case score >= 90:
		return HonorDistinction
	case score >= 85:
		return HonorMerit
	default:
		return HonorPass
	}
}
