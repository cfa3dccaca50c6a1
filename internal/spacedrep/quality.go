package spacedrep

// Quality is the SM-2 recall rating, 0 (blackout) to 5 (perfect).
type Quality int

const (
	QualityBlackout  Quality = 0
	QualityWrong     Quality = 1
	QualityHard      Quality = 2
	QualityDifficult Quality = 3
	QualityGood      Quality = 4
	QualityPerfect   Quality = 5
)

// Passed reports whether the review counts as successful recall.
func (q Quality) Passed() bool {
	return q >= QualityDifficult
}

// QualityFromScore maps a quiz score percentage to a recall quality.
func QualityFromScore(scorePct float64) Quality {
	switch {
	case scorePct >= 100:
		return QualityPerfect
	case scorePct >= 90:
		return QualityGood
	case scorePct >= 80:
		return QualityDifficult
	case scorePct >= 60:
		return QualityHard
	case scorePct >= 40:
		return QualityWrong
	default:
		return QualityBlackout
	}
}

// DisplayName returns a human-readable label for the quality.
func (q Quality) DisplayName() string {
	switch q {
	case QualityBlackout:
		return "Blackout"
	case QualityWrong:
		return "Wrong"
	case QualityHard:
		return "Hard"
	case QualityDifficult:
		return "Difficult"
	case QualityGood:
		return "Good"
	case QualityPerfect:
		return "Perfect"
	default:
		return "Unknown"
	}
}
