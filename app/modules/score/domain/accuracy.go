package scoredomain

// ScoreBreakdown is the judgement breakdown of a single play. The meaning of
// each tier depends on Mode; CountKatu is read by Catch and Mania, CountGeki
// by Mania only.
type ScoreBreakdown struct {
	Mode      Mode
	Count300  int
	Count100  int
	Count50   int
	CountMiss int
	CountKatu int
	CountGeki int
}

func (b ScoreBreakdown) validate() error {
	if b.Count300 < 0 || b.Count100 < 0 || b.Count50 < 0 ||
		b.CountMiss < 0 || b.CountKatu < 0 || b.CountGeki < 0 {
		return ErrNegativeCount
	}
	return nil
}

// ComputeAccuracy returns the weighted accuracy of b as a percentage in
// [0, 100]. A breakdown with no judged notes for its mode grades as exactly 0.
func ComputeAccuracy(b ScoreBreakdown) (float64, error) {
	if !b.Mode.IsValid() {
		return 0, ErrInvalidMode
	}
	if err := b.validate(); err != nil {
		return 0, err
	}

	n300 := float64(b.Count300)
	n100 := float64(b.Count100)
	n50 := float64(b.Count50)
	miss := float64(b.CountMiss)
	katu := float64(b.CountKatu)
	geki := float64(b.CountGeki)

	switch b.Mode {
	case ModeStandard:
		hits := n300 + n100 + n50 + miss
		if hits == 0 {
			return 0, nil
		}
		return 100 * (n50*50 + n100*100 + n300*300) / (hits * 300), nil

	case ModeTaiko:
		hits := n300 + n100 + miss
		if hits == 0 {
			return 0, nil
		}
		return 100 * (n100*0.5 + n300) / hits, nil

	case ModeCatch:
		hits := n300 + n100 + n50 + katu + miss
		if hits == 0 {
			return 0, nil
		}
		return 100 * (n300 + n100 + n50) / hits, nil

	case ModeMania:
		hits := n300 + n100 + n50 + geki + katu + miss
		if hits == 0 {
			return 0, nil
		}
		return 100 * (n50*50 + n100*100 + katu*200 + (n300+geki)*300) / (hits * 300), nil
	}

	return 0, ErrInvalidMode
}
