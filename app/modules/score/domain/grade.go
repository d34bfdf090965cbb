package scoredomain

// Mods is the mod bitmask stored with each score. Only the mods that change
// the letter grade are named here.
type Mods int

const (
	ModHidden     Mods = 1 << 3
	ModFlashlight Mods = 1 << 10
	ModFadeIn     Mods = 1 << 20
)

// Has reports whether every bit of m2 is set in m.
func (m Mods) Has(m2 Mods) bool {
	return m&m2 == m2
}

func (m Mods) silver() bool {
	return m.Has(ModHidden) || m.Has(ModFlashlight) || m.Has(ModFadeIn)
}

// Letter is a traditional letter grade.
type Letter string

const (
	LetterSSH Letter = "SSH"
	LetterSS  Letter = "SS"
	LetterSH  Letter = "SH"
	LetterS   Letter = "S"
	LetterA   Letter = "A"
	LetterB   Letter = "B"
	LetterC   Letter = "C"
	LetterD   Letter = "D"
)

// Grade maps a breakdown to its letter grade. Standard and Taiko grade on
// judgement ratios, Catch and Mania on accuracy bands.
func Grade(b ScoreBreakdown, mods Mods) (Letter, error) {
	acc, err := ComputeAccuracy(b)
	if err != nil {
		return "", err
	}

	var letter Letter
	switch b.Mode {
	case ModeStandard:
		letter = ratioGrade(b.Count300, b.Count100, b.Count50, b.CountMiss)
	case ModeTaiko:
		letter = ratioGrade(b.Count300, b.Count100, 0, b.CountMiss)
	case ModeCatch:
		letter = bandGrade(acc, 98, 94, 90, 85)
	case ModeMania:
		letter = bandGrade(acc, 95, 90, 80, 70)
	}

	if mods.silver() {
		switch letter {
		case LetterSS:
			letter = LetterSSH
		case LetterS:
			letter = LetterSH
		}
	}
	return letter, nil
}

func ratioGrade(n300, n100, n50, miss int) Letter {
	total := n300 + n100 + n50 + miss
	if total == 0 {
		return LetterD
	}
	r300 := float64(n300) / float64(total)
	r50 := float64(n50) / float64(total)

	switch {
	case n300 == total:
		return LetterSS
	case r300 > 0.9 && r50 <= 0.01 && miss == 0:
		return LetterS
	case (r300 > 0.8 && miss == 0) || r300 > 0.9:
		return LetterA
	case (r300 > 0.7 && miss == 0) || r300 > 0.8:
		return LetterB
	case r300 > 0.6:
		return LetterC
	default:
		return LetterD
	}
}

func bandGrade(acc, s, a, b, c float64) Letter {
	switch {
	case acc == 100:
		return LetterSS
	case acc > s:
		return LetterS
	case acc > a:
		return LetterA
	case acc > b:
		return LetterB
	case acc > c:
		return LetterC
	default:
		return LetterD
	}
}
