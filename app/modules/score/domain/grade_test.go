package scoredomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		name      string
		breakdown ScoreBreakdown
		mods      Mods
		want      Letter
	}{
		{"standard ss", ScoreBreakdown{Mode: ModeStandard, Count300: 500}, 0, LetterSS},
		{"standard ss hidden", ScoreBreakdown{Mode: ModeStandard, Count300: 500}, ModHidden, LetterSSH},
		{"standard s", ScoreBreakdown{Mode: ModeStandard, Count300: 95, Count100: 5}, 0, LetterS},
		{"standard s flashlight", ScoreBreakdown{Mode: ModeStandard, Count300: 95, Count100: 5}, ModFlashlight, LetterSH},
		{"standard s blocked by miss", ScoreBreakdown{Mode: ModeStandard, Count300: 95, Count100: 4, CountMiss: 1}, 0, LetterA},
		{"standard s blocked by fifties", ScoreBreakdown{Mode: ModeStandard, Count300: 95, Count50: 5}, 0, LetterA},
		{"standard a", ScoreBreakdown{Mode: ModeStandard, Count300: 85, Count100: 15}, 0, LetterA},
		{"standard b", ScoreBreakdown{Mode: ModeStandard, Count300: 75, Count100: 25}, 0, LetterB},
		{"standard c", ScoreBreakdown{Mode: ModeStandard, Count300: 65, Count100: 30, CountMiss: 5}, 0, LetterC},
		{"standard d", ScoreBreakdown{Mode: ModeStandard, Count300: 50, CountMiss: 50}, 0, LetterD},
		{"standard empty", ScoreBreakdown{Mode: ModeStandard}, 0, LetterD},
		{"taiko ss", ScoreBreakdown{Mode: ModeTaiko, Count300: 300}, 0, LetterSS},
		{"taiko s", ScoreBreakdown{Mode: ModeTaiko, Count300: 95, Count100: 5}, 0, LetterS},
		{"catch s", ScoreBreakdown{Mode: ModeCatch, Count300: 99, CountMiss: 1}, 0, LetterS},
		{"catch b", ScoreBreakdown{Mode: ModeCatch, Count300: 92, CountMiss: 8}, 0, LetterB},
		{"mania ss hidden", ScoreBreakdown{Mode: ModeMania, CountGeki: 100}, ModHidden, LetterSSH},
		{"mania a", ScoreBreakdown{Mode: ModeMania, CountGeki: 50, Count300: 30, CountKatu: 20}, 0, LetterA},
		{"mania d", ScoreBreakdown{Mode: ModeMania, CountMiss: 10}, 0, LetterD},
		{"hidden leaves a untouched", ScoreBreakdown{Mode: ModeStandard, Count300: 85, Count100: 15}, ModHidden, LetterA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Grade(tt.breakdown, tt.mods)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrade_InvalidMode(t *testing.T) {
	_, err := Grade(ScoreBreakdown{Mode: 9, Count300: 1}, 0)
	assert.ErrorIs(t, err, ErrInvalidMode)
}
