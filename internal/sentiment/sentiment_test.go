package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedLabel string
	}{
		{
			name:          "Positive review",
			text:          "Excelente comida, el mofongo estaba delicioso",
			expectedLabel: LabelPositive,
		},
		{
			name:          "Negative review",
			text:          "Servicio lento y comida fría, muy mala experiencia",
			expectedLabel: LabelNegative,
		},
		{
			name:          "Neutral text",
			text:          "El restaurante abre todos los días a las nueve",
			expectedLabel: LabelNeutral,
		},
		{
			name:          "Accented positive word",
			text:          "Una experiencia increíble",
			expectedLabel: LabelPositive,
		},
		{
			name:          "Mixed polarity cancels out",
			text:          "La comida estaba rica pero el servicio muy lento la verdad no fue gran cosa",
			expectedLabel: LabelNeutral,
		},
		{
			name:          "Empty text",
			text:          "",
			expectedLabel: LabelNeutral,
		},
		{
			name:          "Punctuation only",
			text:          "!!! ... ???",
			expectedLabel: LabelNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.text)
			assert.Equal(t, tt.expectedLabel, result.Label)
			assert.GreaterOrEqual(t, result.Score, -1.0)
			assert.LessOrEqual(t, result.Score, 1.0)
		})
	}
}

func TestScore_Magnitude(t *testing.T) {
	dense := Score("excelente delicioso perfecto")
	sparse := Score("la comida del lugar era buena aunque nada del otro mundo en general")

	assert.Equal(t, LabelPositive, dense.Label)
	assert.Greater(t, dense.Score, sparse.Score)
}

func TestScore_CaseInsensitive(t *testing.T) {
	lower := Score("comida deliciosa")
	upper := Score("COMIDA DELICIOSA")

	assert.Equal(t, lower, upper)
}
