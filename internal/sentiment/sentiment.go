package sentiment

import (
	"strings"
	"unicode"
)

// Labels assigned by Score.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Score threshold separating neutral from polar text.
const threshold = 0.05

// Result holds the lexicon score for one piece of text.
type Result struct {
	Score float64 `json:"sentiment_score"` // [-1, 1]
	Label string  `json:"sentiment_label"`
}

// Spanish review lexicon. Multi-word markers are matched as substrings,
// single words token by token.
var positiveWords = map[string]struct{}{
	"excelente":      {},
	"delicioso":      {},
	"deliciosa":      {},
	"bueno":          {},
	"buena":          {},
	"rico":           {},
	"rica":           {},
	"sabroso":        {},
	"recomendado":    {},
	"recomendable":   {},
	"increíble":      {},
	"perfecto":       {},
	"perfecta":       {},
	"fantástica":     {},
	"fantástico":     {},
	"maravillosa":    {},
	"maravilloso":    {},
	"excepcional":    {},
	"extraordinaria": {},
	"magnífica":      {},
	"auténtico":      {},
	"auténtica":      {},
	"agradable":      {},
	"amable":         {},
	"fresca":         {},
	"fresco":         {},
	"generosas":      {},
	"justo":          {},
	"único":          {},
	"única":          {},
}

var negativeWords = map[string]struct{}{
	"malo":       {},
	"mala":       {},
	"mediocre":   {},
	"deficiente": {},
	"pobre":      {},
	"lento":      {},
	"lenta":      {},
	"sucio":      {},
	"sucia":      {},
	"caro":       {},
	"cara":       {},
	"discreta":   {},
	"discreto":   {},
	"alto":       {}, // "precio alto"
	"volvería":   {}, // "no volvería"
	"frío":       {},
	"fría":       {},
}

// Score rates text with the word lexicon: (positive - negative) hits over
// total tokens, clamped to [-1, 1]. Empty text is neutral with score 0.
func Score(text string) Result {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Result{Score: 0, Label: LabelNeutral}
	}

	var positive, negative int
	for _, tok := range tokens {
		if _, ok := positiveWords[tok]; ok {
			positive++
		}
		if _, ok := negativeWords[tok]; ok {
			negative++
		}
	}

	score := float64(positive-negative) / float64(len(tokens))
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}

	return Result{Score: score, Label: label(score)}
}

func label(score float64) string {
	switch {
	case score >= threshold:
		return LabelPositive
	case score <= -threshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
