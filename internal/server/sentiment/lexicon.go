package sentiment

// defaultLexicon maps words to valences in -5..5, AFINN-style. It is a
// deliberately small vocabulary tuned for diary-style text.
var defaultLexicon = map[string]float64{
	// positive
	"amazing":    4,
	"awesome":    4,
	"calm":       2,
	"cheerful":   3,
	"confident":  2,
	"content":    2,
	"delighted":  4,
	"energetic":  2,
	"excellent":  3,
	"excited":    3,
	"fantastic":  4,
	"fun":        2,
	"glad":       3,
	"good":       3,
	"grateful":   3,
	"great":      3,
	"happy":      3,
	"hopeful":    2,
	"joy":        3,
	"joyful":     3,
	"love":       3,
	"loved":      3,
	"motivated":  2,
	"optimistic": 2,
	"peaceful":   2,
	"pleasant":   2,
	"proud":      2,
	"relaxed":    2,
	"relieved":   2,
	"rested":     2,
	"satisfied":  2,
	"strong":     2,
	"thankful":   2,
	"wonderful":  4,

	// negative
	"afraid":      -2,
	"angry":       -3,
	"anxious":     -2,
	"awful":       -3,
	"bad":         -3,
	"depressed":   -2,
	"disappoint":  -2,
	"down":        -1,
	"drained":     -2,
	"exhausted":   -2,
	"fear":        -2,
	"frustrated":  -2,
	"gloomy":      -2,
	"hate":        -3,
	"hopeless":    -2,
	"hurt":        -2,
	"lonely":      -2,
	"lost":        -3,
	"miserable":   -3,
	"nervous":     -2,
	"overwhelmed": -2,
	"sad":         -2,
	"scared":      -2,
	"sick":        -2,
	"stressed":    -2,
	"terrible":    -3,
	"tired":       -2,
	"upset":       -2,
	"worried":     -3,
	"worthless":   -2,
}
