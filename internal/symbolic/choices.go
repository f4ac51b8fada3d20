package symbolic

import "math/rand"

// distractorPool is the fixed set of symbols distractors are drawn
// from: zero, every canonical magnitude in both signs, and NotDefined.
var distractorPool = []string{
	"0",
	"1/2", "-1/2",
	"1/√2", "-1/√2",
	"√3/2", "-√3/2",
	"1", "-1",
	"√2", "-√2",
	"√3", "-√3",
	"1/√3", "-1/√3",
	"2/√3", "-2/√3",
	NotDefined,
}

// Choices is a shuffled 4-option multiple-choice set.
type Choices struct {
	Options       []string
	CorrectOption string
}

// BuildChoices classifies the value and combines it with three distinct
// distractors drawn uniformly from the pool, returning the four options
// in unbiased shuffled order.
func BuildChoices(value float64, rng *rand.Rand) Choices {
	correct := Classify(value)

	pool := make([]string, 0, len(distractorPool))
	for _, symbol := range distractorPool {
		if symbol != correct {
			pool = append(pool, symbol)
		}
	}

	// Partial Fisher-Yates: the first three slots end up holding a
	// uniform sample without replacement.
	for i := 0; i < 3; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	options := make([]string, 0, 4)
	options = append(options, pool[:3]...)
	options = append(options, correct)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Choices{Options: options, CorrectOption: correct}
}
