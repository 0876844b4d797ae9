package problemgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated problem; the first
	// failure rejects it.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is how many recently served question texts are
	// listed in the prompt so the model avoids repeating them.
	MaxPriorQuestions int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&BalanceValidator{},
			&ChartValidator{},
		},
		MaxTokens:         1024,
		Temperature:       0.8,
		MaxPriorQuestions: 8,
	}
}
