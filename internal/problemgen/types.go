package problemgen

import "github.com/abhisek/bokibattle/internal/catalog"

// Source records which generator produced a problem.
type Source string

const (
	SourceTemplate Source = "template"
	SourceAI       Source = "ai"
)

// Problem is a fully assembled question ready for display. It is
// immutable once returned by a Generator.
type Problem struct {
	// ID uniquely identifies this problem within a run.
	ID string

	// TemplateID is the catalog template the problem was built from.
	// Empty for AI-generated problems.
	TemplateID string

	Kind        catalog.Kind
	Text        string
	Explanation string
	Source      Source

	// Journal kind. AccountOptions contains every account in Journal;
	// AmountOptions contains every line amount in Journal.
	Journal        catalog.JournalEntry
	AccountOptions []string
	AmountOptions  []int64

	// Select kind. Options contains Correct exactly once.
	Correct string
	Options []string

	// Numeric kind. NumericOptions contains NumericAnswer exactly once.
	NumericAnswer  int64
	NumericOptions []int64
}

// Request describes what kind of problem to generate.
type Request struct {
	// Difficulty is the run's difficulty code ("easy", "hard", "practice").
	// Template generation ignores it; the LLM prompt uses it as context.
	Difficulty string

	// Kinds restricts generation to these question kinds. Empty means
	// any kind.
	Kinds []catalog.Kind
}

// Allows reports whether the request permits kind k.
func (r Request) Allows(k catalog.Kind) bool {
	if len(r.Kinds) == 0 {
		return true
	}
	for _, rk := range r.Kinds {
		if rk == k {
			return true
		}
	}
	return false
}
