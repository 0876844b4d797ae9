package problemgen

import "fmt"

// Validator checks an AI-generated problem before it is served.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "structural", "balance".
	Name() string

	// Validate returns nil if p passes.
	Validate(p *Problem) *ValidationError
}

// ValidationError describes why a generated problem was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
