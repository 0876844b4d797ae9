package problemgen

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/bokibattle/internal/catalog"
)

// FallbackGenerator serves from primary and falls back to secondary when
// primary fails.
type FallbackGenerator struct {
	primary   Generator
	secondary Generator
	logger    *log.Logger
}

// Fallback wraps primary so that any error is logged and the request is
// retried against secondary. A nil logger discards the warnings.
func Fallback(primary, secondary Generator, logger *log.Logger) *FallbackGenerator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FallbackGenerator{primary: primary, secondary: secondary, logger: logger}
}

func (f *FallbackGenerator) Generate(ctx context.Context, req Request) (*Problem, error) {
	p, err := f.primary.Generate(ctx, req)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, context.Canceled) {
		return nil, err
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		f.logger.Printf("warning: generated problem rejected by %s: %s", verr.Validator, verr.Message)
	} else {
		f.logger.Printf("warning: problem generation failed, using fallback: %v", err)
	}
	return f.secondary.Generate(ctx, req)
}

// BlendGenerator routes a fraction of requests to one generator and the
// rest to another.
type BlendGenerator struct {
	ai        Generator
	templates Generator
	share     float64

	mu  sync.Mutex
	rng *rand.Rand
}

// Blend sends a share (0..1) of requests to ai and the rest to
// templates. Requests that do not allow journal problems always go to
// templates.
func Blend(ai, templates Generator, share float64, rng *rand.Rand) *BlendGenerator {
	return &BlendGenerator{ai: ai, templates: templates, share: min(max(share, 0), 1), rng: rng}
}

func (b *BlendGenerator) Generate(ctx context.Context, req Request) (*Problem, error) {
	b.mu.Lock()
	useAI := b.share > 0 && b.rng.Float64() < b.share
	b.mu.Unlock()

	if useAI && req.Allows(catalog.KindJournal) {
		return b.ai.Generate(ctx, req)
	}
	return b.templates.Generate(ctx, req)
}
