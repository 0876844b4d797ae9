package problemgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/bokibattle/internal/catalog"
)

// Generator produces problems.
type Generator interface {
	// Generate produces a single problem allowed by req. It returns
	// catalog.ErrNoTemplates when req.Kinds excludes every template.
	Generate(ctx context.Context, req Request) (*Problem, error)
}

// Option configures a generator.
type Option func(*settings)

type settings struct {
	rng   *rand.Rand
	newID func() string
}

func newSettings(opts []Option) settings {
	s := settings{
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithSeed makes generation reproducible.
func WithSeed(seed1, seed2 uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewPCG(seed1, seed2))
	}
}

// WithIDSource overrides the problem identifier source.
func WithIDSource(fn func() string) Option {
	return func(s *settings) { s.newID = fn }
}

// TemplateGenerator builds problems from the static template catalog.
// It is safe for concurrent use.
type TemplateGenerator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	newID func() string
}

// NewTemplateGenerator returns a generator seeded from entropy unless
// WithSeed is given.
func NewTemplateGenerator(opts ...Option) *TemplateGenerator {
	s := newSettings(opts)
	return &TemplateGenerator{rng: s.rng, newID: s.newID}
}

// Generate picks a template uniformly among the allowed kinds and
// assembles a problem with randomized amount, counterparty and option
// sets. It fails only when no template matches.
func (g *TemplateGenerator) Generate(_ context.Context, req Request) (*Problem, error) {
	templates, err := catalog.Templates(req.Kinds...)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	t := templates[g.rng.IntN(len(templates))]
	return g.build(t), nil
}

// GenerateFrom builds a problem from a specific template.
func (g *TemplateGenerator) GenerateFrom(templateID string) (*Problem, error) {
	t, ok := catalog.ByID(templateID)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", templateID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.build(t), nil
}

func (g *TemplateGenerator) build(t catalog.Template) *Problem {
	counterparties := catalog.Counterparties()
	amount := drawAmount(g.rng)
	counterparty := counterparties[g.rng.IntN(len(counterparties))]

	p := &Problem{
		ID:          g.newID(),
		TemplateID:  t.ID,
		Kind:        t.Kind,
		Text:        t.Text(amount, counterparty),
		Explanation: t.Explanation,
		Source:      SourceTemplate,
	}

	switch t.Kind {
	case catalog.KindJournal:
		p.Journal = t.Journal(amount, counterparty)
		fillJournalOptions(g.rng, p)
	case catalog.KindSelect:
		c := t.Select()
		p.Correct = c.Correct
		p.Options = ShuffleOptions(g.rng, c.Options)
	case catalog.KindNumeric:
		p.NumericAnswer = t.Numeric(amount)
		p.NumericOptions = Distractors(g.rng, []int64{p.NumericAnswer})
	}
	return p
}

// fillJournalOptions sets the account and amount option sets from the
// problem's correct entry.
func fillJournalOptions(rng *rand.Rand, p *Problem) {
	var accounts []string
	var amounts []int64
	for _, l := range p.Journal.Debits {
		accounts = append(accounts, l.Account)
		amounts = append(amounts, l.Amount)
	}
	for _, l := range p.Journal.Credits {
		accounts = append(accounts, l.Account)
		amounts = append(amounts, l.Amount)
	}
	p.AccountOptions = AccountOptions(rng, accounts, catalog.Accounts())
	p.AmountOptions = Distractors(rng, amounts)
}
