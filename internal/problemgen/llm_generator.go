package problemgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/llm"
)

// ErrKindNotSupported is returned by LLMGenerator for requests that do
// not allow journal problems.
var ErrKindNotSupported = fmt.Errorf("AI generation supports only %s problems", catalog.KindJournal)

// LLMGenerator implements Generator by asking an LLM provider for a
// journal-entry problem.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	mu    sync.Mutex
	rng   *rand.Rand
	prior []string
	newID func() string
}

// NewLLMGenerator creates a generator backed by provider.
func NewLLMGenerator(provider llm.Provider, cfg Config, opts ...Option) *LLMGenerator {
	s := newSettings(opts)
	return &LLMGenerator{
		provider: provider,
		config:   cfg,
		rng:      s.rng,
		newID:    s.newID,
	}
}

// journalOutput is the raw LLM response before validation.
type journalOutput struct {
	QuestionText string       `json:"questionText"`
	Debits       []lineOutput `json:"debits"`
	Credits      []lineOutput `json:"credits"`
	Explanation  string       `json:"explanation"`
}

type lineOutput struct {
	AccountName string `json:"accountName"`
	Amount      int64  `json:"amount"`
}

func toLines(in []lineOutput) []catalog.JournalLine {
	out := make([]catalog.JournalLine, len(in))
	for i, l := range in {
		out[i] = catalog.JournalLine{Account: l.AccountName, Amount: l.Amount}
	}
	return out
}

// Generate asks the provider for a journal problem, validates it and
// synthesizes its option sets.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Problem, error) {
	if !req.Allows(catalog.KindJournal) {
		return nil, ErrKindNotSupported
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeJournalGen)

	g.mu.Lock()
	userMsg := buildUserMessage(req, g.prior, g.config)
	g.mu.Unlock()

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      JournalSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw journalOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	p := &Problem{
		Kind:        catalog.KindJournal,
		Text:        raw.QuestionText,
		Explanation: raw.Explanation,
		Source:      SourceAI,
		Journal: catalog.JournalEntry{
			Debits:  toLines(raw.Debits),
			Credits: toLines(raw.Credits),
		},
	}
	for _, v := range g.config.Validators {
		if verr := v.Validate(p); verr != nil {
			return nil, verr
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	p.ID = g.newID()
	fillJournalOptions(g.rng, p)
	g.prior = append(g.prior, p.Text)
	if max := g.config.MaxPriorQuestions; max > 0 && len(g.prior) > max {
		g.prior = g.prior[len(g.prior)-max:]
	}
	return p, nil
}
