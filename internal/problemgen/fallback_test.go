package problemgen

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/llm"
)

func TestFallback_UsesPrimaryOnSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validJournalJSON()})
	gen := Fallback(newTestLLMGenerator(mock), seededGenerator(1), nil)

	p, err := gen.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, SourceAI, p.Source)
}

func TestFallback_SwitchesOnError(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questionText":"q","debits":[{"accountName":"仕入","amount":1}],"credits":[{"accountName":"買掛金","amount":2}],"explanation":"e"}`),
	})
	gen := Fallback(newTestLLMGenerator(mock), seededGenerator(1), logger)

	p, err := gen.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, p.Source)
	assert.True(t, strings.HasPrefix(buf.String(), "warning: generated problem rejected by balance"), buf.String())
}

func TestFallback_PropagatesSecondaryError(t *testing.T) {
	gen := Fallback(newTestLLMGenerator(llm.NewMockProvider()), seededGenerator(1), nil)
	_, err := gen.Generate(context.Background(), Request{Kinds: []catalog.Kind{"essay"}})
	assert.ErrorIs(t, err, catalog.ErrNoTemplates)
}

func TestBlend_Routing(t *testing.T) {
	mock := llm.NewMockProvider()
	for range 10 {
		mock.AddResponse(llm.MockResponse{Content: validJournalJSON()})
	}
	ai := newTestLLMGenerator(mock)

	never := Blend(ai, seededGenerator(1), 0, testRand(1))
	for range 10 {
		p, err := never.Generate(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, SourceTemplate, p.Source)
	}

	always := Blend(ai, seededGenerator(1), 1, testRand(1))
	p, err := always.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, SourceAI, p.Source)

	// Journal excluded: the AI generator is skipped even at share 1.
	p, err = always.Generate(context.Background(), Request{Kinds: []catalog.Kind{catalog.KindNumeric}})
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, p.Source)
	assert.Equal(t, 1, mock.CallCount())
}
