package cmd

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/config"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/store"
)

func TestBuildGenerator_TemplatesOnly(t *testing.T) {
	gen, source := buildGenerator(context.Background(), config.Config{Seed: 7}, nil, nil)
	_, ok := gen.(*problemgen.TemplateGenerator)
	assert.True(t, ok)
	assert.Equal(t, "テンプレート", source)
}

func TestBuildGenerator_NoProviderWarns(t *testing.T) {
	for _, k := range []string{"BOKIBATTLE_LLM_PROVIDER", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	var buf bytes.Buffer
	gen, _ := buildGenerator(context.Background(), config.Config{AIShare: 0.5}, nil, log.New(&buf, "", 0))

	_, ok := gen.(*problemgen.TemplateGenerator)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "no LLM provider is configured")
}

func TestBuildGenerator_BlendsWithProvider(t *testing.T) {
	t.Setenv("BOKIBATTLE_LLM_PROVIDER", "mock")
	t.Setenv("BOKIBATTLE_LLM_RETRY_MAX_ATTEMPTS", "1")

	gen, source := buildGenerator(context.Background(), config.Config{AIShare: 1, Seed: 3}, nil, nil)
	_, ok := gen.(*problemgen.BlendGenerator)
	require.True(t, ok)
	assert.True(t, strings.Contains(source, "AI 100%"), source)

	// The mock provider has no scripted responses, so generation falls
	// back to the templates.
	p, err := gen.Generate(context.Background(), problemgen.Request{Kinds: []catalog.Kind{catalog.KindJournal}})
	require.NoError(t, err)
	assert.Equal(t, problemgen.SourceTemplate, p.Source)
}

func TestUsageByModel(t *testing.T) {
	event := func(model string, in int, ok bool) store.LLMRequestEvent {
		return store.LLMRequestEvent{LLMRequestEventData: store.LLMRequestEventData{
			Model: model, InputTokens: in, OutputTokens: 10, LatencyMs: 100, Success: ok,
		}}
	}
	usage := usageByModel([]store.LLMRequestEvent{
		event("a", 5, true),
		event("b", 1, true),
		event("b", 2, false),
	})

	require.Len(t, usage, 2)
	assert.Equal(t, "b", usage[0].Model)
	assert.Equal(t, 2, usage[0].Calls)
	assert.Equal(t, 1, usage[0].Failed)
	assert.Equal(t, 3, usage[0].InputTokens)
	assert.Equal(t, int64(100), usage[0].avgLatency())
	assert.Equal(t, "a", usage[1].Model)
}

func TestKindsFlag(t *testing.T) {
	c := &cobra.Command{Use: "x"}
	c.Flags().StringSliceP("kind", "k", nil, "")
	require.NoError(t, c.Flags().Set("kind", "journal,numeric"))

	kinds, err := kindsFlag(c)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Kind{catalog.KindJournal, catalog.KindNumeric}, kinds)

	require.NoError(t, c.Flags().Set("kind", "essay"))
	_, err = kindsFlag(c)
	assert.ErrorContains(t, err, "unknown question kind")
}
