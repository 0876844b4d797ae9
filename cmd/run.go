package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/bokibattle/internal/app"
	"github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/config"
	"github.com/abhisek/bokibattle/internal/llm"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// The TUI owns the terminal; log to a file next to the database.
	logPath := cfg.LogPath(cfg.DBPath)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	gen, source := buildGenerator(cmd.Context(), cfg, st.EventRepo(), logger)

	return app.Run(app.Options{
		Generator: gen,
		Runs:      st.RunRepo(),
		Profile:   cfg.Profile(),
		Source:    source,
		SessionOptions: []battle.SessionOption{
			battle.WithLogger(logger),
			battle.WithTick(cfg.Tick),
			battle.WithProfile(cfg.Profile()),
			battle.WithNotifier(battle.LogNotifier{Logger: logger}),
		},
	})
}

// buildGenerator returns the template generator, blended with an LLM
// generator when a provider is configured and BOKIBATTLE_AI_SHARE is
// positive. Provider problems are reported to logger and the templates
// are used alone.
func buildGenerator(ctx context.Context, cfg config.Config, events store.EventRepo, logger *log.Logger) (problemgen.Generator, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var opts []problemgen.Option
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if s1, s2, ok := cfg.Seeds(); ok {
		opts = append(opts, problemgen.WithSeed(s1, s2))
		rng = rand.New(rand.NewPCG(s2, s1))
	}
	templates := problemgen.NewTemplateGenerator(opts...)

	if cfg.AIShare == 0 {
		return templates, "テンプレート"
	}
	llmCfg, err := llm.ConfigFromEnv()
	if err != nil {
		logger.Printf("warning: LLM config: %v", err)
		return templates, "テンプレート"
	}
	if !llmCfg.Enabled() {
		logger.Printf("warning: %sAI_SHARE is set but no LLM provider is configured", config.EnvPrefix)
		return templates, "テンプレート"
	}
	provider, err := llm.NewProvider(ctx, llmCfg, events, logger)
	if err != nil {
		logger.Printf("warning: LLM provider not available: %v", err)
		return templates, "テンプレート"
	}

	ai := problemgen.Fallback(problemgen.NewLLMGenerator(provider, problemgen.DefaultConfig(), opts...), templates, logger)
	return problemgen.Blend(ai, templates, cfg.AIShare, rng),
		fmt.Sprintf("テンプレート + AI %.0f%% (%s)", cfg.AIShare*100, provider.ModelID())
}
