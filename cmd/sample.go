package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/ui/components"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print generated problems with their options and answers (no database)",
	Long: `Generate problems the way a battle would and print them with every
option and the correct answer. This is a stateless tool for checking
templates, distractors and AI generation; nothing is recorded.`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringSliceP("kind", "k", nil, "Question kinds (journal, select, numeric)")
	sampleCmd.Flags().Int("count", 5, "Number of problems to generate")
	sampleCmd.Flags().Uint64("seed", 0, "Seed for reproducible output (0 = random)")
	sampleCmd.Flags().Bool("ai", false, "Generate journal problems with the configured LLM provider")
	sampleCmd.Flags().StringP("template", "t", "", "Generate only from this template ID (see 'bokibattle catalog')")
}

func runSample(cmd *cobra.Command, args []string) error {
	kinds, err := kindsFlag(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	useAI, _ := cmd.Flags().GetBool("ai")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	cfg.AIShare = 0
	if useAI {
		cfg.AIShare = 1
	}

	logger := log.New(os.Stderr, "", 0)
	gen, source := buildGenerator(cmd.Context(), cfg, nil, logger)

	templateID, _ := cmd.Flags().GetString("template")
	var fixed *problemgen.TemplateGenerator
	if templateID != "" {
		var opts []problemgen.Option
		if s1, s2, ok := cfg.Seeds(); ok {
			opts = append(opts, problemgen.WithSeed(s1, s2))
		}
		fixed = problemgen.NewTemplateGenerator(opts...)
		source = "テンプレート " + templateID
	}

	fmt.Printf("Source: %s\n\n", source)

	req := problemgen.Request{Difficulty: "easy", Kinds: kinds}
	for i := 1; i <= count; i++ {
		var p *problemgen.Problem
		if fixed != nil {
			p, err = fixed.GenerateFrom(templateID)
		} else {
			p, err = gen.Generate(cmd.Context(), req)
		}
		if err != nil {
			return fmt.Errorf("problem %d: %w", i, err)
		}
		fmt.Printf("── Problem %d/%d [%s %s] ──\n", i, count, p.Kind.Label(), sampleOrigin(p))
		fmt.Println(p.Text)
		printOptions(p)
		fmt.Printf("Answer: %s\n", components.AnswerText(p))
		if p.Explanation != "" {
			fmt.Printf("Explanation: %s\n", p.Explanation)
		}
		fmt.Println()
	}
	return nil
}

func sampleOrigin(p *problemgen.Problem) string {
	if p.Source == problemgen.SourceAI {
		return "AI"
	}
	return p.TemplateID
}

func printOptions(p *problemgen.Problem) {
	switch p.Kind {
	case catalog.KindJournal:
		fmt.Printf("  Accounts: %s\n", strings.Join(p.AccountOptions, " / "))
		amounts := make([]string, len(p.AmountOptions))
		for i, a := range p.AmountOptions {
			amounts[i] = catalog.Yen(a)
		}
		fmt.Printf("  Amounts:  %s\n", strings.Join(amounts, " / "))
	case catalog.KindSelect:
		for j, o := range p.Options {
			fmt.Printf("  %d) %s\n", j+1, o)
		}
	case catalog.KindNumeric:
		for j, o := range p.NumericOptions {
			fmt.Printf("  %d) %s\n", j+1, components.YenLabel(o))
		}
	}
}
