package cmd

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/problemgen"
	"github.com/abhisek/bokibattle/internal/ui/layout"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a run headlessly with a bot on a virtual clock",
	Long: `Run a full battle with a bot player. The bot answers every problem
after --think of virtual time, correctly with probability --accuracy.
Time is simulated, so a 100-question run finishes instantly.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringP("difficulty", "d", "easy", "Difficulty (easy, hard, practice)")
	simulateCmd.Flags().StringSliceP("kind", "k", nil, "Question kinds (journal, select, numeric)")
	simulateCmd.Flags().Float64("accuracy", 0.8, "Probability the bot answers correctly")
	simulateCmd.Flags().Duration("think", 3*time.Second, "Virtual time the bot takes per answer")
	simulateCmd.Flags().Uint64("seed", 1, "Seed for problems and bot choices")
	simulateCmd.Flags().Duration("max-time", 24*time.Hour, "Virtual time limit")
	simulateCmd.Flags().Bool("record", false, "Record the run in the database")
	simulateCmd.Flags().BoolP("verbose", "v", false, "Log every cue")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetString("difficulty")
	accuracy, _ := cmd.Flags().GetFloat64("accuracy")
	think, _ := cmd.Flags().GetDuration("think")
	seed, _ := cmd.Flags().GetUint64("seed")
	maxTime, _ := cmd.Flags().GetDuration("max-time")
	record, _ := cmd.Flags().GetBool("record")
	verbose, _ := cmd.Flags().GetBool("verbose")

	d, err := battle.DifficultyFor(battle.Level(level))
	if err != nil {
		return err
	}
	if accuracy < 0 || accuracy > 1 {
		return fmt.Errorf("accuracy must be within [0, 1], got %g", accuracy)
	}
	kinds, err := kindsFlag(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "", 0)
	sched := battle.NewVirtualScheduler(time.Now())
	bot := battle.NewBot(sched, accuracy, think, rand.New(rand.NewPCG(seed, seed+1)))
	gen := problemgen.NewTemplateGenerator(problemgen.WithSeed(seed, seed^0x9e3779b97f4a7c15))

	opts := []battle.SessionOption{
		battle.WithClock(sched),
		battle.WithLogger(logger),
		battle.WithTick(cfg.Tick),
		battle.WithProfile(cfg.Profile()),
		battle.WithObserver(bot.Observe),
	}
	if verbose {
		opts = append(opts, battle.WithNotifier(battle.LogNotifier{Logger: logger}))
	}
	if record {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, battle.WithRecorder(st.RunRepo()))
	}

	session := battle.NewSession(gen, sched, opts...)
	final := battle.Simulate(session, sched, d, kinds, maxTime)

	run := final.Current()
	outcome := "unfinished"
	if ended, ok := final.(battle.RunEnded); ok {
		outcome = string(ended.Outcome)
	}
	fmt.Printf("Outcome:    %s\n", outcome)
	fmt.Printf("Difficulty: %s (%s)\n", d.Label, d.Level)
	fmt.Printf("Score:      %s\n", layout.Number(run.Player.Score))
	fmt.Printf("Questions:  %d\n", run.QuestionIndex)
	fmt.Printf("Turns:      %d\n", run.Turn)
	fmt.Printf("Monsters:   %d defeated\n", run.MonsterIndex)
	fmt.Printf("HP:         %d/%d\n", run.Player.HP, run.Player.MaxHP)
	fmt.Printf("Time:       %s (virtual)\n", sched.Elapsed().Round(time.Second))
	return nil
}
