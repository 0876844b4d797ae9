package battle

import (
	"fmt"
	"time"
)

// Level identifies a difficulty setting.
type Level string

const (
	LevelEasy     Level = "easy"
	LevelHard     Level = "hard"
	LevelPractice Level = "practice"
)

// Difficulty holds the static settings selected at run start.
type Difficulty struct {
	Level         Level
	Label         string
	PlayerHP      int
	StartInterval time.Duration
	MinInterval   time.Duration
}

// practiceInterval is long enough that a practice countdown never expires.
const practiceInterval = 999999 * time.Second

var difficulties = []Difficulty{
	{Level: LevelEasy, Label: "初級", PlayerHP: 300, StartInterval: 30 * time.Second, MinInterval: 10 * time.Second},
	{Level: LevelHard, Label: "上級", PlayerHP: 100, StartInterval: 20 * time.Second, MinInterval: 5 * time.Second},
	{Level: LevelPractice, Label: "練習", PlayerHP: 999999, StartInterval: practiceInterval, MinInterval: practiceInterval},
}

// Difficulties lists every difficulty in menu order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// DifficultyFor returns the settings for level.
func DifficultyFor(level Level) (Difficulty, error) {
	for _, d := range difficulties {
		if d.Level == level {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q: must be easy, hard or practice", level)
}

const (
	// MaxQuestions is the question budget of a run.
	MaxQuestions = 100

	BaseDamage     = 20
	CriticalDamage = BaseDamage * 3 / 2
	TimeBonus      = 100
	ComboBonus     = 50
	WrongDamage    = 15

	// timeoutBaseDamage grows by one for every ten questions answered.
	timeoutBaseDamage = 10

	// criticalFraction is the share of the interval within which a
	// correct answer is critical.
	criticalFraction = 0.3

	// ResultDelay is how long a resolved turn is shown before the result.
	ResultDelay = 1200 * time.Millisecond

	// DefeatDelay is how long a lethal timeout is shown before the run ends.
	DefeatDelay = time.Second

	// DefaultTick is the countdown tick period.
	DefaultTick = 100 * time.Millisecond
)

// AttackInterval returns the countdown length for question index q. It
// shrinks linearly from StartInterval toward MinInterval as q approaches
// MaxQuestions and never drops below MinInterval.
func AttackInterval(d Difficulty, q int) time.Duration {
	progress := min(float64(q)/MaxQuestions, 1)
	span := float64(d.StartInterval - d.MinInterval)
	current := d.StartInterval - time.Duration(progress*span)
	return max(d.MinInterval, current)
}

// TimeoutDamage is the damage a missed deadline deals at question index q.
func TimeoutDamage(q int) int {
	return timeoutBaseDamage + q/10
}

// IsCritical reports whether an answer after elapsed counts as fast.
func IsCritical(elapsed, interval time.Duration) bool {
	return float64(elapsed) < criticalFraction*float64(interval)
}
