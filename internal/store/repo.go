package store

import (
	"context"
	"time"
)

// MaxHistory is the number of runs kept in the history table. Older
// runs are pruned on insert; best scores are kept separately.
const MaxHistory = 100

// ScoreRecord is one finished run as persisted in the history.
type ScoreRecord struct {
	ID                string
	Date              time.Time
	Score             int
	Difficulty        string
	QuestionsAnswered int
	MonstersDefeated  int // monsters beaten, the final blow included
	PlayerName        string
	Prefecture        string
	Outcome           string
}

// RecentOpts filters history queries.
type RecentOpts struct {
	Limit      int    // max results (0 = MaxHistory)
	Difficulty string // empty = all difficulties
}

// RunRepo stores finished runs and best scores.
type RunRepo interface {
	// RecordRun appends rec to the history, prunes it to MaxHistory
	// entries and raises the difficulty's best score if rec beats it.
	RecordRun(ctx context.Context, rec ScoreRecord) error

	// BestScore returns the best score for difficulty, or 0 if none.
	BestScore(ctx context.Context, difficulty string) (int, error)

	// BestScores returns every recorded best score keyed by difficulty.
	BestScores(ctx context.Context) (map[string]int, error)

	// Recent returns runs newest first.
	Recent(ctx context.Context, opts RecentOpts) ([]ScoreRecord, error)

	// Reset deletes the history and every best score.
	Reset(ctx context.Context) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Purpose string // exact purpose match, empty = any
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
}
