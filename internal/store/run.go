package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var runColumns = []string{
	"run_id", "played_at", "score", "difficulty", "questions_answered",
	"monsters_defeated", "player_name", "prefecture", "outcome",
}

// runRepo implements RunRepo.
type runRepo struct {
	db   *sql.DB
	keep int
}

func (r *runRepo) RecordRun(ctx context.Context, rec ScoreRecord) error {
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query, args := builder().Insert(tableScoreRuns).
		Columns(runColumns...).
		Values(rec.ID, rec.Date.UTC(), rec.Score, rec.Difficulty, rec.QuestionsAnswered,
			rec.MonstersDefeated, rec.PlayerName, rec.Prefecture, rec.Outcome).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if err := prune(ctx, tx, r.keep); err != nil {
		return err
	}
	if err := raiseBest(ctx, tx, rec); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// prune deletes all but the keep newest runs.
func prune(ctx context.Context, tx *sql.Tx, keep int) error {
	query, args := builder().Select("id").
		From(entsql.Table(tableScoreRuns)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Offset(keep - 1).
		Query()

	var cutoff int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&cutoff)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find prune cutoff: %w", err)
	}

	query, args = builder().Delete(tableScoreRuns).
		Where(entsql.LT("id", cutoff)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}

func raiseBest(ctx context.Context, tx *sql.Tx, rec ScoreRecord) error {
	query, args := builder().Select("score").
		From(entsql.Table(tableBestScores)).
		Where(entsql.EQ("difficulty", rec.Difficulty)).
		Query()

	var best int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&best)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		query, args = builder().Insert(tableBestScores).
			Columns("difficulty", "score", "run_id", "updated_at").
			Values(rec.Difficulty, rec.Score, rec.ID, rec.Date.UTC()).
			Query()
	case err != nil:
		return fmt.Errorf("read best score: %w", err)
	case rec.Score > best:
		query, args = builder().Update(tableBestScores).
			Set("score", rec.Score).
			Set("run_id", rec.ID).
			Set("updated_at", rec.Date.UTC()).
			Where(entsql.EQ("difficulty", rec.Difficulty)).
			Query()
	default:
		return nil
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

func (r *runRepo) BestScore(ctx context.Context, difficulty string) (int, error) {
	query, args := builder().Select("score").
		From(entsql.Table(tableBestScores)).
		Where(entsql.EQ("difficulty", difficulty)).
		Query()

	var best int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&best)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read best score: %w", err)
	}
	return best, nil
}

func (r *runRepo) BestScores(ctx context.Context) (map[string]int, error) {
	query, args := builder().Select("difficulty", "score").
		From(entsql.Table(tableBestScores)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query best scores: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var d string
		var score int
		if err := rows.Scan(&d, &score); err != nil {
			return nil, fmt.Errorf("scan best score: %w", err)
		}
		out[d] = score
	}
	return out, rows.Err()
}

func (r *runRepo) Recent(ctx context.Context, opts RecentOpts) ([]ScoreRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = MaxHistory
	}
	sel := builder().Select(runColumns...).
		From(entsql.Table(tableScoreRuns)).
		OrderBy(entsql.Desc("id")).
		Limit(limit)
	if opts.Difficulty != "" {
		sel.Where(entsql.EQ("difficulty", opts.Difficulty))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []ScoreRecord
	for rows.Next() {
		var rec ScoreRecord
		err := rows.Scan(&rec.ID, &rec.Date, &rec.Score, &rec.Difficulty, &rec.QuestionsAnswered,
			&rec.MonstersDefeated, &rec.PlayerName, &rec.Prefecture, &rec.Outcome)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *runRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{tableScoreRuns, tableBestScores} {
		query, args := builder().Delete(table).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}
