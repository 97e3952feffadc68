package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type progressRepo struct {
	db *sqlx.DB
}

type progressRow struct {
	LearnerID          string `db:"learner_id"`
	Language           string `db:"language"`
	Level              string `db:"level"`
	CompletedConcepts  string `db:"completed_concepts"`
	ExercisesCompleted int    `db:"exercises_completed"`
	ProjectCompleted   bool   `db:"project_completed"`
	TotalTimeSpent     int    `db:"total_time_spent"`
	CreatedAt          int64  `db:"created_at"`
	UpdatedAt          int64  `db:"updated_at"`
}

const progressColumns = `learner_id, language, level, completed_concepts, exercises_completed,
	project_completed, total_time_spent, created_at, updated_at`

func (r *progressRepo) Get(ctx context.Context, learnerID, language, level string) (*ProgressRecord, error) {
	var row progressRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+progressColumns+` FROM progress WHERE learner_id = ? AND language = ? AND level = ?`,
		learnerID, language, level)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return row.record()
}

func (r *progressRepo) Save(ctx context.Context, rec *ProgressRecord) error {
	concepts := rec.CompletedConcepts
	if concepts == nil {
		concepts = []string{}
	}
	data, err := json.Marshal(concepts)
	if err != nil {
		return fmt.Errorf("marshal completed concepts: %w", err)
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO progress (`+progressColumns+`)
		VALUES (:learner_id, :language, :level, :completed_concepts, :exercises_completed,
			:project_completed, :total_time_spent, :created_at, :updated_at)
		ON CONFLICT (learner_id, language, level) DO UPDATE SET
			completed_concepts = excluded.completed_concepts,
			exercises_completed = excluded.exercises_completed,
			project_completed = excluded.project_completed,
			total_time_spent = excluded.total_time_spent,
			updated_at = excluded.updated_at`,
		progressRow{
			LearnerID:          rec.LearnerID,
			Language:           rec.Language,
			Level:              rec.Level,
			CompletedConcepts:  string(data),
			ExercisesCompleted: rec.ExercisesCompleted,
			ProjectCompleted:   rec.ProjectCompleted,
			TotalTimeSpent:     rec.TotalTimeSpent,
			CreatedAt:          toMillis(rec.CreatedAt),
			UpdatedAt:          toMillis(rec.UpdatedAt),
		})
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) ListByLearner(ctx context.Context, learnerID string) ([]ProgressRecord, error) {
	var rows []progressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+progressColumns+` FROM progress WHERE learner_id = ? ORDER BY language, level`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return progressRecords(rows)
}

func (r *progressRepo) List(ctx context.Context) ([]ProgressRecord, error) {
	var rows []progressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+progressColumns+` FROM progress ORDER BY learner_id, language, level`)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return progressRecords(rows)
}

func progressRecords(rows []progressRow) ([]ProgressRecord, error) {
	records := make([]ProgressRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (row progressRow) record() (*ProgressRecord, error) {
	var concepts []string
	if err := json.Unmarshal([]byte(row.CompletedConcepts), &concepts); err != nil {
		return nil, fmt.Errorf("unmarshal completed concepts for %s: %w", row.LearnerID, err)
	}
	return &ProgressRecord{
		LearnerID:          row.LearnerID,
		Language:           row.Language,
		Level:              row.Level,
		CompletedConcepts:  concepts,
		ExercisesCompleted: row.ExercisesCompleted,
		ProjectCompleted:   row.ProjectCompleted,
		TotalTimeSpent:     row.TotalTimeSpent,
		CreatedAt:          fromMillis(row.CreatedAt),
		UpdatedAt:          fromMillis(row.UpdatedAt),
	}, nil
}
