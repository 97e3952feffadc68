package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type lessonRepo struct {
	db *sqlx.DB
}

type lessonRow struct {
	Language  string `db:"language"`
	Level     string `db:"level"`
	ConceptID string `db:"concept_id"`
	Title     string `db:"title"`
	Body      string `db:"body"`
	Source    string `db:"source"`
	UpdatedAt int64  `db:"updated_at"`
}

func (row lessonRow) record() LessonRecord {
	return LessonRecord{
		Language:  row.Language,
		Level:     row.Level,
		ConceptID: row.ConceptID,
		Title:     row.Title,
		Body:      row.Body,
		Source:    row.Source,
		UpdatedAt: fromMillis(row.UpdatedAt),
	}
}

func (r *lessonRepo) Put(ctx context.Context, rec *LessonRecord) error {
	rec.UpdatedAt = time.Now().UTC()
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO lessons
		(language, level, concept_id, title, body, source, updated_at)
		VALUES (:language, :level, :concept_id, :title, :body, :source, :updated_at)
		ON CONFLICT (language, level, concept_id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			source = excluded.source,
			updated_at = excluded.updated_at`,
		lessonRow{
			Language:  rec.Language,
			Level:     rec.Level,
			ConceptID: rec.ConceptID,
			Title:     rec.Title,
			Body:      rec.Body,
			Source:    rec.Source,
			UpdatedAt: toMillis(rec.UpdatedAt),
		})
	if err != nil {
		return fmt.Errorf("put lesson %s: %w", rec.ConceptID, err)
	}
	return nil
}

func (r *lessonRepo) Get(ctx context.Context, language, level, conceptID string) (*LessonRecord, error) {
	var row lessonRow
	err := r.db.GetContext(ctx, &row,
		`SELECT language, level, concept_id, title, body, source, updated_at
		FROM lessons WHERE language = ? AND level = ? AND concept_id = ?`,
		language, level, conceptID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	rec := row.record()
	return &rec, nil
}

func (r *lessonRepo) List(ctx context.Context, language string) ([]LessonRecord, error) {
	query := `SELECT language, level, concept_id, title, body, source, updated_at FROM lessons`
	var args []any
	if language != "" {
		query += ` WHERE language = ?`
		args = append(args, language)
	}
	query += ` ORDER BY language, level, concept_id`

	var rows []lessonRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	records := make([]LessonRecord, len(rows))
	for i, row := range rows {
		records[i] = row.record()
	}
	return records, nil
}
