package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type certificateRepo struct {
	db *sqlx.DB
}

type certificateRow struct {
	ID                      string `db:"id"`
	SerialNumber            string `db:"serial_number"`
	Title                   string `db:"title"`
	LearnerID               string `db:"learner_id"`
	Language                string `db:"language"`
	Level                   string `db:"level"`
	IssueDate               int64  `db:"issue_date"`
	ValidUntil              int64  `db:"valid_until"`
	Score                   int    `db:"score"`
	TimeSpent               int    `db:"time_spent"`
	Honor                   string `db:"honor"`
	Achievements            string `db:"achievements"`
	NextLevelRecommendation string `db:"next_level_recommendation"`
}

const certificateColumns = `id, serial_number, title, learner_id, language, level, issue_date,
	valid_until, score, time_spent, honor, achievements, next_level_recommendation`

func (r *certificateRepo) Save(ctx context.Context, rec *CertificateRecord) error {
	achievements := rec.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	data, err := json.Marshal(achievements)
	if err != nil {
		return fmt.Errorf("marshal achievements: %w", err)
	}

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO certificates (`+certificateColumns+`)
		VALUES (:id, :serial_number, :title, :learner_id, :language, :level, :issue_date,
			:valid_until, :score, :time_spent, :honor, :achievements, :next_level_recommendation)`,
		certificateRow{
			ID:                      rec.ID,
			SerialNumber:            rec.SerialNumber,
			Title:                   rec.Title,
			LearnerID:               rec.LearnerID,
			Language:                rec.Language,
			Level:                   rec.Level,
			IssueDate:               toMillis(rec.IssueDate),
			ValidUntil:              toMillis(rec.ValidUntil),
			Score:                   rec.Score,
			TimeSpent:               rec.TimeSpent,
			Honor:                   rec.Honor,
			Achievements:            string(data),
			NextLevelRecommendation: rec.NextLevelRecommendation,
		})
	if err != nil {
		return fmt.Errorf("save certificate %s: %w", rec.ID, err)
	}
	return nil
}

func (r *certificateRepo) Get(ctx context.Context, serial string) (*CertificateRecord, error) {
	var row certificateRow
	err := r.db.GetContext(ctx, &row, `SELECT `+certificateColumns+` FROM certificates WHERE serial_number = ?`, serial)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return row.record()
}

func (r *certificateRepo) ListByLearner(ctx context.Context, learnerID string) ([]CertificateRecord, error) {
	var rows []certificateRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+certificateColumns+` FROM certificates WHERE learner_id = ? ORDER BY issue_date, serial_number`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}

	records := make([]CertificateRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (row certificateRow) record() (*CertificateRecord, error) {
	var achievements []string
	if err := json.Unmarshal([]byte(row.Achievements), &achievements); err != nil {
		return nil, fmt.Errorf("unmarshal achievements for %s: %w", row.ID, err)
	}
	return &CertificateRecord{
		ID:                      row.ID,
		SerialNumber:            row.SerialNumber,
		Title:                   row.Title,
		LearnerID:               row.LearnerID,
		Language:                row.Language,
		Level:                   row.Level,
		IssueDate:               fromMillis(row.IssueDate),
		ValidUntil:              fromMillis(row.ValidUntil),
		Score:                   row.Score,
		TimeSpent:               row.TimeSpent,
		Honor:                   row.Honor,
		Achievements:            achievements,
		NextLevelRecommendation: row.NextLevelRecommendation,
	}, nil
}
