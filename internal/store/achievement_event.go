package store

import (
	"context"
	"fmt"
	"time"
)

type achievementEventRow struct {
	Sequence      int64  `db:"sequence"`
	Timestamp     int64  `db:"timestamp"`
	LearnerID     string `db:"learner_id"`
	Kind          string `db:"kind"`
	Rarity        string `db:"rarity"`
	Language      string `db:"language"`
	Level         string `db:"level"`
	CertificateID string `db:"certificate_id"`
	Reason        string `db:"reason"`
}

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.NamedExecContext(ctx, `INSERT INTO achievement_events
		(sequence, timestamp, learner_id, kind, rarity, language, level, certificate_id, reason)
		VALUES (:sequence, :timestamp, :learner_id, :kind, :rarity, :language, :level, :certificate_id, :reason)`,
		achievementEventRow{
			Sequence:      seqNum,
			Timestamp:     toMillis(time.Now()),
			LearnerID:     data.LearnerID,
			Kind:          data.Kind,
			Rarity:        data.Rarity,
			Language:      data.Language,
			Level:         data.Level,
			CertificateID: data.CertificateID,
			Reason:        data.Reason,
		})
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAchievementEvents(ctx context.Context, learnerID string, opts QueryOpts) ([]AchievementEventRecord, error) {
	where, args := opts.conditions("learner_id = ?")
	args = append([]any{learnerID}, args...)
	query := `SELECT sequence, timestamp, learner_id, kind, rarity, language, level, certificate_id, reason
		FROM achievement_events` + where + ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	var rows []achievementEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query achievement events: %w", err)
	}

	records := make([]AchievementEventRecord, len(rows))
	for i, row := range rows {
		records[i] = AchievementEventRecord{
			AchievementEventData: AchievementEventData{
				LearnerID:     row.LearnerID,
				Kind:          row.Kind,
				Rarity:        row.Rarity,
				Language:      row.Language,
				Level:         row.Level,
				CertificateID: row.CertificateID,
				Reason:        row.Reason,
			},
			Sequence:  row.Sequence,
			Timestamp: fromMillis(row.Timestamp),
		}
	}
	return records, nil
}

func (r *eventRepo) AchievementCounts(ctx context.Context, learnerID string) (map[string]int, int, error) {
	var rows []struct {
		Kind  string `db:"kind"`
		Count int    `db:"n"`
	}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT kind, COUNT(*) AS n FROM achievement_events WHERE learner_id = ? GROUP BY kind`, learnerID)
	if err != nil {
		return nil, 0, fmt.Errorf("query achievement counts: %w", err)
	}

	byKind := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		byKind[row.Kind] = row.Count
		total += row.Count
	}
	return byKind, total, nil
}
