package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// submissionRepo implements SubmissionRepo on the submissions table.
type submissionRepo struct {
	drv *entsql.Driver
}

func (r *submissionRepo) Append(ctx context.Context, sub *Submission) error {
	if sub.UUID == "" {
		sub.UUID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	data, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("marshal submission payload: %w", err)
	}

	query, args, err := entsql.Dialect(dialect.SQLite).
		Insert(submissionsTable).
		Columns(colUUID, colEmail, colTarget, colPayload, colSuccess, colError, colCreatedAt).
		Values(sub.UUID, sub.Email, sub.Target, string(data), sub.Success, sub.Error, sub.CreatedAt).
		Returning(colID).
		QueryErr()
	if err != nil {
		return fmt.Errorf("build submission insert: %w", err)
	}

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("append submission: %w", err)
	}
	defer rows.Close()

	id, err := entsql.ScanInt(rows)
	if err != nil {
		return fmt.Errorf("append submission: %w", err)
	}
	sub.ID = id
	return nil
}

func (r *submissionRepo) Recent(ctx context.Context, limit int) ([]Submission, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(colID, colUUID, colEmail, colTarget, colPayload, colSuccess, colError, colCreatedAt).
		From(entsql.Table(submissionsTable)).
		OrderBy(entsql.Desc(colCreatedAt), entsql.Desc(colID))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var (
			sub  Submission
			data string
		)
		if err := rows.Scan(&sub.ID, &sub.UUID, &sub.Email, &sub.Target, &data, &sub.Success, &sub.Error, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &sub.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal submission %s: %w", sub.UUID, err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	return out, nil
}

