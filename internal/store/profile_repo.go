package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/cragcoach/internal/profile"
)

// profileRepo implements ProfileRepo on top of the ent SQL builder.
type profileRepo struct {
	drv *entsql.Driver
}

// profileSelectColumns is the scan order of readProfile.
func profileSelectColumns() []string {
	cols := []string{colID, colEmail}
	cols = append(cols, profileAnswerColumns...)
	return append(cols, colUpdatedAt)
}

func (r *profileRepo) Get(ctx context.Context, email string) (*profile.Profile, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(profileSelectColumns()...).
		From(entsql.Table(profilesTable)).
		Where(entsql.EQ(colEmail, email)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query profile: %w", err)
		}
		return nil, nil
	}
	p, err := readProfile(&rows)
	if err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *profile.Profile) (int, error) {
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	payload := profile.ToPayload(p)
	cols := []string{colEmail}
	vals := []any{nullableEmail(p)}
	for _, name := range profileAnswerColumns {
		cols = append(cols, name)
		vals = append(vals, payload[name])
	}
	cols = append(cols, colUpdatedAt)
	vals = append(vals, updatedAt)

	query, args, err := entsql.Dialect(dialect.SQLite).
		Insert(profilesTable).
		Columns(cols...).
		Values(vals...).
		OnConflict(
			entsql.ConflictColumns(colEmail),
			entsql.ResolveWithNewValues(),
		).
		Returning(colID).
		QueryErr()
	if err != nil {
		return 0, fmt.Errorf("build profile upsert: %w", err)
	}

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("upsert profile: %w", err)
	}
	defer rows.Close()

	id, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("upsert profile: %w", err)
	}
	return id, nil
}

func (r *profileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(profileSelectColumns()...).
		From(entsql.Table(profilesTable)).
		OrderBy(entsql.Desc(colUpdatedAt), entsql.Desc(colID)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []*profile.Profile
	for rows.Next() {
		p, err := readProfile(&rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return out, nil
}

// readProfile scans the current row in profileSelectColumns order.
func readProfile(rows *entsql.Rows) (*profile.Profile, error) {
	var (
		id        int
		email     sql.NullString
		updatedAt time.Time
		answers   = make([]string, len(profileAnswerColumns))
	)
	dest := []any{&id, &email}
	for i := range answers {
		dest = append(dest, &answers[i])
	}
	dest = append(dest, &updatedAt)

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	payload := make(profile.AnswerPayload, len(profileAnswerColumns))
	for i, name := range profileAnswerColumns {
		payload[name] = answers[i]
	}
	p := profile.FromPayload(payload)
	p.ID = id
	if email.Valid {
		p.SetEmail(email.String)
	}
	p.UpdatedAt = updatedAt
	return p, nil
}

func nullableEmail(p *profile.Profile) any {
	if p.Email == nil || *p.Email == "" {
		return nil
	}
	return *p.Email
}
