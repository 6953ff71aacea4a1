package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Flag keys.
const (
	flagNeedsQuestionnaire      = "needs_questionnaire"
	flagShowQuestionnairePrompt = "show_questionnaire_prompt"
)

// flagRepo implements FlagRepo as key/value rows in the flags table.
type flagRepo struct {
	drv *entsql.Driver
}

func (r *flagRepo) Get(ctx context.Context) (Flags, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(colKey, colValue).
		From(entsql.Table(flagsTable)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return Flags{}, fmt.Errorf("query flags: %w", err)
	}
	defer rows.Close()

	flags := DefaultFlags
	for rows.Next() {
		var (
			key   string
			value bool
		)
		if err := rows.Scan(&key, &value); err != nil {
			return Flags{}, fmt.Errorf("scan flag: %w", err)
		}
		switch key {
		case flagNeedsQuestionnaire:
			flags.NeedsQuestionnaire = value
		case flagShowQuestionnairePrompt:
			flags.ShowQuestionnairePrompt = value
		}
	}
	if err := rows.Err(); err != nil {
		return Flags{}, fmt.Errorf("query flags: %w", err)
	}
	return flags, nil
}

func (r *flagRepo) SetNeedsQuestionnaire(ctx context.Context, v bool) error {
	return r.set(ctx, flagNeedsQuestionnaire, v)
}

func (r *flagRepo) SetShowQuestionnairePrompt(ctx context.Context, v bool) error {
	return r.set(ctx, flagShowQuestionnairePrompt, v)
}

func (r *flagRepo) Reset(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(flagsTable).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("reset flags: %w", err)
	}
	return nil
}

func (r *flagRepo) set(ctx context.Context, key string, v bool) error {
	query, args, err := entsql.Dialect(dialect.SQLite).
		Insert(flagsTable).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, v, time.Now()).
		OnConflict(
			entsql.ConflictColumns(colKey),
			entsql.ResolveWithNewValues(),
		).
		QueryErr()
	if err != nil {
		return fmt.Errorf("build flag upsert: %w", err)
	}
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("set flag %s: %w", key, err)
	}
	return nil
}
