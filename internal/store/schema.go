package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/cragcoach/internal/profile"
)

// Table and column names.
const (
	profilesTable    = "profiles"
	flagsTable       = "flags"
	submissionsTable = "submissions"

	colID        = "id"
	colUpdatedAt = "updated_at"
	colKey       = "key"
	colValue     = "value"
	colUUID      = "uuid"
	colEmail     = "email"
	colTarget    = "target"
	colPayload   = "payload"
	colSuccess   = "success"
	colError     = "error"
	colCreatedAt = "created_at"
)

// profileAnswerColumns are the profile columns that hold answers, named after
// their payload keys. Email is excluded because it is nullable.
var profileAnswerColumns = func() []string {
	cols := make([]string, 0, len(profile.AnswerKeys)-1)
	for _, k := range profile.AnswerKeys {
		if k != profile.KeyEmail {
			cols = append(cols, k)
		}
	}
	return cols
}()

var (
	profilesID      = &schema.Column{Name: colID, Type: field.TypeInt, Increment: true}
	profilesColumns = func() []*schema.Column {
		cols := []*schema.Column{
			profilesID,
			{Name: colEmail, Type: field.TypeString, Unique: true, Nullable: true},
		}
		for _, name := range profileAnswerColumns {
			cols = append(cols, &schema.Column{Name: name, Type: field.TypeString, Size: 2147483647, Default: ""})
		}
		return append(cols, &schema.Column{Name: colUpdatedAt, Type: field.TypeTime})
	}()
	// ProfilesTable holds one row per climber, keyed by email.
	ProfilesTable = &schema.Table{
		Name:       profilesTable,
		Columns:    profilesColumns,
		PrimaryKey: []*schema.Column{profilesID},
	}

	flagsKey     = &schema.Column{Name: colKey, Type: field.TypeString}
	flagsColumns = []*schema.Column{
		flagsKey,
		{Name: colValue, Type: field.TypeBool},
		{Name: colUpdatedAt, Type: field.TypeTime},
	}
	// FlagsTable holds boolean application flags by key.
	FlagsTable = &schema.Table{
		Name:       flagsTable,
		Columns:    flagsColumns,
		PrimaryKey: []*schema.Column{flagsKey},
	}

	submissionsID      = &schema.Column{Name: colID, Type: field.TypeInt, Increment: true}
	submissionsColumns = []*schema.Column{
		submissionsID,
		{Name: colUUID, Type: field.TypeString, Unique: true},
		{Name: colEmail, Type: field.TypeString},
		{Name: colTarget, Type: field.TypeString},
		{Name: colPayload, Type: field.TypeString, Size: 2147483647},
		{Name: colSuccess, Type: field.TypeBool},
		{Name: colError, Type: field.TypeString, Default: ""},
		{Name: colCreatedAt, Type: field.TypeTime},
	}
	// SubmissionsTable is the append-only log of submission attempts.
	SubmissionsTable = &schema.Table{
		Name:       submissionsTable,
		Columns:    submissionsColumns,
		PrimaryKey: []*schema.Column{submissionsID},
		Indexes: []*schema.Index{
			{
				Name:    "submission_email_created_at",
				Unique:  false,
				Columns: []*schema.Column{submissionsColumns[2], submissionsColumns[7]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProfilesTable,
		FlagsTable,
		SubmissionsTable,
	}
)
