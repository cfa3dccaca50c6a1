// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BadgeEventsColumns holds the columns for the "badge_events" table.
	BadgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "badge_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "trigger_event_id", Type: field.TypeString, Nullable: true},
	}
	// BadgeEventsTable holds the schema information for the "badge_events" table.
	BadgeEventsTable = &schema.Table{
		Name:       "badge_events",
		Columns:    BadgeEventsColumns,
		PrimaryKey: []*schema.Column{BadgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[1]},
			},
			{
				Name:    "badgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[2]},
			},
			{
				Name:    "badgeevent_badge_id",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[3]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "score_pct", Type: field.TypeFloat64, Default: 0},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "xp_earned", Type: field.TypeInt},
		{Name: "level_after", Type: field.TypeInt},
		{Name: "streak_after", Type: field.TypeInt},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[1]},
			},
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2]},
			},
			{
				Name:    "progressevent_unit_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[5]},
			},
			{
				Name:    "progressevent_kind",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BadgeEventsTable,
		ProgressEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
