// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BadgeEvent is the predicate function for badgeevent builders.
type BadgeEvent func(*sql.Selector)

// ProgressEvent is the predicate function for progressevent builders.
type ProgressEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
