// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Mission is the predicate function for mission builders.
type Mission func(*sql.Selector)
