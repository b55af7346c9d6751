// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/zenspace/zenspace/ent/entry"
	"github.com/zenspace/zenspace/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	entryFields := schema.Entry{}.Fields()
	_ = entryFields
	// entryDescUpdatedAt is the schema descriptor for updated_at field.
	entryDescUpdatedAt := entryFields[2].Descriptor()
	// entry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entry.DefaultUpdatedAt = entryDescUpdatedAt.Default.(func() time.Time)
	// entry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entry.UpdateDefaultUpdatedAt = entryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
