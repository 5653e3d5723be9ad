//go:build variantgen

package pkg

import "github.com/govariant/variantgen"

// Event is a change to a record.
type Event interface {
	Created(id int)
	// Legacy is obsolete and has no product anymore.
	Legacy()
	Deleted(id int)
}

var _ = variantgen.Sum[Event](variantgen.Skip(Event.Legacy))
