// Package models contains the records the engine computes on.
//
// Records are supplied by the Bank Connector and the presentation layer.
// The engine treats them as read-only snapshots and never mutates them.
package models

import (
	"github.com/google/uuid"
)

// Model is the base for all records that carry an identity.
type Model struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
}
