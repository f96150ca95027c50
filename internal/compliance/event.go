// Package compliance delivers audit events to the Compliance Logger.
//
// Delivery is fire-and-forget: Log never blocks and never fails the
// calculation that emitted the event.
package compliance

import (
	"encoding/json"
	"time"

	"github.com/budgetcalc/engine/internal/models"
	"github.com/google/uuid"
)

type EventKind string

const (
	EventBudgetAdjustment   EventKind = "budget-adjustment"
	EventCalculationFailure EventKind = "calculation-failure"
)

// Event is a single audit record.
type Event struct {
	ID         uuid.UUID                `json:"id"`
	Kind       EventKind                `json:"kind"`
	Timestamp  time.Time                `json:"timestamp"`
	Adjustment *models.BudgetAdjustment `json:"adjustment,omitempty"`
	Failure    *Failure                 `json:"failure,omitempty"`
}

// Failure describes a calculation that returned an error.
type Failure struct {
	Operation string `json:"operation"`
	Error     string `json:"error"`
}

// BudgetAdjustmentEvent wraps a budget adjustment.
func BudgetAdjustmentEvent(a models.BudgetAdjustment) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       EventBudgetAdjustment,
		Timestamp:  a.Timestamp,
		Adjustment: &a,
	}
}

// CalculationFailureEvent records that operation failed with err.
func CalculationFailureEvent(operation string, err error, at time.Time) Event {
	return Event{
		ID:        uuid.New(),
		Kind:      EventCalculationFailure,
		Timestamp: at,
		Failure: &Failure{
			Operation: operation,
			Error:     err.Error(),
		},
	}
}

// ToJSON converts the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Logger is the Compliance Logger collaborator.
//
// Implementations must return immediately and must not panic.
type Logger interface {
	Log(Event)
}

// Nop discards all events.
type Nop struct{}

func (Nop) Log(Event) {}
