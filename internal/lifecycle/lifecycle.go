// Package lifecycle decides when an event's status advances with wall-clock time.
package lifecycle

import (
	"time"

	"go-gin-stream-events/internal/model"
)

// Evaluate returns the status an event should have at now and whether it differs
// from the current one. Terminal statuses never change.
func Evaluate(status model.EventStatus, scheduledDate time.Time, duration time.Duration, now time.Time) (model.EventStatus, bool) {
	switch {
	case status.IsTerminal():
		return status, false
	case status == model.EventStatusScheduled && !now.Before(scheduledDate):
		return model.EventStatusLive, true
	case status == model.EventStatusLive && !now.Before(scheduledDate.Add(duration)):
		return model.EventStatusFinished, true
	default:
		return status, false
	}
}

// EvaluateEvent applies Evaluate to an event using its category duration.
func EvaluateEvent(e *model.Event, now time.Time) (model.EventStatus, bool) {
	return Evaluate(e.Status, e.ScheduledDate, e.Duration(), now)
}
