// Package events publishes employee lifecycle events. Delivery is best effort:
// callers log a failed publish and carry on.
package events

import (
	"context"
	"time"
)

const EmployeeLifecycleTopic = "directory.employee.lifecycle.v1"

const (
	EmployeeCreated             = "employee.created"
	EmployeeUpdated             = "employee.updated"
	EmployeeCompensationUpdated = "employee.compensation_updated"
)

type EmployeeEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEmployeeEvent(eventType, employeeID string) EmployeeEvent {
	return EmployeeEvent{
		EventType:  eventType,
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event EmployeeEvent) error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, EmployeeEvent) error {
	return nil
}
