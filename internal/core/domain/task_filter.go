package domain

import (
	"fmt"
	"time"
)

// TaskFilter is a conjunction of optional predicates. OwnerID is always set
// by the service from the caller identity.
type TaskFilter struct {
	OwnerID    string
	ProjectID  *string
	StartDate  *time.Time
	EndDate    *time.Time
	HasDueDate bool
}

func (f TaskFilter) UsesDueDate() bool {
	return f.StartDate != nil || f.EndDate != nil || f.HasDueDate
}

func (f TaskFilter) Validate() error {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return NewValidationError("startDate", MsgInvalidDateRange)
	}
	return nil
}

type TaskOrder int

const (
	// TaskOrderCreatedDesc lists newest tasks first.
	TaskOrderCreatedDesc TaskOrder = iota
	// TaskOrderDueAsc lists by due date, nulls last, newest first on ties.
	TaskOrderDueAsc
)

// TaskSortPolicy decides the ordering of task listings.
type TaskSortPolicy string

const (
	TaskSortAuto    TaskSortPolicy = "auto"
	TaskSortCreated TaskSortPolicy = "created"
	TaskSortDue     TaskSortPolicy = "due"
)

func ParseTaskSortPolicy(value string) (TaskSortPolicy, error) {
	switch p := TaskSortPolicy(value); p {
	case TaskSortAuto, TaskSortCreated, TaskSortDue:
		return p, nil
	case "":
		return TaskSortAuto, nil
	}
	return "", fmt.Errorf("unknown task sort policy %q", value)
}

// OrderFor resolves the ordering for a filter. The auto policy orders by due
// date only when the filter constrains due dates.
func (p TaskSortPolicy) OrderFor(f TaskFilter) TaskOrder {
	switch p {
	case TaskSortCreated:
		return TaskOrderCreatedDesc
	case TaskSortDue:
		return TaskOrderDueAsc
	}
	if f.UsesDueDate() {
		return TaskOrderDueAsc
	}
	return TaskOrderCreatedDesc
}
