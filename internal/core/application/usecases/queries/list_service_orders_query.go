// Package queries contains read operations of the ski-service shop. Query handlers
// read the database directly and return flat views instead of aggregates.
package queries

import (
	"errors"
	"strings"

	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/pkg/guard"
)

var ErrListServiceOrdersQueryIsNotConstructed = errors.New(
	"ListServiceOrdersQuery must be created via NewListServiceOrdersQuery constructor",
)

// ListServiceOrdersQuery lists orders, optionally filtered. Empty filters are ignored
// and the remaining ones combine with AND.
//
//   - name: case-insensitive substring of the customer name
//   - priority: case-insensitive exact priority
//   - status: exact status
//
// Example:
//
//	query, err := NewListServiceOrdersQuery("meier", "Express", "")
//	if err != nil {
//	    return err // unknown priority or status
//	}
//	orders, err := handler.Handle(ctx, query)
type ListServiceOrdersQuery struct {
	name     string
	priority serviceorder.Priority
	status   serviceorder.Status

	guard guard.ConstructorGuard
}

func NewListServiceOrdersQuery(name, priority, status string) (ListServiceOrdersQuery, error) {
	q := ListServiceOrdersQuery{
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}

	var priorityErr, statusErr error
	if strings.TrimSpace(priority) != "" {
		q.priority, priorityErr = serviceorder.ParsePriority(priority)
	}
	if strings.TrimSpace(status) != "" {
		q.status, statusErr = serviceorder.ParseStatus(status)
	}
	if err := errors.Join(priorityErr, statusErr); err != nil {
		return ListServiceOrdersQuery{}, err
	}

	return q, nil
}

func (q ListServiceOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListServiceOrdersQueryIsNotConstructed)
}

func (q ListServiceOrdersQuery) Name() string {
	return q.name
}

// Priority returns serviceorder.PriorityUnknown when not filtering by priority.
func (q ListServiceOrdersQuery) Priority() serviceorder.Priority {
	return q.priority
}

// Status returns serviceorder.StatusUnknown when not filtering by status.
func (q ListServiceOrdersQuery) Status() serviceorder.Status {
	return q.status
}
