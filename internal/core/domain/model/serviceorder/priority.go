package serviceorder

import (
	"fmt"
	"strings"
	"time"

	"skiservice/internal/pkg/errs"
)

// Priority is the service urgency tier.
type Priority int

const (
	// PriorityUnknown is the zero value and is never valid.
	PriorityUnknown Priority = iota
	Low
	Standard
	Express
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Low:      "low",
		Standard: "standard",
		Express:  "express",
	}
}

// pickupOffsetDays maps each priority to the number of days between creation and pickup.
func pickupOffsetDays() map[Priority]int {
	return map[Priority]int{
		Low:      12,
		Standard: 7,
		Express:  5,
	}
}

// ParsePriority reads a priority case-insensitively ("Express", " low ").
// Unknown values are rejected with a ValueIsInvalidError.
func ParsePriority(s string) (Priority, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return PriorityUnknown, errs.NewValueIsRequiredError("priority")
	}
	for p, name := range getPriorityStrings() {
		if name == normalized {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority",
		fmt.Errorf("%q is not one of low, standard, express", s),
	)
}

func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// PickupOffsetDays returns the days between creation and pickup; 0 for an invalid priority.
func (p Priority) PickupOffsetDays() int {
	return pickupOffsetDays()[p]
}

// PickupDate derives the pickup instant for an order created at createdAt.
//
// Example:
//
//	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
//	serviceorder.PickupDate(serviceorder.Low, created) // 2024-01-13T00:00:00Z
func PickupDate(p Priority, createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 0, p.PickupOffsetDays())
}
