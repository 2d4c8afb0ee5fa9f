package serviceorder

import (
	"fmt"
	"strings"

	"skiservice/internal/pkg/errs"
)

// Status represents the processing state of a service order.
//
//	Offen ──> InBearbeitung ──> Abgeschlossen
//
// The arrow is the usual workflow, but it is not enforced: any valid status may be
// set from any other one. Only values outside the set are rejected.
type Status int

const (
	// StatusUnknown is the zero value and is never valid.
	StatusUnknown Status = iota
	Open
	InProgress
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Open:       "Offen",
		InProgress: "InBearbeitung",
		Completed:  "Abgeschlossen",
	}
}

// ParseStatus reads one of "Offen", "InBearbeitung", "Abgeschlossen".
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return StatusUnknown, errs.NewValueIsRequiredError("status")
	}
	for st, name := range getStatusStrings() {
		if name == trimmed {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of Offen, InBearbeitung, Abgeschlossen", s),
	)
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// TransitionTo returns next when it is a valid status. The current status does not
// restrict the transition.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	return next, nil
}
