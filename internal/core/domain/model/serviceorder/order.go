package serviceorder

import (
	"errors"
	"time"

	"skiservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a ski-service registration. It is the aggregate root for the order
// lifecycle from submission to pickup.
//
// Order follows these invariants:
//   - Customer contact details are valid
//   - Priority is one of the closed set
//   - Service type references a catalog entry by id
//   - pickupAt == PickupDate(priority, createdAt) at all times
//   - Status is one of the closed set
type Order struct {
	// id is assigned by storage; zero until the order is saved
	id int64

	customer      Customer
	priority      Priority
	serviceTypeID int64

	// createdAt is the server clock at submission, UTC, microsecond precision
	createdAt time.Time
	pickupAt  time.Time

	comments string
	status   Status

	isConstructed bool
}

// NewOrder creates an unsaved order in status Offen with a derived pickup date.
//
// Example:
//
//	customer, _ := serviceorder.NewCustomer("Lukas Meier", "lukas@example.ch", "+41 79 123 45 67")
//	o, err := serviceorder.NewOrder(customer, serviceorder.Express, 3, "Kanten schleifen", clock.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	o.PickupAt() // five days after creation
func NewOrder(
	customer Customer,
	priority Priority,
	serviceTypeID int64,
	comments string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		comments:      comments,
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomer(customer),
		o.setPriority(priority),
		o.setServiceTypeID(serviceTypeID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order. The pickup date is derived again from
// createdAt and priority rather than read back.
func RestoreOrder(
	id int64,
	customer Customer,
	priority Priority,
	serviceTypeID int64,
	comments string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(customer, priority, serviceTypeID, comments, createdAt)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 1, "unbounded")
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// SetID records the identifier assigned by storage.
func (o *Order) SetID(id int64) {
	o.id = id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) ServiceTypeID() int64 {
	return o.serviceTypeID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) PickupAt() time.Time {
	return o.pickupAt
}

func (o *Order) Comments() string {
	return o.comments
}

func (o *Order) Status() Status {
	return o.status
}

// ChangeComment replaces the free-text comment. It does not touch the status.
func (o *Order) ChangeComment(comment string) {
	o.comments = comment
}

// ChangeStatus sets any valid status regardless of the current one.
func (o *Order) ChangeStatus(status Status) error {
	next, err := o.status.TransitionTo(status)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setServiceTypeID(serviceTypeID int64) error {
	if serviceTypeID <= 0 {
		return errs.NewValueIsOutOfRangeError("serviceTypeId", serviceTypeID, 1, "unbounded")
	}
	o.serviceTypeID = serviceTypeID
	return nil
}

// setCreatedAt normalizes to UTC at microsecond precision, which is what the
// database keeps, and derives the pickup date.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creationDate")
	}
	o.createdAt = createdAt.UTC().Truncate(time.Microsecond)
	o.pickupAt = PickupDate(o.priority, o.createdAt)
	return nil
}
