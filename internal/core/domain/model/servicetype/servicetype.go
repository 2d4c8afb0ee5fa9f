// Package servicetype holds the catalog of services the shop offers.
package servicetype

import (
	"errors"
	"strings"
	"unicode/utf8"

	"skiservice/internal/core/domain/model/kernel"
	"skiservice/internal/pkg/errs"
)

const NameMaxLength = 100

var ErrServiceTypeIsNotConstructed = errors.New("ServiceType must be created via NewServiceType or RestoreServiceType")

// ServiceType is a catalog entry such as "Kleiner Service" with its base cost.
type ServiceType struct {
	id   int64
	name string
	cost kernel.Money

	isConstructed bool
}

func NewServiceType(name string, cost kernel.Money) (*ServiceType, error) {
	st := &ServiceType{isConstructed: true}
	if err := errors.Join(st.setName(name), cost.Validate()); err != nil {
		return nil, err
	}
	st.cost = cost
	return st, nil
}

func RestoreServiceType(id int64, name string, cost kernel.Money) (*ServiceType, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("serviceTypeId", id, 1, "unbounded")
	}
	st, err := NewServiceType(name, cost)
	if err != nil {
		return nil, err
	}
	st.id = id
	return st, nil
}

func (s *ServiceType) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceTypeIsNotConstructed
	}
	return nil
}

func (s *ServiceType) ID() int64 {
	return s.id
}

func (s *ServiceType) Name() string {
	return s.name
}

func (s *ServiceType) Cost() kernel.Money {
	return s.cost
}

func (s *ServiceType) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, NameMaxLength)
	}
	s.name = name
	return nil
}
