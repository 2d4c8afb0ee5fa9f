package serviceorder

import (
	"errors"
	"strings"
	"unicode/utf8"

	"skiservice/internal/core/domain/model/kernel"
	"skiservice/internal/pkg/errs"
)

const CustomerNameMaxLength = 100

// Customer holds the contact details a registration is submitted with.
type Customer struct {
	name  string
	email kernel.Email
	phone kernel.Phone
}

// NewCustomer validates all three contact fields and reports every failure at once.
func NewCustomer(name, email, phone string) (Customer, error) {
	var c Customer

	nameErr := c.setName(name)
	parsedEmail, emailErr := kernel.NewEmail(email)
	parsedPhone, phoneErr := kernel.NewPhone(phone)
	if err := errors.Join(nameErr, emailErr, phoneErr); err != nil {
		return Customer{}, err
	}

	c.email = parsedEmail
	c.phone = parsedPhone
	return c, nil
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Email() kernel.Email {
	return c.email
}

func (c Customer) Phone() kernel.Phone {
	return c.phone
}

func (c Customer) Validate() error {
	if c.name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	return errors.Join(c.email.Validate(), c.phone.Validate())
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if n := utf8.RuneCountInString(name); n > CustomerNameMaxLength {
		return errs.NewValueIsOutOfRangeError("customerName length", n, 1, CustomerNameMaxLength)
	}
	c.name = name
	return nil
}
