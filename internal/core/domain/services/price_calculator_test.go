package services_test

import (
	"testing"

	"skiservice/internal/core/domain/model/kernel"
	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/core/domain/model/servicetype"
	"skiservice/internal/core/domain/services"
	"skiservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceType(t *testing.T, cents int64) *servicetype.ServiceType {
	t.Helper()
	cost, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	st, err := servicetype.RestoreServiceType(3, "Rennski-Service", cost)
	require.NoError(t, err)
	return st
}

func TestPriceCalculator_Quote(t *testing.T) {
	calc := services.NewPriceCalculator()

	tests := []struct {
		priority serviceorder.Priority
		want     string
	}{
		{priority: serviceorder.Low, want: "69.95"},
		{priority: serviceorder.Standard, want: "74.95"},
		{priority: serviceorder.Express, want: "84.95"},
	}

	for _, tt := range tests {
		t.Run(tt.priority.String(), func(t *testing.T) {
			total, err := calc.Quote(serviceType(t, 7495), tt.priority)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total.String())
		})
	}
}

func TestPriceCalculator_Quote_NeverNegative(t *testing.T) {
	total, err := services.NewPriceCalculator().Quote(serviceType(t, 300), serviceorder.Low)

	require.NoError(t, err)
	assert.Zero(t, total.Cents())
}

func TestPriceCalculator_Quote_Invalid(t *testing.T) {
	calc := services.NewPriceCalculator()

	_, err := calc.Quote(serviceType(t, 1000), serviceorder.PriorityUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = calc.Quote(nil, serviceorder.Low)
	require.ErrorIs(t, err, servicetype.ErrServiceTypeIsNotConstructed)
}
