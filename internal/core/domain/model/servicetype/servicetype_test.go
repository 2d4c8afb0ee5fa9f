package servicetype_test

import (
	"testing"

	"skiservice/internal/core/domain/model/kernel"
	"skiservice/internal/core/domain/model/servicetype"
	"skiservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreServiceType(t *testing.T) {
	cost, err := kernel.NewMoney(3495)
	require.NoError(t, err)

	st, err := servicetype.RestoreServiceType(1, "Kleiner Service", cost)
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.ID())
	assert.Equal(t, "Kleiner Service", st.Name())
	assert.Equal(t, "34.95", st.Cost().String())
	require.NoError(t, st.Validate())

	_, err = servicetype.RestoreServiceType(0, "Kleiner Service", cost)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewServiceType_Invalid(t *testing.T) {
	_, err := servicetype.NewServiceType(" ", kernel.Money{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var st *servicetype.ServiceType
	require.ErrorIs(t, st.Validate(), servicetype.ErrServiceTypeIsNotConstructed)
}
