package commands_test

import (
	"testing"

	"skiservice/internal/core/application/usecases/commands"
	"skiservice/internal/core/domain/model/serviceorder"
	"skiservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateServiceOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateServiceOrderCommand(
		"Lukas Meier", "lukas@example.ch", "+41 79 123 45 67", "Express", 3, "Kanten schleifen",
	)
	require.NoError(t, err)
	assert.Equal(t, "Lukas Meier", cmd.Customer().Name())
	assert.Equal(t, serviceorder.Express, cmd.Priority())
	assert.Equal(t, int64(3), cmd.ServiceTypeID())
	assert.Equal(t, "Kanten schleifen", cmd.Comments())
}

func TestNewCreateServiceOrderCommand_MultipleCombinedErrors(t *testing.T) {
	_, err := commands.NewCreateServiceOrderCommand("", "lukas(at)example.ch", "12", "urgent", 0, "")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "priority")
	assert.Contains(t, err.Error(), "serviceTypeId")
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(5, "InBearbeitung")
	require.NoError(t, err)
	assert.Equal(t, int64(5), cmd.OrderID())
	assert.Equal(t, serviceorder.InProgress, cmd.Status())

	_, err = commands.NewUpdateOrderStatusCommand(5, "Done")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateOrderStatusCommand(0, "Offen")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewUpdateOrderCommentCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommentCommand(5, "")
	require.NoError(t, err, "clearing the comment is allowed")
	assert.Empty(t, cmd.Comment())

	_, err = commands.NewUpdateOrderCommentCommand(-1, "x")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewDeleteAllServiceOrdersCommand_RequiresConfirmation(t *testing.T) {
	_, err := commands.NewDeleteAllServiceOrdersCommand(false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewDeleteAllServiceOrdersCommand(true)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestServiceOrderCommands_ZeroValue(t *testing.T) {
	require.ErrorIs(t, commands.CreateServiceOrderCommand{}.Validate(),
		commands.ErrCreateServiceOrderCommandIsNotConstructed)
	require.ErrorIs(t, commands.UpdateOrderCommentCommand{}.Validate(),
		commands.ErrUpdateOrderCommentCommandIsNotConstructed)
	require.ErrorIs(t, commands.UpdateOrderStatusCommand{}.Validate(),
		commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	require.ErrorIs(t, commands.DeleteServiceOrderCommand{}.Validate(),
		commands.ErrDeleteServiceOrderCommandIsNotConstructed)
	require.ErrorIs(t, commands.DeleteAllServiceOrdersCommand{}.Validate(),
		commands.ErrDeleteAllServiceOrdersCommandIsNotConstructed)
}
