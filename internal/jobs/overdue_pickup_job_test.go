package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"skiservice/internal/core/application/usecases/queries"
	"skiservice/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type OverdueOrdersFinderMock struct {
	mock.Mock
}

func (m *OverdueOrdersFinderMock) Handle(
	ctx context.Context,
	query queries.GetOverdueServiceOrdersQuery,
) ([]queries.ServiceOrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.ServiceOrderView), args.Error(1)
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

var now = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func TestOverduePickupJob_Run(t *testing.T) {
	finder := &OverdueOrdersFinderMock{}
	query, err := queries.NewGetOverdueServiceOrdersQuery(now)
	require.NoError(t, err)
	finder.On("Handle", mock.Anything, query).Return([]queries.ServiceOrderView{
		{ID: 1, CustomerName: "Anna Meier", Status: "Offen", PickupAt: now.AddDate(0, 0, -2)},
		{ID: 4, CustomerName: "Beat Keller", Status: "InBearbeitung", PickupAt: now.AddDate(0, 0, -1)},
	}, nil).Once()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	job := jobs.NewOverduePickupJob(finder, fixedClock(now), "", logger)

	count, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, logs.String(), "Anna Meier")
	assert.Contains(t, logs.String(), "count=2")
	finder.AssertExpectations(t)
}

func TestOverduePickupJob_RunNothingOverdue(t *testing.T) {
	finder := &OverdueOrdersFinderMock{}
	finder.On("Handle", mock.Anything, mock.Anything).Return([]queries.ServiceOrderView{}, nil).Once()

	var logs bytes.Buffer
	job := jobs.NewOverduePickupJob(finder, fixedClock(now), "", slog.New(slog.NewTextHandler(&logs, nil)))

	count, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NotContains(t, logs.String(), "overdue")
}

func TestOverduePickupJob_RunError(t *testing.T) {
	finder := &OverdueOrdersFinderMock{}
	finder.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.ServiceOrderView(nil), errors.New("database is down")).Once()

	job := jobs.NewOverduePickupJob(finder, fixedClock(now), "", slog.New(slog.DiscardHandler))

	_, err := job.Run(t.Context())

	require.Error(t, err)
}

func TestOverduePickupJob_Start(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		job := jobs.NewOverduePickupJob(&OverdueOrdersFinderMock{}, fixedClock(now), "every tuesday",
			slog.New(slog.DiscardHandler))

		require.Error(t, job.Start())
	})

	t.Run("runs on schedule", func(t *testing.T) {
		finder := &OverdueOrdersFinderMock{}
		called := make(chan struct{}, 1)
		finder.On("Handle", mock.Anything, mock.Anything).
			Return([]queries.ServiceOrderView{}, nil).
			Run(func(mock.Arguments) {
				select {
				case called <- struct{}{}:
				default:
				}
			})

		job := jobs.NewOverduePickupJob(finder, fixedClock(now), "@every 1s", slog.New(slog.DiscardHandler))
		require.NoError(t, job.Start())
		defer job.Stop()

		select {
		case <-called:
		case <-time.After(3 * time.Second):
			t.Fatal("overdue pickup job did not run")
		}
	})
}

func TestJobManager(t *testing.T) {
	t.Run("start and stop", func(t *testing.T) {
		manager := jobs.NewJobManager(&OverdueOrdersFinderMock{}, fixedClock(now), "", slog.New(slog.DiscardHandler))

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		manager := jobs.NewJobManager(&OverdueOrdersFinderMock{}, fixedClock(now), "61 * * * *",
			slog.New(slog.DiscardHandler))

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "overdue pickup job")
	})
}
