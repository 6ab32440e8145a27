package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelayer struct {
	mock.Mock
}

func (m *MockRelayer) Handle(ctx context.Context, cmd commands.RelayOrderEventsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockPurger struct {
	mock.Mock
}

func (m *MockPurger) Handle(ctx context.Context, cmd commands.PurgeExpiredSessionsCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestOrderEventsRelayJob_Run(t *testing.T) {
	t.Run("passes the batch size", func(t *testing.T) {
		relayer := new(MockRelayer)
		relayer.On("Handle", mock.Anything, commands.NewRelayOrderEventsCommand(25)).Return(3, nil).Once()

		NewOrderEventsRelayJob(relayer, 25, discard).run()

		relayer.AssertExpectations(t)
	})

	t.Run("failure does not panic", func(t *testing.T) {
		relayer := new(MockRelayer)
		relayer.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("broker unavailable")).Once()

		assert.NotPanics(t, NewOrderEventsRelayJob(relayer, 10, discard).run)
		relayer.AssertExpectations(t)
	})
}

func TestSessionCleanupJob_Run(t *testing.T) {
	purger := new(MockPurger)
	purger.On("Handle", mock.Anything, commands.NewPurgeExpiredSessionsCommand()).Return(int64(2), nil).Once()
	purger.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

	job := NewSessionCleanupJob(purger, discard)
	job.run()
	assert.NotPanics(t, job.run)

	purger.AssertExpectations(t)
}

func TestJobManager_StartAll(t *testing.T) {
	relayer := new(MockRelayer)
	ticked := make(chan struct{}, 8)
	relayer.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { ticked <- struct{}{} }).
		Return(0, nil)
	purger := new(MockPurger)
	purger.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()

	manager := NewJobManager(relayer, 100, purger, discard)
	require.NoError(t, manager.StartAll())

	select {
	case <-ticked:
	case <-time.After(3 * time.Second):
		t.Fatal("relay job did not run within three seconds")
	}
	manager.StopAll()
}
