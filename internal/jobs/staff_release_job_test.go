package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"shopdelivery/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReleaser struct {
	mock.Mock
}

func (m *mockReleaser) Handle(ctx context.Context, cmd commands.ReleaseIdleStaffCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func TestStaffReleaseJob_Run_CallsHandlerWithConstructedCommand(t *testing.T) {
	handler := new(mockReleaser)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ReleaseIdleStaffCommand) bool {
		return cmd.Validate() == nil
	})).Return(2, nil).Once()

	NewStaffReleaseJob(handler, "0 */5 * * * *", slog.New(slog.DiscardHandler)).run()

	handler.AssertExpectations(t)
}

func TestStaffReleaseJob_Run_SurvivesHandlerFailure(t *testing.T) {
	handler := new(mockReleaser)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("db down")).Once()

	job := NewStaffReleaseJob(handler, "0 */5 * * * *", slog.New(slog.DiscardHandler))

	assert.NotPanics(t, job.run)
	handler.AssertExpectations(t)
}

func TestStaffReleaseJob_Start_RejectsInvalidSchedule(t *testing.T) {
	job := NewStaffReleaseJob(new(mockReleaser), "every five minutes", slog.New(slog.DiscardHandler))

	assert.Error(t, job.Start())
}

func TestStaffReleaseJob_Start_RunsOnSchedule(t *testing.T) {
	handler := new(mockReleaser)
	fired := make(chan struct{}, 8)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Run(func(mock.Arguments) {
		fired <- struct{}{}
	})

	job := NewStaffReleaseJob(handler, "* * * * * *", slog.New(slog.DiscardHandler))
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("staff release job did not fire")
	}
}

func TestJobManager_StartAll_WrapsScheduleError(t *testing.T) {
	manager := NewJobManager(new(mockReleaser), "not a schedule", slog.New(slog.DiscardHandler))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "staff release job")
}
