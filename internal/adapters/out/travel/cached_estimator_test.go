package travel

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTravelEstimator struct {
	mock.Mock
}

func (m *MockTravelEstimator) Estimate(ctx context.Context, shopID kernel.UUID, destinations []string) (ports.TravelEstimate, error) {
	args := m.Called(ctx, shopID, destinations)
	return args.Get(0).(ports.TravelEstimate), args.Error(1)
}

func newCached(t *testing.T, server *miniredis.Miniredis, inner ports.TravelEstimator) *CachedEstimator {
	t.Helper()
	cached, err := NewCachedEstimator(t.Context(), CacheConfig{
		Enabled: true,
		Addr:    server.Addr(),
		TTL:     time.Minute,
	}, inner, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cached.Close() })
	return cached
}

func TestCachedEstimator_SecondCallHitsCache(t *testing.T) {
	server := miniredis.RunT(t)
	inner := new(MockTravelEstimator)
	shopID := kernel.NewUUID()
	want := ports.TravelEstimate{MinutesToMove: 12, MinutesToWaitCustomer: 10}
	inner.On("Estimate", mock.Anything, shopID, []string{"C1", "B2"}).Return(want, nil).Once()
	cached := newCached(t, server, inner)

	first, err := cached.Estimate(t.Context(), shopID, []string{"C1", "B2"})
	require.NoError(t, err)
	second, err := cached.Estimate(t.Context(), shopID, []string{"B2", "C1", "C1"})
	require.NoError(t, err)

	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
	assert.True(t, server.Exists("travel:"+shopID.String()+":B2,C1"))
	inner.AssertExpectations(t)
}

func TestCachedEstimator_EntryExpires(t *testing.T) {
	server := miniredis.RunT(t)
	inner := new(MockTravelEstimator)
	shopID := kernel.NewUUID()
	inner.On("Estimate", mock.Anything, shopID, mock.Anything).
		Return(ports.TravelEstimate{MinutesToMove: 10, MinutesToWaitCustomer: 5}, nil).Twice()
	cached := newCached(t, server, inner)

	_, err := cached.Estimate(t.Context(), shopID, []string{"B2"})
	require.NoError(t, err)
	server.FastForward(2 * time.Minute)
	_, err = cached.Estimate(t.Context(), shopID, []string{"B2"})
	require.NoError(t, err)

	inner.AssertExpectations(t)
}

func TestCachedEstimator_InnerFailureIsNotCached(t *testing.T) {
	server := miniredis.RunT(t)
	inner := new(MockTravelEstimator)
	shopID := kernel.NewUUID()
	boom := errors.New("route service down")
	inner.On("Estimate", mock.Anything, shopID, mock.Anything).Return(ports.TravelEstimate{}, boom).Once()
	cached := newCached(t, server, inner)

	_, err := cached.Estimate(t.Context(), shopID, []string{"B2"})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, server.Keys())
}

func TestCachedEstimator_CorruptEntryFallsBackToInner(t *testing.T) {
	server := miniredis.RunT(t)
	inner := new(MockTravelEstimator)
	shopID := kernel.NewUUID()
	want := ports.TravelEstimate{MinutesToMove: 7, MinutesToWaitCustomer: 5}
	inner.On("Estimate", mock.Anything, shopID, mock.Anything).Return(want, nil).Once()
	cached := newCached(t, server, inner)
	require.NoError(t, server.Set("travel:"+shopID.String()+":B2", "not json"))

	got, err := cached.Estimate(t.Context(), shopID, []string{"B2"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCachedEstimator_DisabledPassesThrough(t *testing.T) {
	inner := new(MockTravelEstimator)
	shopID := kernel.NewUUID()
	want := ports.TravelEstimate{MinutesToMove: 10, MinutesToWaitCustomer: 5}
	inner.On("Estimate", mock.Anything, shopID, mock.Anything).Return(want, nil).Twice()

	cached, err := NewCachedEstimator(t.Context(), CacheConfig{Enabled: false}, inner, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	for range 2 {
		got, err := cached.Estimate(t.Context(), shopID, []string{"B2"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.NoError(t, cached.Close())
	inner.AssertExpectations(t)
}

func TestNewCachedEstimator_UnreachableRedis(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := NewCachedEstimator(t.Context(), CacheConfig{Enabled: true, Addr: addr}, new(MockTravelEstimator),
		slog.New(slog.DiscardHandler))

	assert.Error(t, err)
}
