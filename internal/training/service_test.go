// ABOUTME: Shared helpers for training service tests.
// ABOUTME: Each test gets a fresh SQLite file and a fixed clock.
package training

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/fitness/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, today string) *Service {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	now, err := time.Parse("2006-01-02 15:04", today+" 09:30")
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return New(store, WithClock(func() time.Time { return now }), WithLogger(log))
}

func workoutCount(t *testing.T, s *Service) int {
	t.Helper()
	ws, err := s.WorkoutHistory(context.Background(), 365)
	require.NoError(t, err)
	return len(ws)
}

func TestTodayUsesClock(t *testing.T) {
	s := newTestService(t, "2024-03-15")
	require.Equal(t, "2024-03-15", s.Today().String())
}

func TestIsUserError(t *testing.T) {
	require.True(t, IsUserError(invalid("grams", "bad")))
	require.True(t, IsUserError(&NotFoundError{Entity: "workout", Key: "id 1"}))
	require.True(t, IsUserError(ErrNotConfirmed))
	require.True(t, IsUserError(ErrNoChanges))
	require.True(t, IsUserError(fmt.Errorf("log: %w", ErrDuplicate)))
	require.False(t, IsUserError(io.ErrUnexpectedEOF))
}
