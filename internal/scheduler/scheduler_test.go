package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/config"
)

type countingRefresher struct {
	calls    atomic.Int32
	deadline atomic.Bool
	err      error
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	_, ok := ctx.Deadline()
	r.deadline.Store(ok)
	return r.err
}

func refreshConfig(schedule string) config.RefreshConfig {
	return config.RefreshConfig{
		Enabled:      true,
		CronSchedule: schedule,
		Timezone:     "America/Sao_Paulo",
		Timeout:      time.Second,
	}
}

func TestNewSchedulerRejectsUnknownTimezone(t *testing.T) {
	cfg := refreshConfig("0 */6 * * *")
	cfg.Timezone = "Mars/Olympus_Mons"

	_, err := NewScheduler(cfg, &countingRefresher{}, nil)
	assert.Error(t, err)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s, err := NewScheduler(refreshConfig("every six hours"), &countingRefresher{}, nil)
	require.NoError(t, err)

	assert.Error(t, s.Start())
}

func TestStartSchedulesRefresh(t *testing.T) {
	s, err := NewScheduler(refreshConfig("0 */6 * * *"), &countingRefresher{}, nil)
	require.NoError(t, err)
	assert.True(t, s.Next().IsZero())

	require.NoError(t, s.Start())
	defer s.Stop()

	next := s.Next()
	require.False(t, next.IsZero())
	assert.Zero(t, next.Minute())
	assert.Zero(t, next.In(s.cron.Location()).Hour()%6)
}

func TestRefreshJobUsesTimeout(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("source down")}
	s, err := NewScheduler(refreshConfig("0 */6 * * *"), refresher, nil)
	require.NoError(t, err)

	s.refreshDataset()

	assert.Equal(t, int32(1), refresher.calls.Load())
	assert.True(t, refresher.deadline.Load())
}
