package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingExpirer struct {
	calls atomic.Int32
}

func (c *countingExpirer) ExpireIdle() int {
	c.calls.Add(1)
	return 1
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := NewScheduler(&countingExpirer{}, "every minute please")
	require.Error(t, err)
}

func TestScheduler_RunsSweep(t *testing.T) {
	exp := &countingExpirer{}
	s, err := NewScheduler(exp, "@every 1s")
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool {
		return exp.calls.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_AcceptsSixFieldSpec(t *testing.T) {
	_, err := NewScheduler(&countingExpirer{}, "0 */5 * * * *")
	require.NoError(t, err)
}
