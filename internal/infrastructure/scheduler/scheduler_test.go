package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArmOncePastRejected(t *testing.T) {
	s := New(func(string) {})
	defer s.Stop()

	err := s.ArmOnce("sched-1", time.Now().Add(-time.Minute))
	assert.Error(t, err)
	assert.False(t, s.Armed("sched-1"))
}

func TestArmOnceFires(t *testing.T) {
	fired := make(chan string, 1)
	s := New(func(id string) { fired <- id })
	defer s.Stop()

	require.NoError(t, s.ArmOnce("sched-1", time.Now().Add(20*time.Millisecond)))
	assert.True(t, s.Armed("sched-1"))

	select {
	case id := <-fired:
		assert.Equal(t, "sched-1", id)
	case <-time.After(time.Second):
		t.Fatal("one-shot schedule never fired")
	}

	// The entry is gone once the timer has run.
	assert.False(t, s.Armed("sched-1"))
}

func TestArmOnceReplacesExistingTimer(t *testing.T) {
	fired := make(chan string, 2)
	s := New(func(id string) { fired <- id })
	defer s.Stop()

	require.NoError(t, s.ArmOnce("sched-1", time.Now().Add(30*time.Millisecond)))
	require.NoError(t, s.ArmOnce("sched-1", time.Now().Add(60*time.Millisecond)))

	<-fired
	select {
	case <-fired:
		t.Fatal("re-arming should have replaced the first timer")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestArmRecurringInvalidCron(t *testing.T) {
	s := New(func(string) {})
	defer s.Stop()

	err := s.ArmRecurring("sched-1", "not a cron expression")
	assert.Error(t, err)
	assert.False(t, s.Armed("sched-1"))
}

func TestArmRecurringAndDisarm(t *testing.T) {
	s := New(func(string) {})
	defer s.Stop()

	require.NoError(t, s.ArmRecurring("sched-1", "0 9 * * *"))
	assert.True(t, s.Armed("sched-1"))

	s.Disarm("sched-1")
	assert.False(t, s.Armed("sched-1"))
}

func TestDisarmOneShot(t *testing.T) {
	fired := make(chan string, 1)
	s := New(func(id string) { fired <- id })
	defer s.Stop()

	require.NoError(t, s.ArmOnce("sched-1", time.Now().Add(30*time.Millisecond)))
	s.Disarm("sched-1")
	assert.False(t, s.Armed("sched-1"))

	select {
	case <-fired:
		t.Fatal("disarmed schedule fired")
	case <-time.After(100 * time.Millisecond):
	}
}
