package gviz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_NilAlwaysAllows(t *testing.T) {
	b := NewBreaker(0, time.Second)
	assert.Nil(t, b)
	for i := 0; i < 5; i++ {
		b.OnFailure()
		assert.True(t, b.Allow())
	}
	b.OnSuccess()
}

func TestBreaker_OpensAndRecovers(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := NewBreaker(2, 10*time.Second)
	b.now = func() time.Time { return now }

	assert.True(t, b.Allow())
	b.OnFailure()
	assert.True(t, b.Allow())
	b.OnFailure()

	assert.False(t, b.Allow(), "open after threshold")

	now = now.Add(11 * time.Second)
	assert.True(t, b.Allow(), "one trial after cool-down")
	assert.False(t, b.Allow(), "only one trial in flight")

	b.OnFailure()
	assert.False(t, b.Allow(), "failed trial reopens")

	now = now.Add(11 * time.Second)
	assert.True(t, b.Allow())
	b.OnSuccess()
	assert.True(t, b.Allow())
	assert.True(t, b.Allow())
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	b := NewBreaker(2, time.Minute)

	b.OnFailure()
	b.OnSuccess()
	b.OnFailure()
	assert.True(t, b.Allow())
}

func TestBreaker_CanceledTrialFreesSlot(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := NewBreaker(1, 10*time.Second)
	b.now = func() time.Time { return now }

	b.OnFailure()
	assert.False(t, b.Allow())

	now = now.Add(11 * time.Second)
	assert.True(t, b.Allow(), "trial")
	b.OnCancel()

	assert.True(t, b.Allow(), "new trial right after a canceled one")
	b.OnSuccess()
	assert.True(t, b.Allow())
}

func TestBreaker_CancelWhileClosedIsNoop(t *testing.T) {
	b := NewBreaker(1, time.Minute)
	b.OnCancel()
	assert.True(t, b.Allow())

	var nilBreaker *Breaker
	nilBreaker.OnCancel()
}
