package rates

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestResultMemo_ServesWithinTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	memo := NewResultMemo(time.Hour, clock)

	data := &PeriodData{}
	memo.Set(12, data)

	clock.Advance(59 * time.Minute)
	got, ok := memo.Get(12)
	require.True(t, ok)
	require.Same(t, data, got)
}

func TestResultMemo_ExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	memo := NewResultMemo(time.Hour, clock)

	memo.Set(12, &PeriodData{})

	clock.Advance(time.Hour)
	_, ok := memo.Get(12)
	require.False(t, ok)
}

func TestResultMemo_PeriodsAreIndependent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	memo := NewResultMemo(time.Hour, clock)

	memo.Set(1, &PeriodData{})
	clock.Advance(30 * time.Minute)
	memo.Set(12, &PeriodData{})
	clock.Advance(40 * time.Minute)

	_, ok := memo.Get(1)
	require.False(t, ok)
	_, ok = memo.Get(12)
	require.True(t, ok)

	_, ok = memo.Get(3)
	require.False(t, ok)
}
