package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoolStats struct {
	total, idle, acquired int32
}

func (s fakePoolStats) TotalConns() int32    { return s.total }
func (s fakePoolStats) IdleConns() int32     { return s.idle }
func (s fakePoolStats) AcquiredConns() int32 { return s.acquired }

type fakeProvider struct {
	stats fakePoolStats
}

func (p *fakeProvider) Stat() PoolStats { return p.stats }

func TestPoolStatsCollector(t *testing.T) {
	provider := &fakeProvider{stats: fakePoolStats{total: 10, idle: 7, acquired: 3}}
	collector := NewPoolStatsCollectorWithProvider(provider)

	collector.Start(time.Hour) // interval long enough that only the initial collect runs
	defer collector.Stop()

	// The first collect happens synchronously inside the goroutine right
	// after start; give it a moment.
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")) == 10
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, float64(7), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestObserveNoteOperation(t *testing.T) {
	before := testutil.ToFloat64(NotesTotal.WithLabelValues("created"))
	ObserveNoteOperation("created")
	assert.Equal(t, before+1, testutil.ToFloat64(NotesTotal.WithLabelValues("created")))
}

func TestObserveCommentRejected(t *testing.T) {
	before := testutil.ToFloat64(CommentsRejectedTotal.WithLabelValues("moderation"))
	ObserveCommentRejected("moderation")
	assert.Equal(t, before+1, testutil.ToFloat64(CommentsRejectedTotal.WithLabelValues("moderation")))
}

func TestObservePolicyDecision(t *testing.T) {
	before := testutil.ToFloat64(PolicyDecisionsTotal.WithLabelValues("note", "deny_not_found"))
	ObservePolicyDecision("note", "deny_not_found")
	assert.Equal(t, before+1, testutil.ToFloat64(PolicyDecisionsTotal.WithLabelValues("note", "deny_not_found")))
}

func TestObserveLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginsTotal.WithLabelValues("success"))
	ObserveLogin("success")
	assert.Equal(t, before+1, testutil.ToFloat64(LoginsTotal.WithLabelValues("success")))
}

func TestTimer(t *testing.T) {
	timer := NewTimer()
	time.Sleep(5 * time.Millisecond)
	histogram := HTTPRequestDuration.WithLabelValues("GET", "/")
	timer.ObserveDuration(histogram)

	// One observation must have been recorded for the label pair.
	count := testutil.CollectAndCount(HTTPRequestDuration)
	assert.GreaterOrEqual(t, count, 1)
}
