package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRPC(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.ObserveRPC("/splitit.v1.SplitService/AddPerson", "ok", 3*time.Millisecond)
	m.ObserveRPC("/splitit.v1.SplitService/AddPerson", "ok", 5*time.Millisecond)
	m.ObserveRPC("/splitit.v1.SplitService/AddPerson", "invalid_argument", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RPCTotal.WithLabelValues("/splitit.v1.SplitService/AddPerson", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCTotal.WithLabelValues("/splitit.v1.SplitService/AddPerson", "invalid_argument")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RPCDuration))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}
