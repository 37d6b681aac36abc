package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/prometheus/prompb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPushRegistry(t *testing.T) {
	tests := []struct {
		name string
		cfg  PushConfig
	}{
		{
			name: "minimal config",
			cfg:  PushConfig{URL: "http://localhost:8428"},
		},
		{
			name: "full config",
			cfg: PushConfig{
				URL:      "http://localhost:8428",
				Prefix:   "goreport",
				Job:      "goreport",
				Instance: "host1",
				Timeout:  5 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewPushRegistry(tt.cfg)
			require.NotNil(t, registry)
			require.NotNil(t, registry.pusher)
		})
	}
}

// decodeWriteRequest unpacks a snappy-compressed remote write body.
func decodeWriteRequest(t *testing.T, r *http.Request) *prompb.WriteRequest {
	t.Helper()
	compressed, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	data, err := snappy.Decode(nil, compressed)
	require.NoError(t, err)
	var req prompb.WriteRequest
	require.NoError(t, proto.Unmarshal(data, &req))
	return &req
}

func TestPushRegistry_CounterPushesSamples(t *testing.T) {
	var requests []*prompb.WriteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/write", r.URL.Path)
		assert.Equal(t, "snappy", r.Header.Get("Content-Encoding"))
		requests = append(requests, decodeWriteRequest(t, r))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	registry := NewPushRegistry(PushConfig{URL: srv.URL, Prefix: "goreport", Job: "goreport", Instance: "host1"})
	counter, err := registry.NewCounter(prometheus.CounterOpts{Name: "users_selected_total"})
	require.NoError(t, err)

	counter.Inc()
	counter.Add(2)

	require.Len(t, requests, 2)

	first := requests[0].Timeseries[0]
	labels := map[string]string{}
	for _, l := range first.Labels {
		labels[l.Name] = l.Value
	}
	assert.Equal(t, "goreport_users_selected_total", labels["__name__"])
	assert.Equal(t, "goreport", labels["job"])
	assert.Equal(t, "host1", labels["instance"])
	assert.Equal(t, float64(1), first.Samples[0].Value)

	// Counters push absolute totals.
	second := requests[1].Timeseries[0]
	assert.Equal(t, float64(3), second.Samples[0].Value)
}

func TestPushRegistry_CounterVecLabels(t *testing.T) {
	var req *prompb.WriteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = decodeWriteRequest(t, r)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	registry := NewPushRegistry(PushConfig{URL: srv.URL})
	vec, err := registry.NewCounterVec(prometheus.CounterOpts{Name: "runs_total"}, []string{"status"})
	require.NoError(t, err)

	vec.With(prometheus.Labels{"status": "ok"}).Inc()

	require.NotNil(t, req)
	labels := map[string]string{}
	for _, l := range req.Timeseries[0].Labels {
		labels[l.Name] = l.Value
	}
	assert.Equal(t, "runs_total", labels["__name__"])
	assert.Equal(t, "ok", labels["status"])
}

func TestPushRegistry_CounterVecAccumulatesAcrossWithCalls(t *testing.T) {
	var values []float64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeWriteRequest(t, r)
		values = append(values, req.Timeseries[0].Samples[0].Value)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	registry := NewPushRegistry(PushConfig{URL: srv.URL})
	vec, err := registry.NewCounterVec(prometheus.CounterOpts{Name: "runs_total"}, []string{"status"})
	require.NoError(t, err)

	// Each With call must return the same underlying counter for the same
	// labels, so the pushed totals keep increasing.
	for i := 0; i < 3; i++ {
		vec.With(prometheus.Labels{"status": "ok"}).Inc()
	}
	assert.Equal(t, []float64{1, 2, 3}, values)

	// A different label set gets its own counter starting from zero.
	vec.With(prometheus.Labels{"status": "error"}).Inc()
	assert.Equal(t, []float64{1, 2, 3, 1}, values)
}

func TestPushRegistry_GaugeSet(t *testing.T) {
	var req *prompb.WriteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req = decodeWriteRequest(t, r)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	registry := NewPushRegistry(PushConfig{URL: srv.URL})
	gauge, err := registry.NewGauge(prometheus.GaugeOpts{Name: "run_duration_seconds"})
	require.NoError(t, err)

	gauge.Set(0.25)

	require.NotNil(t, req)
	assert.Equal(t, 0.25, req.Timeseries[0].Samples[0].Value)
}

func TestNewRunMetrics(t *testing.T) {
	rm, err := NewRunMetrics(NewNopRegistry())
	require.NoError(t, err)
	require.NotNil(t, rm)

	// All metrics are usable even when monitoring is disabled.
	rm.Runs.With(prometheus.Labels{"status": "ok"}).Inc()
	rm.UsersConsidered.Add(3)
	rm.UsersSelected.Inc()
	rm.ActivityLines.Add(2)
	rm.Duration.Set(0.01)
}
