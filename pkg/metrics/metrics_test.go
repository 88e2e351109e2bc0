package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	m := New()
	m.ObserveGeneration(SourcePayload, OutcomeOK, 20*time.Millisecond)
	m.ObserveGeneration(SourcePayload, OutcomeOK, 30*time.Millisecond)
	m.ObserveGeneration(SourcePayload, OutcomeInvalid, time.Millisecond)
	m.ObserveGeneration(SourceEvent, OutcomeNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues(SourcePayload, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues(SourcePayload, OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues(SourceEvent, OutcomeNotFound)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.generations))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestObserveDocument(t *testing.T) {
	m := New()
	m.ObserveDocument("docx", 4096, 3)
	assert.Equal(t, 1, testutil.CollectAndCount(m.documentBytes))
	assert.Equal(t, 1, testutil.CollectAndCount(m.approved))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveGeneration(SourcePreview, OutcomeOK, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `briefd_generations_total{outcome="ok",source="preview"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewIsIndependent(t *testing.T) {
	a, b := New(), New()
	a.ObserveGeneration(SourcePayload, OutcomeOK, 0)
	assert.Equal(t, 0, testutil.CollectAndCount(b.generations))
}
