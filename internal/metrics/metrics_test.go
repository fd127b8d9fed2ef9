package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llfsmgen/llfsmgen/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := metrics.New()

	r.Observe("vhdl", time.Now(), nil)
	r.Observe("vhdl", time.Now(), errors.New("boom"))
	r.Observe("model", time.Now(), nil)
	r.MachineProcessed(nil)

	count, err := testutil.GatherAndCount(r.Registry(), "llfsmgen_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	machines, err := testutil.GatherAndCount(r.Registry(), "llfsmgen_arrangement_machines_total")
	require.NoError(t, err)
	assert.Equal(t, 1, machines)
}

func TestRecorder_NilIsSafe(t *testing.T) {
	var r *metrics.Recorder
	r.Observe("vhdl", time.Now(), nil)
	r.MachineProcessed(nil)
	assert.NotNil(t, r.Registry())
}

func TestRecorder_HandlerAndTextfile(t *testing.T) {
	r := metrics.New()
	r.Observe("clean", time.Now(), nil)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `llfsmgen_operations_total{operation="clean",result="success"} 1`)

	path := filepath.Join(t.TempDir(), "llfsmgen.prom")
	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "llfsmgen_operation_duration_seconds")
}
