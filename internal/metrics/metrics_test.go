package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStepError(t *testing.T) {
	before := testutil.ToFloat64(stepErrors.WithLabelValues("navigate", "timeout_error"))
	RecordStepError("navigate", "timeout_error")
	RecordStepError("navigate", "timeout_error")
	after := testutil.ToFloat64(stepErrors.WithLabelValues("navigate", "timeout_error"))
	assert.Equal(t, before+2, after)
}

func TestRecordStepLatency(t *testing.T) {
	RecordStepLatency("launch", "anonymous", 1500*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(stepLatency), 1)
}

func TestRecordCookiesAndToken(t *testing.T) {
	RecordCookiesHarvested(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(cookiesHarvested))

	exp := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	RecordTokenExpiry("PsJwt-production", exp)
	assert.Equal(t, float64(exp.Unix()), testutil.ToFloat64(tokenExpiry.WithLabelValues("PsJwt-production")))
}

func TestRecordRun(t *testing.T) {
	now := time.Unix(1760000000, 0)
	RecordRun(true, now)
	assert.Equal(t, float64(1), testutil.ToFloat64(lastRunSuccess))
	assert.Equal(t, float64(1760000000), testutil.ToFloat64(lastRunTimestamp))

	RecordRun(false, now)
	assert.Equal(t, float64(0), testutil.ToFloat64(lastRunSuccess))
}

func TestWriteTextfile(t *testing.T) {
	RecordCookiesHarvested(3)
	path := filepath.Join(t.TempDir(), "getjwt.prom")

	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "getjwt_cookies_harvested 3"))
}

func TestWriteTextfile_BadDir(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "getjwt.prom"))
	assert.Error(t, err)
}
