package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metricTestTotal = NewCounterVec(
	CounterOpts{
		Namespace: Namespace,
		Subsystem: "test",
		Name:      "textfile_total",
	},
	[]string{"label"},
)

func TestWriteTextfile(t *testing.T) {
	metricTestTotal.WithLabelValues("a").Inc()

	path := filepath.Join(t.TempDir(), "probe.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `log_admin_test_textfile_total{label="a"} 1`)
}
