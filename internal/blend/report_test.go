package blend

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	return &Result{
		RunID:       "blend-test-0001",
		Models:      []string{"gbm", "rf"},
		Weights:     []float64{0.75, 0.25},
		RawWeights:  []float64{0.6, 0.2},
		Fitness:     0.0123,
		Iterations:  40,
		Evaluations: 1640,
		StopReason:  "max_iterations",
		ElapsedMs:   12,
	}
}

func TestWriteResultJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, sampleResult(), "json"))

	parsed, err := ReadResult(&buf)
	require.NoError(t, err)
	require.Equal(t, sampleResult(), parsed)
}

func TestWriteResultCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, sampleResult(), "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"model,weight,raw_weight",
		"gbm,0.75,0.6",
		"rf,0.25,0.2",
	}, lines)
}

func TestWriteResultUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResult(&buf, sampleResult(), "xml")
	require.Error(t, err)
}

func TestReadResultRejectsInconsistentDocument(t *testing.T) {
	doc := `{"models":["a","b"],"weights":[1.0]}`
	_, err := ReadResult(strings.NewReader(doc))
	require.Error(t, err)
}
