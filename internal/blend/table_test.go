package blend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeTempCSV(t, "gbm,target,rf\n1.5,1,0.5\n2.5,2,1.5\n3.5,3,2.5\n")

	in, err := LoadTable(path, "target")
	require.NoError(t, err)

	require.Equal(t, []string{"gbm", "rf"}, in.Models)
	require.Equal(t, []float64{1, 2, 3}, in.Target)
	require.Equal(t, [][]float64{{1.5, 2.5, 3.5}, {0.5, 1.5, 2.5}}, in.Predictions)
}

func TestLoadTableMissingTargetColumn(t *testing.T) {
	path := writeTempCSV(t, "gbm,rf\n1,2\n")

	_, err := LoadTable(path, "target")
	require.Error(t, err)
	require.Contains(t, err.Error(), `target column "target" not found`)
}

func TestLoadTableBadCell(t *testing.T) {
	path := writeTempCSV(t, "gbm,target\n1.5,1\noops,2\n")

	_, err := LoadTable(path, "target")
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 3")
	require.Contains(t, err.Error(), `column "gbm"`)
}

func TestLoadTableNeedsModelColumns(t *testing.T) {
	path := writeTempCSV(t, "target\n1\n2\n")

	_, err := LoadTable(path, "target")
	require.Error(t, err)
}

func TestLoadTableNeedsDataRows(t *testing.T) {
	path := writeTempCSV(t, "gbm,target\n")

	_, err := LoadTable(path, "target")
	require.Error(t, err)
}

func TestLoadMatrix(t *testing.T) {
	path := writeTempCSV(t, "gbm,rf\n1,10\n2,20\n")

	models, predictions, err := LoadMatrix(path)
	require.NoError(t, err)
	require.Equal(t, []string{"gbm", "rf"}, models)
	require.Equal(t, [][]float64{{1, 2}, {10, 20}}, predictions)
}

func TestLoadTableFileMissing(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.csv"), "target")
	require.Error(t, err)
}
