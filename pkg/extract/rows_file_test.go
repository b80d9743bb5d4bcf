package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	text := `copied from the browser: {"datas":{"xscjcx":{"rows":[{"XSKCM":"电路分析","XF":"3"}]}}}`
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "电路分析", rows[0]["XSKCM"])
}

func TestReadRows_MissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
