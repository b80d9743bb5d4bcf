package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "ZCJ", c.ScoreKey)
	assert.Len(t, c.GradeScale, 5)
	assert.Len(t, c.Components, 3)
	assert.Equal(t, []string{"必修", "限选"}, c.OfficialTypes)
	assert.Len(t, c.GPATable, 10)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpakit.yaml")

	c1 := Default()
	c1.CoreKeywords = append(c1.CoreKeywords, "嵌入式")
	require.NoError(t, Save(path, c1))

	c2, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c1.ScoreKey, c2.ScoreKey)
	assert.Equal(t, c1.GradeScale, c2.GradeScale)
	assert.Equal(t, c1.CoreKeywords, c2.CoreKeywords)
	assert.Equal(t, c1.GPATable, c2.GPATable)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("core_keywords:\n  - compilers\n"), 0600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"compilers"}, c.CoreKeywords)
	// Everything the file omits falls back to the built-ins.
	assert.Equal(t, "ZCJ", c.ScoreKey)
	assert.Len(t, c.GradeScale, 5)
	assert.Len(t, c.GPATable, 10)
}

func TestSave_Invalid(t *testing.T) {
	assert.Error(t, Save("", Default()))
	assert.Error(t, Save(filepath.Join(t.TempDir(), "x.yaml"), nil))
}

func TestBuilders(t *testing.T) {
	c := Default()

	r := c.Resolver()
	require.NotNil(t, r)
	assert.Equal(t, c.ScoreKey, r.ScoreKey)

	f := c.Filter()
	require.NotNil(t, f)
	assert.Equal(t, c.OfficialTypes, f.OfficialTypes)

	cl := c.Classifier()
	require.NotNil(t, cl)
	assert.Equal(t, c.CoreKeywords, cl.Keywords)
}
