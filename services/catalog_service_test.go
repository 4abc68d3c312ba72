package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCareers = `[
  {"id": "software-developer", "title": "Software Developer", "noc": "21232"},
  {"id": "registered-nurse", "title": "Registered Nurse", "noc": "31301"},
  {"id": "electrician", "title": "Electrician", "noc": "72200"}
]`

const testPrograms = `{
  "cst": ["software-developer"],
  "nursing": ["registered-nurse"]
}`

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, careersFile), []byte(testCareers), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, programCareersFile), []byte(testPrograms), 0o644))

	s, err := NewCatalogService(dir, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestCatalogLoad(t *testing.T) {
	s := newTestCatalog(t)
	assert.Len(t, s.Careers(), 3)

	career, ok := s.Career("electrician")
	require.True(t, ok)
	assert.Equal(t, "Electrician", career.Title)

	_, ok = s.Career("nope")
	assert.False(t, ok)
}

func TestCatalogByProgram(t *testing.T) {
	s := newTestCatalog(t)

	matched := s.ByProgram("cst")
	require.Len(t, matched, 1)
	assert.Equal(t, "Software Developer", matched[0].Title)

	assert.Empty(t, s.ByProgram("unknown-program"))
}

func TestCatalogSearch(t *testing.T) {
	s := newTestCatalog(t)

	assert.Len(t, s.Search("NURSE"), 1)
	assert.Len(t, s.Search("  "), 3)
	assert.Empty(t, s.Search("astronaut"))
}

func TestFilterByTitle(t *testing.T) {
	s := newTestCatalog(t)
	narrowed := FilterByTitle(s.Careers(), "developer")
	require.Len(t, narrowed, 1)
	assert.Equal(t, "software-developer", narrowed[0].ID)
}

func TestCatalogMissingFiles(t *testing.T) {
	_, err := NewCatalogService(t.TempDir(), zap.NewNop())
	assert.Error(t, err)
}

func TestCatalogReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, careersFile), []byte(testCareers), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, programCareersFile), []byte(testPrograms), 0o644))

	s, err := NewCatalogService(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, careersFile), []byte("{broken"), 0o644))
	assert.Error(t, s.reload())
	assert.Len(t, s.Careers(), 3, "previous catalog survives a bad reload")
}
