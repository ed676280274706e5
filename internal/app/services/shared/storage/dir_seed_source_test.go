package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSeedSource_Load(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "valuesets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "q.json"), []byte(`{"resourceType":"Questionnaire"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "valuesets", "vs.json"), []byte(`{"resourceType":"ValueSet"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("ignored"), 0o644))

	source := NewDirSeedSource(root)
	files, err := source.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, files, 2)
	assert.Contains(t, files, filepath.Join(root, "q.json"))
	assert.Contains(t, files, filepath.Join(root, "valuesets", "vs.json"))
	assert.Equal(t, root, source.Name())
}

func TestDirSeedSource_MissingDirectory(t *testing.T) {
	_, err := NewDirSeedSource(filepath.Join(t.TempDir(), "missing")).Load(context.Background())
	assert.Error(t, err)
}
