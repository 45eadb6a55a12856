package abacusdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	d := New("/tmp/project/.abacus")

	assert.Equal(t, "/tmp/project/.abacus", d.Root())
	assert.Equal(t, "/tmp/project/.abacus/config.yaml", d.ConfigPath())
	assert.Equal(t, "/tmp/project/.abacus/local", d.LocalDir())
	assert.Equal(t, "/tmp/project/.abacus/local/abacus.log", d.LogPath())
	assert.Equal(t, "/tmp/project/.abacus/.gitignore", d.GitignorePath())
}

func TestNew_RelativeBecomesAbsolute(t *testing.T) {
	d := New(".abacus")
	assert.True(t, filepath.IsAbs(d.Root()))
}

func TestEnsureStructure_Idempotent(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), ".abacus"))
	assert.False(t, d.Exists())

	require.NoError(t, EnsureStructure(d))
	require.NoError(t, EnsureStructure(d))

	assert.True(t, d.Exists())
	assert.DirExists(t, d.LocalDir())

	data, err := os.ReadFile(d.GitignorePath())
	require.NoError(t, err)
	assert.Equal(t, gitignoreContent, string(data))
}

func TestBootstrapWithConfig(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), ".abacus"))

	require.NoError(t, BootstrapWithConfig(d, []byte("max_input_length: 8\n")))

	data, err := os.ReadFile(d.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "max_input_length: 8\n", string(data))

	err = BootstrapWithConfig(d, []byte("max_input_length: 9\n"))
	require.ErrorIs(t, err, ErrExists)

	data, err = os.ReadFile(d.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, "max_input_length: 8\n", string(data), "existing config must be preserved")
}

func TestResolveConfigPath(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), ".abacus"))

	assert.Equal(t, "custom.yaml", ResolveConfigPath("custom.yaml", d))
	assert.Equal(t, "abacus.yaml", ResolveConfigPath("", d))

	require.NoError(t, BootstrapWithConfig(d, []byte("{}\n")))
	assert.Equal(t, d.ConfigPath(), ResolveConfigPath("", d))
}
