package canvas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toothbrush/canvas-link-finder/canvas"
)

func TestLoadCredentials_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"production": "abc123", "test": "def456"}`), 0600))

	creds, err := canvas.LoadCredentials(path)
	require.NoError(t, err)

	token, err := creds.Token("test")
	require.NoError(t, err)
	assert.Equal(t, "def456", token)
}

func TestLoadCredentials_MissingFile(t *testing.T) {
	_, err := canvas.LoadCredentials(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCredentials_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0600))

	_, err := canvas.LoadCredentials(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoadCredentials_Env(t *testing.T) {
	t.Setenv(canvas.CredentialsEnv, `{"production": "from-env"}`)

	creds, err := canvas.LoadCredentials("")
	require.NoError(t, err)

	token, err := creds.Token("production")
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestLoadCredentials_EnvMissing(t *testing.T) {
	t.Setenv(canvas.CredentialsEnv, "")

	_, err := canvas.LoadCredentials("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), canvas.CredentialsEnv)
}

func TestCredentials_UnknownServerType(t *testing.T) {
	creds := canvas.Credentials{"production": "abc"}

	_, err := creds.Token("test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'test'")
}
