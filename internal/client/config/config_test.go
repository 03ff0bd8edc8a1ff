package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		ServerEndpointAddr:  "127.0.0.1:50051",
		OnlineCheckInterval: 3 * time.Second,
		RequestTimeout:      10 * time.Second,
		DatabaseFile:        "wallet.db",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Precedence(t *testing.T) {
	path := writeJSON(t, `{"server_endpoint_addr":"json:1","online_check_interval":"7s","database_file":"json.db"}`)

	cfg, err := load([]string{"-c", path, "-a", "flag:2", "-x", "ignored"})
	require.NoError(t, err)

	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, "json.db", cfg.DatabaseFile)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoad_IntervalFlag(t *testing.T) {
	cfg, err := load([]string{"-i", "15", "-f", "other.db"})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, "other.db", cfg.DatabaseFile)
}

func TestLoad_NanosecondDuration(t *testing.T) {
	path := writeJSON(t, `{"request_timeout":2000000000}`)
	cfg, err := load([]string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	_, err = load([]string{"-c", writeJSON(t, `{"online_check_interval":`)})
	assert.Error(t, err)

	_, err = load([]string{"-i", "soon"})
	assert.Error(t, err)
}
