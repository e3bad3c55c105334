package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/ainews/pkg/config"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidBaseURL(t *testing.T) {
	opts := Opts{}
	opts.Gemini.APIKey = "key"
	opts.Gemini.BaseURL = "not a url"

	err := run(context.Background(), opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid config")
}

func TestRun_ServerStartStop(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n  disabled: true\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Config: configPath, Listen: fmt.Sprintf("127.0.0.1:%d", port)})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestApplyOpts(t *testing.T) {
	cfg := config.Default()
	applyOpts(cfg, Opts{})
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Empty(t, cfg.Translate.APIKey)
	assert.Empty(t, cfg.Translate.BaseURL)

	opts := Opts{Listen: ":9999"}
	opts.Gemini.APIKey = "secret"
	opts.Gemini.BaseURL = "https://proxy.example.com"
	applyOpts(cfg, opts)
	assert.Equal(t, ":9999", cfg.Server.Listen)
	assert.Equal(t, "secret", cfg.Translate.APIKey)
	assert.Equal(t, "https://proxy.example.com", cfg.Translate.BaseURL)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	shared := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("AINEWS_TEST_A=local\n"), 0o600))
	require.NoError(t, os.WriteFile(shared, []byte("AINEWS_TEST_A=shared\nAINEWS_TEST_B=shared\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("AINEWS_TEST_A")
		_ = os.Unsetenv("AINEWS_TEST_B")
	})

	loaded, err := loadEnvFiles(local, filepath.Join(dir, "missing.env"), shared)
	require.NoError(t, err)
	assert.Equal(t, []string{local, shared}, loaded)
	assert.Equal(t, "local", os.Getenv("AINEWS_TEST_A"), "earlier file wins")
	assert.Equal(t, "shared", os.Getenv("AINEWS_TEST_B"))

	// a directory can't be read as env file
	loaded, err = loadEnvFiles(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't load")
	assert.Empty(t, loaded)
}

func TestSetupLog(t *testing.T) {
	setupLog(false)
	setupLog(true, "", "secret")
}
