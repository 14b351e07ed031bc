package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlugins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plugins", r.URL.Path)
		w.Write([]byte(`{"ok":true,"data":[
			{"name":"coverage","version":"0.3.1","status":"enabled","capabilities":["report"]},
			{"name":"notify","version":"1.0.0","status":"disabled"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	plugins, err := client.ListPlugins(context.Background())
	require.NoError(t, err)
	require.Len(t, plugins, 2)
	assert.Equal(t, "coverage", plugins[0].Name)
	assert.Equal(t, "disabled", plugins[1].Status)
}

func TestInstallPlugin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/plugins/install", r.URL.Path)

		var body installPluginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "coverage", body.Name)
		assert.Equal(t, float64(80), body.Config["threshold"])

		w.Write([]byte(`{"ok":true,"data":{"name":"coverage","version":"0.3.1","status":"enabled"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	plugin, err := client.InstallPlugin(context.Background(), "coverage", map[string]any{"threshold": 80})
	require.NoError(t, err)
	assert.Equal(t, "enabled", plugin.Status)
}

func TestUninstallPlugin_NotInstalled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plugins/coverage/uninstall", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"ok":false,"error":"plugin coverage is not installed"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.UninstallPlugin(context.Background(), "coverage")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
