package mcp

import (
	"context"
	"net/http"
	"net/url"
)

// ListPlugins lists available plugins.
func (c *Client) ListPlugins(ctx context.Context) ([]PluginInfo, error) {
	var plugins []PluginInfo
	if err := c.call(ctx, http.MethodGet, "/plugins", nil, &plugins); err != nil {
		return nil, err
	}
	return plugins, nil
}

// GetPlugin retrieves information about a single plugin by name.
func (c *Client) GetPlugin(ctx context.Context, name string) (*PluginInfo, error) {
	var plugin PluginInfo
	if err := c.call(ctx, http.MethodGet, "/plugins/"+url.PathEscape(name), nil, &plugin); err != nil {
		return nil, err
	}
	return &plugin, nil
}

// InstallPlugin installs a plugin with an optional configuration.
func (c *Client) InstallPlugin(ctx context.Context, name string, config map[string]any) (*PluginInfo, error) {
	body := installPluginRequest{
		Name:   name,
		Config: config,
	}
	var plugin PluginInfo
	if err := c.call(ctx, http.MethodPost, "/plugins/install", body, &plugin); err != nil {
		return nil, err
	}
	return &plugin, nil
}

// UninstallPlugin uninstalls a plugin by name. Uninstalling a plugin that is
// not installed is the server's MCPError, not a silent success.
func (c *Client) UninstallPlugin(ctx context.Context, name string) (map[string]string, error) {
	var ack map[string]string
	if err := c.call(ctx, http.MethodPost, "/plugins/"+url.PathEscape(name)+"/uninstall", nil, &ack); err != nil {
		return nil, err
	}
	return ack, nil
}
