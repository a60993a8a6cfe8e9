package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	var (
		serverURL string
		perPage   int
		withVCR   bool
		hosts     []string
	)
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&serverURL, "server-url", "", "")
	cmd.Flags().IntVar(&perPage, "per-page", 10, "")
	cmd.Flags().BoolVar(&withVCR, "with-vcr", false, "")
	cmd.Flags().StringSliceVar(&hosts, "provider-host", []string{}, "")
	require.NoError(t, cmd.ParseFlags([]string{"--server-url", "https://from-flag.example.edu"}))

	yes := true
	fifty := 50
	require.NoError(t, bindFlags(cmd, YamlConfig{
		ServerURL:     "https://from-config.example.edu",
		PerPage:       &fifty,
		WithVCR:       &yes,
		ProviderHosts: []string{"goo.gl", "docs.google.com"},
		// no such flag on this command; ignored.
		Format: "yaml",
	}))

	assert.Equal(t, "https://from-flag.example.edu", serverURL)
	assert.Equal(t, 50, perPage)
	assert.True(t, withVCR)
	assert.Equal(t, []string{"goo.gl", "docs.google.com"}, hosts)
}
