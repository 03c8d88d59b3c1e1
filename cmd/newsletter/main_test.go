package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	down, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	steps, err := down.Flags().GetInt("steps")
	require.NoError(t, err)
	assert.Equal(t, 1, steps)
}

func TestRootCmd_ConfigFlagFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/etc/newsletter/config.yaml")

	root := newRootCmd()
	path, err := root.PersistentFlags().GetString("config")
	require.NoError(t, err)
	assert.Equal(t, "/etc/newsletter/config.yaml", path)
}
