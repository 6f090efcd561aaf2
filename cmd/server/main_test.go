package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindServerFlags_Defaults(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f serverFlags
	bindServerFlags(fs, &f)

	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, ".env", f.envFile)
	assert.Empty(t, f.listenAddr)
}

func TestBindServerFlags_Overrides(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f serverFlags
	bindServerFlags(fs, &f)

	require.NoError(t, fs.Parse([]string{"--listen", ":9090", "--env-file", "local.env"}))

	assert.Equal(t, ":9090", f.listenAddr)
	assert.Equal(t, "local.env", f.envFile)
}
