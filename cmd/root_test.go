/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"strings"
	"testing"

	"github.com/orien/simplecdk/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "simplecdk", rootCmd.Use)
	assert.Equal(t, "Prepare AWS CDK deployments from layered configuration", rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "CDK_DEFAULT_ACCOUNT")
	assert.Same(t, rootCmd, RootCommand())
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "simplecdk.yaml", configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)

	environmentFlag := flags.Lookup("environment")
	require.NotNil(t, environmentFlag)
	assert.Equal(t, "e", environmentFlag.Shorthand)
	assert.Equal(t, "", environmentFlag.DefValue)

	logLevelFlag := flags.Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Equal(t, "info", logLevelFlag.DefValue)

	assert.NotNil(t, flags.Lookup("processors"))
}

func TestRootCmd_Help(t *testing.T) {
	output, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "simplecdk")
	assert.Contains(t, output, "Flags:")
	assert.Contains(t, output, "--config")
	assert.Contains(t, output, "--log-level")

	assert.Contains(t, output, "Available Commands:")
	for _, name := range []string{"plan", "synth", "context", "status", "validate", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestRootCmd_VersionFlag(t *testing.T) {
	output, err := executeCommand(t, "--version")
	require.NoError(t, err)

	assert.Equal(t, version.Info()+"\n", output)
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "simplecdk "))
	assert.Contains(t, output, "Git commit:")
	assert.Contains(t, output, "Platform:")
}

func TestRootCmd_InvalidFlag(t *testing.T) {
	_, err := executeCommand(t, "--invalid-flag")

	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "unknown flag")
}

func TestRootCmd_FlagInheritance(t *testing.T) {
	for _, name := range []string{"plan", "synth", "context", "status"} {
		sub := findCommand(rootCmd, name)
		require.NotNil(t, sub, name)

		inherited := sub.InheritedFlags()
		assert.NotNil(t, inherited.Lookup("config"), name)
		assert.NotNil(t, inherited.Lookup("environment"), name)
	}
}
