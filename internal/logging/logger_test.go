/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: zapcore.DebugLevel},
		{name: "upper case info", input: "INFO", want: zapcore.InfoLevel},
		{name: "empty defaults to info", input: "", want: zapcore.InfoLevel},
		{name: "warning alias", input: "warning", want: zapcore.WarnLevel},
		{name: "error", input: " error ", want: zapcore.ErrorLevel},
		{name: "unknown", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, Level())

	err := SetLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, zapcore.DebugLevel, Level(), "failed update should keep the previous level")
}

func TestSetLogger(t *testing.T) {
	nop := zap.NewNop()
	SetLogger(nop)
	t.Cleanup(func() { SetLogger(nil) })

	assert.Same(t, nop, Logger())
}
