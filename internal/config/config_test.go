package config

import (
	"os"
	"testing"

	"http_peek/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      string
		expected string
	}{
		{
			name:     "returns existing env",
			key:      "TEST_ENV_EXIST",
			val:      "value",
			def:      "default",
			expected: "value",
		},
		{
			name:     "returns default when env missing",
			key:      "TEST_ENV_MISSING",
			val:      "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenv(tt.key, tt.def))
		})
	}
}

func TestGetenvBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      bool
		expected bool
	}{
		{name: "true value", key: "TEST_BOOL_TRUE", val: "true", def: false, expected: true},
		{name: "false value", key: "TEST_BOOL_FALSE", val: "false", def: true, expected: false},
		{name: "missing uses default", key: "TEST_BOOL_MISSING", val: "", def: true, expected: true},
		{name: "anything else is false", key: "TEST_BOOL_INVALID", val: "yes", def: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenvBool(tt.key, tt.def))
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		expected  types.ServerMode
		expectErr bool
	}{
		{name: "default is proxy", val: "", expected: types.ServerModePROXY},
		{name: "proxy", val: "proxy", expected: types.ServerModePROXY},
		{name: "watch", val: "watch", expected: types.ServerModeWATCH},
		{name: "case insensitive", val: "WATCH", expected: types.ServerModeWATCH},
		{name: "invalid", val: "relay", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("MODE", tt.val)
			} else {
				os.Unsetenv("MODE")
			}
			mode, err := parseMode()
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestParseBufferSize(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		expected int
	}{
		{name: "default", val: "", expected: 32768},
		{name: "valid custom", val: "65536", expected: 65536},
		{name: "not a number", val: "lots", expected: 4096},
		{name: "too small", val: "10", expected: 4096},
		{name: "too large", val: "99999999", expected: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("BUFFER_SIZE", tt.val)
			} else {
				os.Unsetenv("BUFFER_SIZE")
			}
			assert.Equal(t, tt.expected, parseBufferSize())
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("requires upstream address", func(t *testing.T) {
		os.Unsetenv("UPSTREAM_ADDRESS")
		_, err := parse()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "UPSTREAM_ADDRESS")
	})

	t.Run("full config", func(t *testing.T) {
		t.Setenv("MODE", "watch")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("UPSTREAM_ADDRESS", "localhost:3000")
		t.Setenv("BUFFER_SIZE", "8192")
		t.Setenv("PPROF_ENABLED", "true")
		t.Setenv("PPROF_PORT", "6161")

		cfg, err := parse()
		require.NoError(t, err)
		assert.Equal(t, types.ServerModeWATCH, cfg.Mode())
		assert.Equal(t, "9090", cfg.HTTPPort())
		assert.Equal(t, "localhost:3000", cfg.UpstreamAddress())
		assert.Equal(t, 8192, cfg.BufferSize())
		assert.True(t, cfg.PprofEnabled())
		assert.Equal(t, "6161", cfg.PprofPort())
	})
}
