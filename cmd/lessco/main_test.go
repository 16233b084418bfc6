package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
	}{
		{
			name:         "clean with valid config",
			config:       "siteRoot: .\n",
			args:         []string{"clean", "--log-format", "json"},
			expectedExit: 0,
		},
		{
			name:         "missing config",
			args:         []string{"clean"},
			expectedExit: 1,
		},
		{
			name:         "invalid mode",
			config:       "mode: sideways\n",
			args:         []string{"clean"},
			expectedExit: 1,
		},
		{
			name:         "version",
			args:         []string{"version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "lessco.yaml"), []byte(tt.config), 0o600))
			}
			t.Chdir(dir)

			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}
}
