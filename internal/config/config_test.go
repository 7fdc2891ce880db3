package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	groups := writeFile(t, dir, "groups.yaml", "Dead: [DL]\n")
	factors := writeFile(t, dir, "factors.yaml", "LRFD1: {Dead: 1.4}\n")

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"factors file", Options{GroupsFile: groups, FactorsFile: factors}, ""},
		{"code", Options{GroupsFile: groups, Code: "nscp2015", Format: "xlsx"}, ""},
		{"missing groups", Options{FactorsFile: factors}, "GroupsFile is required"},
		{"groups not a file", Options{GroupsFile: filepath.Join(dir, "nope.yaml"), FactorsFile: factors}, "GroupsFile must be an existing file"},
		{"no recipes", Options{GroupsFile: groups}, "Code is required unless"},
		{"both recipe sources", Options{GroupsFile: groups, FactorsFile: factors, Code: "nscp2015"}, "cannot be combined"},
		{"bad format", Options{GroupsFile: groups, FactorsFile: factors, Format: "json"}, "Format must be one of csv xlsx"},
		{"negative workers", Options{GroupsFile: groups, FactorsFile: factors, Workers: -1}, "Workers must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvGroups, "groups.yaml")
	t.Setenv(EnvFactors, "factors.yaml")
	t.Setenv(EnvFormat, "xlsx")
	t.Setenv(EnvWorkers, "4")

	o, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "groups.yaml", o.GroupsFile)
	assert.Equal(t, "factors.yaml", o.FactorsFile)
	assert.Equal(t, "xlsx", o.Format)
	assert.Equal(t, 4, o.Workers)

	t.Setenv(EnvWorkers, "many")
	_, err = FromEnv()
	assert.ErrorContains(t, err, EnvWorkers)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, ".env", "GOCOMBO_OUTPUT=out/combos.csv\nGOCOMBO_LOG_LEVEL=debug\n")

	// registered so the variables are restored after the test
	t.Setenv(EnvOutput, "")
	t.Setenv(EnvLogLevel, "warn")
	require.NoError(t, os.Unsetenv(EnvOutput))

	require.NoError(t, LoadEnv(env, filepath.Join(dir, "missing.env")))

	o, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "out/combos.csv", o.Output)
	assert.Equal(t, "warn", o.LogLevel, "existing variables are not overridden")
}
