package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"style": "MLA",
		"output_format": "latex",
		"output": "works_cited.tex",
		"verbose": true,
		"check": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "MLA", cfg.Style)
	assert.Equal(t, "latex", cfg.OutputFormat)
	assert.Equal(t, "works_cited.tex", cfg.Output)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Check)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyEnv_Overrides(t *testing.T) {
	cfg := &Config{Style: "MLA", OutputFormat: "text"}
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvOutputFormat: "markdown",
		EnvTemplate:     "custom.tmpl",
		EnvVerbose:      "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "MLA", cfg.Style)
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, "custom.tmpl", cfg.Template)
	assert.True(t, cfg.Verbose)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := &Config{Style: "MLA"}
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvStyle: ""})))
	assert.Equal(t, "MLA", cfg.Style)
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	cfg := &Config{}
	err := cfg.ApplyEnv(envMap(map[string]string{EnvVerbose: "sometimes"}))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), EnvVerbose)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnsupportedStyle(t *testing.T) {
	cfg := &Config{Style: "APA"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "only MLA is supported")
}

func TestValidate_LowercaseStyle(t *testing.T) {
	cfg := &Config{Style: "mla"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownOutputFormat(t *testing.T) {
	cfg := &Config{OutputFormat: "html"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestValidate_TemplateNotFound(t *testing.T) {
	cfg := &Config{Template: "/nonexistent/template.tmpl"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestValidate_TemplateExists(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "bib.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{range .Entries}}{{.Bibliography}}{{end}}"), 0644))

	cfg := &Config{Template: templatePath}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{OutputFormat: "latex"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "MLA", merged.Style)
	assert.Equal(t, "latex", merged.OutputFormat)
	assert.Equal(t, "", merged.Template)
	assert.Equal(t, "latex", cfg.OutputFormat, "receiver must not change")
}
