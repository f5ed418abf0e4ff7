package docx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DOCX_LOG_LEVEL", "DOCX_STRICT_MODE", "DOCX_COMPRESSION", "DOCX_DEFAULT_AUTHOR", "DOCX_LANGUAGE"} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "info", config.LogLevel)
	assert.False(t, config.StrictMode)
	assert.Equal(t, CompressionDeflate, config.Compression)
	assert.Empty(t, config.DefaultAuthor)
	assert.Empty(t, config.Language)
	assert.NoError(t, config.Validate())
}

func TestConfigFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, config *Config)
	}{
		{
			name:    "log level",
			envVars: map[string]string{"DOCX_LOG_LEVEL": "DEBUG"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "debug", config.LogLevel)
			},
		},
		{
			name:    "strict mode",
			envVars: map[string]string{"DOCX_STRICT_MODE": "yes"},
			check: func(t *testing.T, config *Config) {
				assert.True(t, config.StrictMode)
			},
		},
		{
			name:    "compression",
			envVars: map[string]string{"DOCX_COMPRESSION": "store"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, CompressionStore, config.Compression)
			},
		},
		{
			name: "author and language",
			envVars: map[string]string{
				"DOCX_DEFAULT_AUTHOR": "Reviewer",
				"DOCX_LANGUAGE":       "de-DE",
			},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "Reviewer", config.DefaultAuthor)
				assert.Equal(t, "de-DE", config.Language)
			},
		},
		{
			name:    "empty values keep defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, DefaultConfig(), config)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			tt.check(t, ConfigFromEnvironment())
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "docx.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("log_level: warn\nstrict_mode: true\ndefault_author: Editor\n"), 0o644))

	tomlPath := filepath.Join(dir, "docx.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("compression = \"store\"\nlanguage = \"en-GB\"\n"), 0o644))

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("compression: bzip2\n"), 0o644))

	t.Run("yaml", func(t *testing.T) {
		clearConfigEnv(t)
		config, err := LoadConfigFile(yamlPath)
		require.NoError(t, err)
		assert.Equal(t, "warn", config.LogLevel)
		assert.True(t, config.StrictMode)
		assert.Equal(t, "Editor", config.DefaultAuthor)
		assert.Equal(t, CompressionDeflate, config.Compression)
	})

	t.Run("toml", func(t *testing.T) {
		clearConfigEnv(t)
		config, err := LoadConfigFile(tomlPath)
		require.NoError(t, err)
		assert.Equal(t, CompressionStore, config.Compression)
		assert.Equal(t, "en-GB", config.Language)
		assert.Equal(t, "info", config.LogLevel)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("DOCX_LOG_LEVEL", "error")
		config, err := LoadConfigFile(yamlPath)
		require.NoError(t, err)
		assert.Equal(t, "error", config.LogLevel)
	})

	t.Run("no file", func(t *testing.T) {
		clearConfigEnv(t)
		config, err := LoadConfigFile("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("invalid value", func(t *testing.T) {
		clearConfigEnv(t)
		_, err := LoadConfigFile(badPath)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(dir, "docx.ini"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantField string
	}{
		{"valid", Config{LogLevel: "debug", Compression: "store"}, ""},
		{"bad log level", Config{LogLevel: "verbose", Compression: "deflate"}, "LogLevel"},
		{"bad compression", Config{LogLevel: "info", Compression: "lzma"}, "Compression"},
		{"bad language", Config{LogLevel: "info", Compression: "deflate", Language: "not a tag"}, "Language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Issues, 1)
			assert.Equal(t, tt.wantField, verr.Issues[0].Field)
		})
	}
}

func TestNewConfigWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), NewConfigWithDefaults(nil))

	config := NewConfigWithDefaults(&Config{StrictMode: true})
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, CompressionDeflate, config.Compression)
	assert.True(t, config.StrictMode)
}

func TestGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	SetGlobalConfig(&Config{LogLevel: "off", Compression: CompressionStore})
	got := GetGlobalConfig()
	assert.Equal(t, CompressionStore, got.Compression)

	got.Compression = CompressionDeflate
	assert.Equal(t, CompressionStore, GetGlobalConfig().Compression, "GetGlobalConfig returns a copy")
}
