package docx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	CompressionDeflate = "deflate"
	CompressionStore   = "store"
)

// Config contains all configuration options for document assembly
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `yaml:"log_level" toml:"log_level" validate:"oneof=debug info warn error off"`
	// StrictMode rejects core property dates that are not RFC 3339
	StrictMode bool `yaml:"strict_mode" toml:"strict_mode"`
	// Compression selects the ZIP method used by Pack
	Compression string `yaml:"compression" toml:"compression" validate:"oneof=deflate store"`
	// DefaultAuthor is used for extracted comments that carry no author
	DefaultAuthor string `yaml:"default_author" toml:"default_author" validate:"max=255"`
	// Language is written to dc:language of the core properties when set
	Language string `yaml:"language" toml:"language" validate:"omitempty,bcp47_language_tag"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		StrictMode:  false,
		Compression: CompressionDeflate,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()
	applyEnvironment(config)
	return config
}

func applyEnvironment(config *Config) {
	// DOCX_LOG_LEVEL
	if val := os.Getenv("DOCX_LOG_LEVEL"); val != "" {
		config.LogLevel = strings.ToLower(val)
	}

	// DOCX_STRICT_MODE
	if val := os.Getenv("DOCX_STRICT_MODE"); val != "" {
		config.StrictMode = parseBool(val)
	}

	// DOCX_COMPRESSION
	if val := os.Getenv("DOCX_COMPRESSION"); val != "" {
		config.Compression = strings.ToLower(val)
	}

	if val := os.Getenv("DOCX_DEFAULT_AUTHOR"); val != "" {
		config.DefaultAuthor = val
	}

	if val := os.Getenv("DOCX_LANGUAGE"); val != "" {
		config.Language = val
	}
}

// LoadConfigFile loads configuration with priority: defaults -> file -> environment.
// The file format is picked from the extension (.yaml, .yml or .toml). An empty path
// skips the file.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, config)
		case ".toml":
			err = toml.Unmarshal(data, config)
		default:
			return nil, fmt.Errorf("unsupported config file extension %q", ext)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvironment(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	if config.Compression == "" {
		config.Compression = defaults.Compression
	}

	return &config
}

var configValidator = validator.New()

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Issues = append(verr.Issues, ValidationIssue{
			Field:   fe.Field(),
			Message: fmt.Sprintf("invalid value %q (%s)", fmt.Sprint(fe.Value()), fe.Tag()),
		})
	}
	return verr
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
