package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/model"
)

// Config keys understood by Load
const (
	KeyServerURL      = "server_url"
	KeyPollInterval   = "poll_interval"
	KeyRequestTimeout = "request_timeout"
	KeyLogLevel       = "log_level"

	KeyAccessCode  = "access_code"
	KeyName        = "name"
	KeyIsOrganizer = "is_organizer"
)

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"server":      KeyServerURL,
	"log-level":   KeyLogLevel,
	"access-code": KeyAccessCode,
	"name":        KeyName,
	"organizer":   KeyIsOrganizer,
}

// Environment variables are read with this prefix, e.g. RETRO_SERVER_URL
const EnvPrefix = "RETRO"

// Defaults applied when neither file nor environment set a value
const (
	DefaultServerURL      = "http://localhost:5000"
	DefaultPollInterval   = 2500 * time.Millisecond
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
)

// Config holds process-wide options
type Config struct {
	ServerURL      string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	LogLevel       string

	// Entry parameters; the organizer flag stays a boolean-as-string
	AccessCode  string
	Name        string
	IsOrganizer string
}

// Identity returns the entry parameters as a session identity
func (c *Config) Identity() model.Identity {
	return model.NewIdentity(c.AccessCode, c.Name, c.IsOrganizer)
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; already set variables win.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			logging.Log.WithField("file", file).Debug("no .env file loaded")
		}
	}
}

// Load reads configuration from an optional YAML file at path, the
// RETRO_* environment and, when given, command-line flags. Flags win over
// environment, which wins over the file. An empty path only consults
// ./config.yaml.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := NewViper()
	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logging.Log.Debug("no config file found, using defaults and environment")
	}

	return FromViper(v)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// NewViper returns a viper instance with defaults and environment binding
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyServerURL, DefaultServerURL)
	v.SetDefault(KeyPollInterval, DefaultPollInterval)
	v.SetDefault(KeyRequestTimeout, DefaultRequestTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	conf := &Config{
		ServerURL:      strings.TrimRight(strings.TrimSpace(v.GetString(KeyServerURL)), "/"),
		PollInterval:   v.GetDuration(KeyPollInterval),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		LogLevel:       v.GetString(KeyLogLevel),
		AccessCode:     v.GetString(KeyAccessCode),
		Name:           v.GetString(KeyName),
		IsOrganizer:    v.GetString(KeyIsOrganizer),
	}

	if conf.ServerURL == "" {
		return nil, errors.New("server_url must not be empty")
	}
	if conf.PollInterval <= 0 {
		return nil, fmt.Errorf("poll_interval must be positive, got %s", conf.PollInterval)
	}
	if conf.RequestTimeout <= 0 {
		conf.RequestTimeout = DefaultRequestTimeout
	}
	return conf, nil
}
