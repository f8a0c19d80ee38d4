package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/retro-board/internal/logging"
)

func TestLoad_Defaults(t *testing.T) {
	logging.Silence()

	conf, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, conf.ServerURL)
	assert.Equal(t, 2500*time.Millisecond, conf.PollInterval)
	assert.Equal(t, DefaultRequestTimeout, conf.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, conf.LogLevel)
}

func TestLoad_File(t *testing.T) {
	logging.Silence()
	path := filepath.Join(t.TempDir(), "retro.yaml")
	content := "server_url: http://board.example:9000/\npoll_interval: 1s\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	conf, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://board.example:9000", conf.ServerURL)
	assert.Equal(t, time.Second, conf.PollInterval)
	assert.Equal(t, "debug", conf.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	logging.Silence()
	path := filepath.Join(t.TempDir(), "retro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://from-file\n"), 0o600))
	t.Setenv("RETRO_SERVER_URL", "http://from-env")
	t.Setenv("RETRO_REQUEST_TIMEOUT", "3s")

	conf, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", conf.ServerURL)
	assert.Equal(t, 3*time.Second, conf.RequestTimeout)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	logging.Silence()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_FlagsAndIdentity(t *testing.T) {
	logging.Silence()
	t.Setenv("RETRO_NAME", "from-env")
	t.Setenv("RETRO_IS_ORGANIZER", "true")

	flags := pflag.NewFlagSet("retro-board", pflag.ContinueOnError)
	flags.String("access-code", "", "")
	flags.String("name", "", "")
	flags.String("server", "", "")
	require.NoError(t, flags.Parse([]string{"--access-code", "ABC123", "--server", "http://flag:1"}))

	conf, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "http://flag:1", conf.ServerURL)

	id := conf.Identity()
	assert.Equal(t, "ABC123", id.AccessCode)
	assert.Equal(t, "from-env", id.Name, "unset flag must not hide the environment")
	assert.True(t, id.IsOrganizer)
}

func TestFromViper_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr bool
	}{
		{"empty server", KeyServerURL, "  ", true},
		{"zero poll interval", KeyPollInterval, "0s", true},
		{"zero timeout falls back", KeyRequestTimeout, "0s", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := NewViper()
			v.Set(test.key, test.value)

			conf, err := FromViper(v)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultRequestTimeout, conf.RequestTimeout)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	logging.Silence()
	const key = "RETRO_DOTENV_PROBE"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-dotenv\n"), 0o600))

	LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "from-dotenv", os.Getenv(key))
}
