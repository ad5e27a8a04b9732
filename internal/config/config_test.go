package config_test

import (
	"os"
	"path"
	"testing"

	"github.com/efuentes/discover/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("provides defaults", func(st *testing.T) {
		conf, err := config.Default()

		assert.NoError(st, err)

		assert.Equal(st, 10, conf.Discovery.Concurrency)
		assert.Equal(st, "probe", conf.Discovery.Scanner)
		assert.Equal(st, "public", conf.Discovery.SNMP.Community)
		assert.Equal(st, 22, conf.Discovery.SSH.Port)
		assert.Equal(st, 1, conf.Discovery.SSH.Retry.Attempts)
		assert.Equal(st, 2, conf.Discovery.Timeouts.Ping)
		assert.Equal(st, 3, conf.Discovery.Timeouts.SSH)
		assert.Equal(st, "admin", conf.Discovery.Notify.Recipient)
		assert.Equal(st, 587, conf.Discovery.Notify.SMTP.Port)
	})

	t.Run("merges user config over defaults", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "discover.yml")

		userConf := `discovery:
  targets:
    - 192.168.1.0/24
  concurrency: 3
  snmp:
    community: private
  ssh:
    user: scanner
`

		assert.NoError(st, os.WriteFile(confPath, []byte(userConf), 0644))

		conf, err := config.New(confPath)

		assert.NoError(st, err)

		// user provided values win
		assert.Equal(st, []string{"192.168.1.0/24"}, conf.Discovery.Targets)
		assert.Equal(st, 3, conf.Discovery.Concurrency)
		assert.Equal(st, "private", conf.Discovery.SNMP.Community)
		assert.Equal(st, "scanner", conf.Discovery.SSH.User)

		// unset fields fall back to defaults
		assert.Equal(st, "probe", conf.Discovery.Scanner)
		assert.Equal(st, 2, conf.Discovery.Timeouts.Port)
		assert.Equal(st, "admin", conf.Discovery.Notify.Recipient)
	})

	t.Run("returns error for missing config file", func(st *testing.T) {
		_, err := config.New(path.Join(st.TempDir(), "missing.yml"))

		assert.Error(st, err)
	})

	t.Run("writes config readable by New", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "discover.yml")

		viper.Set("config-file", confPath)

		conf, err := config.Default()

		assert.NoError(st, err)

		conf.Discovery.Concurrency = 5
		conf.Discovery.SNMP.Community = "private"

		assert.NoError(st, config.Write(*conf))

		loaded, err := config.New(confPath)

		assert.NoError(st, err)
		assert.Equal(st, 5, loaded.Discovery.Concurrency)
		assert.Equal(st, "private", loaded.Discovery.SNMP.Community)
	})
}
