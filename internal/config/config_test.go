package config_test

import (
	"os"
	"path"
	"testing"

	"github.com/robgonnella/noip-sensor/internal/config"
	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
name: NoIP
refreshRate: 3600
logging: debug
api:
  listen: 127.0.0.1:8581
  pprof: true
devices:
  - hostname: home.ddns.net
    username: user@example.com
    password: ${NOIP_TEST_PASSWORD}
  - hostname: old.ddns.net
    delete: true
`

func TestConfig(t *testing.T) {
	t.Run("loads yaml config and expands env secrets", func(st *testing.T) {
		st.Setenv("NOIP_TEST_PASSWORD", "hunter2")

		confPath := path.Join(st.TempDir(), "noip-sensor.yml")

		require.NoError(st, os.WriteFile(confPath, []byte(testYAML), 0644))

		conf, err := config.New(confPath)

		assert.NoError(st, err)
		assert.Equal(st, "NoIP", conf.Name)
		assert.Equal(st, 3600, conf.RefreshRate)
		assert.Equal(st, logger.LevelDebug, conf.Logging)
		assert.Equal(st, "127.0.0.1:8581", conf.API.Listen)
		assert.True(st, conf.API.Pprof)
		assert.Equal(st, 2, len(conf.Devices))
		assert.Equal(st, "home.ddns.net", conf.Devices[0].Hostname)
		assert.Equal(st, "user@example.com", conf.Devices[0].Username)
		assert.Equal(st, "hunter2", conf.Devices[0].Password)
		assert.True(st, conf.Devices[1].Delete)
		assert.False(st, conf.HasLegacyKeys())
	})

	t.Run("keeps literal dollar signs in secrets", func(st *testing.T) {
		st.Setenv("NOIP_TEST_USER", "user@example.com")

		confPath := path.Join(st.TempDir(), "noip-sensor.yml")

		content := `
devices:
  - hostname: home.ddns.net
    username: ${NOIP_TEST_USER}
    password: 'pa$$w0rd$ecret'
  - hostname: work.ddns.net
    username: user@example.com
    password: '${NOT_A_REF'
`

		require.NoError(st, os.WriteFile(confPath, []byte(content), 0644))

		conf, err := config.New(confPath)

		require.NoError(st, err)
		assert.Equal(st, "user@example.com", conf.Devices[0].Username)
		assert.Equal(st, "pa$$w0rd$ecret", conf.Devices[0].Password)
		assert.Equal(st, "${NOT_A_REF", conf.Devices[1].Password)
	})

	t.Run("returns error for missing file", func(st *testing.T) {
		_, err := config.New(path.Join(st.TempDir(), "nope.yml"))

		assert.Error(st, err)
	})

	t.Run("returns error for malformed yaml", func(st *testing.T) {
		confPath := path.Join(st.TempDir(), "bad.yml")

		require.NoError(st, os.WriteFile(confPath, []byte("devices: [::"), 0644))

		_, err := config.New(confPath)

		assert.Error(st, err)
	})

	t.Run("detects legacy keys", func(st *testing.T) {
		conf := config.Default()
		conf.Hostname = "home.ddns.net"

		assert.True(st, conf.HasLegacyKeys())
	})

	t.Run("default config", func(st *testing.T) {
		conf := config.Default()

		assert.Equal(st, config.DefaultRefreshRate, conf.RefreshRate)
		assert.Equal(st, logger.LevelStandard, conf.Logging)
		assert.Empty(st, conf.Devices)
	})
}
