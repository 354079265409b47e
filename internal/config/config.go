package config

import (
	"os"
	"regexp"

	"github.com/robgonnella/noip-sensor/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// MinRefreshRate the lowest refresh rate in seconds No-IP tolerates
// before treating a client as abusive
const MinRefreshRate = 1800

// DefaultRefreshRate used when neither the platform nor device sets one
const DefaultRefreshRate = MinRefreshRate

// Device represents the configuration for a single No-IP hostname
type Device struct {
	Hostname    string       `yaml:"hostname" json:"hostname" validate:"required"`
	Username    string       `yaml:"username,omitempty" json:"username" validate:"required,email"`
	Password    string       `yaml:"password,omitempty" json:"-" validate:"required"`
	Firmware    string       `yaml:"firmware,omitempty" json:"firmware,omitempty"`
	RefreshRate int          `yaml:"refreshRate,omitempty" json:"refreshRate" validate:"min=1800"`
	Logging     logger.Level `yaml:"logging,omitempty" json:"logging" validate:"omitempty,oneof=standard debug none"`
	Delete      bool         `yaml:"delete,omitempty" json:"delete,omitempty"`
}

// API represents the optional status / metrics http server
type API struct {
	Listen string `yaml:"listen,omitempty"`
	Pprof  bool   `yaml:"pprof,omitempty"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Name        string       `yaml:"name,omitempty"`
	Devices     []Device     `yaml:"devices"`
	RefreshRate int          `yaml:"refreshRate,omitempty"`
	Logging     logger.Level `yaml:"logging,omitempty"`
	API         API          `yaml:"api,omitempty"`

	// legacy single device keys, no longer used
	Hostname string `yaml:"hostname,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// matches ${NAME} references only, any other "$" is literal
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// replaces ${NAME} references with the environment value
func expandEnv(value string) string {
	return envRef.ReplaceAllStringFunc(value, func(ref string) string {
		return os.Getenv(envRef.FindStringSubmatch(ref)[1])
	})
}

// New returns umarshaled data structure of user provided config
func New(confPath string) (*Config, error) {
	var config Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}

	for i := range config.Devices {
		config.Devices[i].Username = expandEnv(config.Devices[i].Username)
		config.Devices[i].Password = expandEnv(config.Devices[i].Password)
	}

	return &config, nil
}

// Default returns a config with no devices and default platform options
func Default() *Config {
	return &Config{
		Name:        "NoIP",
		Devices:     []Device{},
		RefreshRate: DefaultRefreshRate,
		Logging:     logger.LevelStandard,
	}
}

// HasLegacyKeys reports whether the old single device keys are still present
func (c Config) HasLegacyKeys() bool {
	return c.Hostname != "" || c.Username != "" || c.Password != ""
}

// Write writes conf to the config file registered with viper
func Write(conf Config) error {
	configFile := viper.Get("config-file").(string)

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}
