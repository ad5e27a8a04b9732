package config

import (
	"os"
	"path"

	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// RetryConfig represents the retry policy applied to ssh probes.
// Delays are in seconds.
type RetryConfig struct {
	Attempts     int `yaml:"attempts"`
	InitialDelay int `yaml:"initial-delay"`
	Interval     int `yaml:"interval"`
}

// SSHConfig represents the config needed to ssh to devices
type SSHConfig struct {
	User     string      `yaml:"user"`
	Identity string      `yaml:"identity"`
	Password string      `yaml:"password"`
	Port     int         `yaml:"port"`
	Retry    RetryConfig `yaml:"retry"`
}

// SNMPConfig represents the config needed to query snmp agents
type SNMPConfig struct {
	Community string `yaml:"community"`
	Disabled  bool   `yaml:"disabled"`
}

// MySQLConfig represents the process-wide default mysql credentials
type MySQLConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// SMTPConfig represents the config needed to send email notifications
type SMTPConfig struct {
	Server   string `yaml:"server"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// NotifyConfig represents our notification configuration
type NotifyConfig struct {
	Recipient string     `yaml:"recipient"`
	Email     bool       `yaml:"email"`
	SMTP      SMTPConfig `yaml:"smtp"`
}

// TimeoutConfig represents per probe timeouts in seconds
type TimeoutConfig struct {
	Ping  int `yaml:"ping"`
	Port  int `yaml:"port"`
	SSH   int `yaml:"ssh"`
	SNMP  int `yaml:"snmp"`
	MySQL int `yaml:"mysql"`
}

// Discovery represents our network discovery service configuration
type Discovery struct {
	Targets     []string      `yaml:"targets"`
	Concurrency int           `yaml:"concurrency"`
	Scanner     string        `yaml:"scanner"`
	SSH         SSHConfig     `yaml:"ssh"`
	SNMP        SNMPConfig    `yaml:"snmp"`
	MySQL       MySQLConfig   `yaml:"mysql"`
	Timeouts    TimeoutConfig `yaml:"timeouts"`
	Notify      NotifyConfig  `yaml:"notify"`
}

// Config represents the data structure of our user provided yaml configuration
type Config struct {
	Discovery Discovery `yaml:"discovery"`
}

// New returns unmarshaled data structure of user provided config with any
// unset fields filled in from defaults
func New(confPath string) (*Config, error) {
	var config Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}

	defaults, err := Default()

	if err != nil {
		return nil, err
	}

	if err := mergo.Merge(&config, *defaults); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns a configuration populated entirely from defaults
func Default() (*Config, error) {
	user := os.Getenv("USER")
	home, err := os.UserHomeDir()

	if err != nil {
		return nil, err
	}

	identity := path.Join(home, ".ssh/id_rsa")

	return &Config{
		Discovery: Discovery{
			Targets:     []string{},
			Concurrency: 10,
			Scanner:     "probe",
			SSH: SSHConfig{
				User:     user,
				Identity: identity,
				Port:     22,
				Retry: RetryConfig{
					Attempts: 1,
				},
			},
			SNMP: SNMPConfig{
				Community: "public",
			},
			Timeouts: TimeoutConfig{
				Ping:  2,
				Port:  2,
				SSH:   3,
				SNMP:  2,
				MySQL: 3,
			},
			Notify: NotifyConfig{
				Recipient: "admin",
				SMTP: SMTPConfig{
					Port: 587,
				},
			},
		},
	}, nil
}

// Write persists a configuration as yaml to the viper configured path
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
