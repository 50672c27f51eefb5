// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/fees"
	"github.com/iwvelando/lease-fees/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for lease-fees.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Store    StoreConfig    `yaml:"store,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// DefaultsConfig holds the values used when a calculation omits them.
type DefaultsConfig struct {
	Term                 int     `yaml:"term,omitempty"`                 // weeks
	LettingFeeMultiplier float64 `yaml:"lettingFeeMultiplier,omitempty"` // weeks of rent incl. GST
}

// StoreConfig selects and configures the form store.
type StoreConfig struct {
	Driver        string `yaml:"driver,omitempty"` // memory, sqlite, redis
	Path          string `yaml:"path,omitempty"`   // sqlite database file
	RedisAddr     string `yaml:"redisAddr,omitempty"`
	RedisPassword string `yaml:"redisPassword,omitempty"`
	RedisDB       int    `yaml:"redisDB,omitempty"`
	KeyPrefix     string `yaml:"keyPrefix,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("defaults.term", constants.DefaultTerm)
	v.SetDefault("defaults.lettingFeeMultiplier", constants.DefaultLettingFeeMultiplier)
	v.SetDefault("store.driver", constants.StoreDriverMemory)
	v.SetDefault("store.path", constants.DefaultStorePath)
	v.SetDefault("store.redisAddr", constants.DefaultRedisAddr)
	v.SetDefault("store.redisPassword", "")
	v.SetDefault("store.redisDB", 0)
	v.SetDefault("store.keyPrefix", constants.DefaultStoreKeyPrefix)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path, or the default path when no such file
// exists, yields the defaults with environment overrides applied.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		case errors.Is(err, fs.ErrNotExist) && configPath == constants.DefaultConfigFile:
			// no config file; defaults apply
		default:
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.normalize()
	return &configuration, nil
}

func (c *Configuration) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	if c.Store.Path == "" && c.Store.Driver == constants.StoreDriverSQLite {
		c.Store.Path = constants.DefaultStorePath
	}
	if c.Store.RedisAddr == "" && c.Store.Driver == constants.StoreDriverRedis {
		c.Store.RedisAddr = constants.DefaultRedisAddr
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = constants.DefaultStoreKeyPrefix
	}
}

func (c *Configuration) validator() *validation.ConfigValidator {
	return &validation.ConfigValidator{
		OutputFormat:      c.Output.Format,
		DefaultTerm:       c.Defaults.Term,
		DefaultMultiplier: c.Defaults.LettingFeeMultiplier,
		StoreDriver:       c.Store.Driver,
		StorePath:         c.Store.Path,
		RedisAddr:         c.Store.RedisAddr,
	}
}

// Validate returns an error describing every invalid setting.
func (c *Configuration) Validate() error {
	return errors.Join(c.validator().ValidateAll()...)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	return c.validator().Warnings()
}

// DefaultTerm returns the term applied when a calculation names none.
func (c *Configuration) DefaultTerm() fees.Term {
	return fees.Term(c.Defaults.Term)
}
