package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Public holds settings safe to ship in version control.
type Public struct {
	Port          int      `yaml:"port"`
	JwtTTLMinutes int      `yaml:"jwt_ttl_minutes"`
	LogLevel      string   `yaml:"log_level"`
	LogJSON       bool     `yaml:"log_json"`
	PgHost        string   `yaml:"pg_host"`
	PgPort        int      `yaml:"pg_port"`
	PgDbname      string   `yaml:"pg_dbname"`
	CORSHosts     []string `yaml:"cors_hosts"`
}

// Private holds secrets, loaded from a separate file kept out of version control.
type Private struct {
	JwtKey     string `yaml:"jwt_key"`
	PgUser     string `yaml:"pg_user"`
	PgPassword string `yaml:"pg_password"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return time.Duration(c.Public.JwtTTLMinutes) * time.Minute
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}
	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Panics on any failure; the service cannot run half-configured.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
