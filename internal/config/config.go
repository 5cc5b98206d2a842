package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
}

type BridgeCfg struct {
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	Dir         string
	File        string
	AutoMigrate bool
}

type Config struct {
	App      AppCfg
	Bridge   BridgeCfg
	Log      LogCfg
	Database DBCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("STUDIODESK") // e.g. STUDIODESK_BRIDGE_PORT -> bridge.port

	// Defaults apply whether or not a config file exists.
	setDefaults(base)

	// Read the file (if any), expanding ${ENV} references once before parsing.
	if err := base.ReadInConfig(); err == nil {
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("STUDIODESK")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No file is also fine, env + defaults only.
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "studiodesk")
	v.SetDefault("app.env", "release")
	// loopback only: the bridge serves the local UI process, nothing else
	v.SetDefault("bridge.host", "127.0.0.1")
	v.SetDefault("bridge.port", 8473)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.file", "studio.db")
	v.SetDefault("database.autoMigrate", true)
}

// DatabasePath resolves the store file location. An empty database.dir falls
// back to an application directory under the user config dir, created on
// first run.
func (c *Config) DatabasePath() (string, error) {
	dir := c.Database.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, c.App.Name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Database.File), nil
}
