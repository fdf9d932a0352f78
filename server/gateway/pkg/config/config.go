package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	RPC    RPCConfig    `mapstructure:"rpc"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`
	AllowOrigin string `mapstructure:"allow_origin"`
}

type RPCConfig struct {
	GameServiceAddr string        `mapstructure:"game_service_addr"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// JWTConfig enables bearer auth when Secret is set.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

var AppConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allow_origin", "*")
	v.SetDefault("rpc.game_service_addr", "localhost:50053")
	v.SetDefault("rpc.timeout", "5s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("log.level", "info")
}

// Load reads path (or ./config.yaml when path is empty). GATEWAY_* env vars
// override file values.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func InitConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}
	AppConfig = cfg
}
