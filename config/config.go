package config

import (
	"encoding/hex"
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	JWT        JWT
	Crypto     Crypto
	Channel    Channel
	Upload     Upload
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

type JWT struct {
	Secret    string
	ExpiredIn int // seconds
}

// Crypto carries the symmetric message key. The key is hex-encoded in the
// config source and must decode to exactly 32 bytes (AES-256).
type Crypto struct {
	MessageKeyHex string
}

type Channel struct {
	MaxPerUser       int
	NameMaxLen       int
	MessagePageSize  int
	RetentionDays    int
	MaxMessageLength int
}

type Upload struct {
	Dir             string
	MaxFileSize     int64
	MaxFilesPerMsg  int
	AllowedMimeList []string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	return &c, nil
}

// MessageKey decodes the configured hex key. Never log the result.
func (c *Config) MessageKey() ([]byte, error) {
	key, err := hex.DecodeString(c.Crypto.MessageKeyHex)
	if err != nil {
		return nil, errors.New("message key is not valid hex")
	}
	if len(key) != 32 {
		return nil, errors.New("message key must be 32 bytes")
	}
	return key, nil
}
