package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type JWTConfig struct {
	Secret      string
	ExpireHours int
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	// 機密設定允許用環境變數覆蓋，例如 TIKO_JWT_SECRET、TIKO_DB_PASSWORD
	viper.SetEnvPrefix("tiko")
	viper.AutomaticEnv()
	_ = viper.BindEnv("jwt.secret", "TIKO_JWT_SECRET")
	_ = viper.BindEnv("db.password", "TIKO_DB_PASSWORD")

	viper.SetDefault("server.address", ":8000")
	viper.SetDefault("jwt.expirehours", 168)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
