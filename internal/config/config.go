package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Telegram TelegramConfig
	Game     GameConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis-specific configuration. Redis backs the
// per-account lock when LockBackend is "redis"; otherwise an in-process
// lock is used.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	LockBackend string // "memory" or "redis"
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// TelegramConfig holds the admin notification bot configuration. Leaving
// either field empty disables notifications entirely.
type TelegramConfig struct {
	BotToken    string
	AdminChatID string
}

// GameConfig holds tunables for the game flows
type GameConfig struct {
	DailyFreeSpins     int
	SpinCost           float64
	MinWithdrawBalance float64
	SaleUnlockMinutes  int
	DeliveryFee        float64
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "earning-app")
	viper.SetDefault("Redis.Addr", "localhost:6379")
	viper.SetDefault("Redis.DB", 0)
	viper.SetDefault("Redis.LockBackend", "memory")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("Game.DailyFreeSpins", 3)
	viper.SetDefault("Game.SpinCost", 20)
	viper.SetDefault("Game.MinWithdrawBalance", 1000)
	viper.SetDefault("Game.SaleUnlockMinutes", 120)
	viper.SetDefault("Game.DeliveryFee", 150)
}
