package config

import "github.com/spf13/viper"

// Config holds the environment-driven settings. The store runs in memory
// with seeded demo data unless DATABASE_URL points at Postgres; REDIS_ADDR
// enables the analytics cache.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
}

// Load reads configuration from the environment.
func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("JWT_SECRET", "")

	return Config{
		Port:        viper.GetString("PORT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		RedisAddr:   viper.GetString("REDIS_ADDR"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
	}
}
