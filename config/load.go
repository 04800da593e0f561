package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Load builds the configuration from environment variables, optionally
// overridden by a TOML file when path is not empty.
func Load(path string) (Configs, error) {
	cfg := Configs{
		Env: getEnv("ENV", "local"),
		Database: DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "lifegoal"),
			User:     getEnv("MYSQL_USER", "lifegoal"),
			Password: getEnv("MYSQL_PASSWORD", ""),
		},
		ApiServer: ServerConfigs{
			Host: getEnv("API_HOST", "0.0.0.0"),
			Port: getEnv("API_PORT", "8080"),
		},
		Auth: AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token-secret"),
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
		},
		Redis: RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Game:     DefaultGameConfigs(),
		LogLevel: 1, // INFO
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	return cfg, nil
}

func DefaultGameConfigs() GameConfigs {
	return GameConfigs{
		XPBase:          100,
		LevelExponent:   0.5,
		MaxBackfillDays: 1,
		DecayRate:       0.05,
		DecayGraceDays:  0,
		GoalReward:      500,
		ChallengeReward: 1000,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
