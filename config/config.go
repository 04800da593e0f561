package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Redis     RedisConfigs    `toml:"redis"`
	Game      GameConfigs     `toml:"game"`
	LogLevel  int             `toml:"log_level"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

// GameConfigs holds every tunable progression constant. The engines receive
// this struct at construction so tests can run several configurations side
// by side.
type GameConfigs struct {
	XPBase          int     `toml:"xp_base"`
	LevelExponent   float64 `toml:"level_exponent"`
	MaxBackfillDays int     `toml:"max_backfill_days"`

	DecayRate       float64 `toml:"decay_rate"`
	DecayGraceDays  int     `toml:"decay_grace_days"`
	GoalReward      int     `toml:"goal_reward"`
	ChallengeReward int     `toml:"challenge_reward"`
}
