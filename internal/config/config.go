package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port               string   `mapstructure:"PORT"`
	Env                string   `mapstructure:"ENV"`
	MongoURI           string   `mapstructure:"MONGO_URI"`
	MongoDB            string   `mapstructure:"MONGO_DB"`
	RedisAddr          string   `mapstructure:"REDIS_ADDR"`
	JWTSecret          string   `mapstructure:"JWT_SECRET"`
	CounsellorUsername string   `mapstructure:"COUNSELLOR_USERNAME"`
	CounsellorPassword string   `mapstructure:"COUNSELLOR_PASSWORD"`
	SentimentModelPath string   `mapstructure:"SENTIMENT_MODEL_PATH"`
	CORSOrigins        []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "mindwell")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("COUNSELLOR_USERNAME", "counsellor")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("MONGO_URI")
	v.BindEnv("MONGO_DB")
	v.BindEnv("REDIS_ADDR")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("COUNSELLOR_USERNAME")
	v.BindEnv("COUNSELLOR_PASSWORD")
	v.BindEnv("SENTIMENT_MODEL_PATH")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Outside
// development, authentication secrets must be set explicitly.
func (c *Config) Validate() error {
	if c.IsDev() {
		return nil
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%q", c.Env)
	}
	if c.CounsellorPassword == "" {
		return fmt.Errorf("COUNSELLOR_PASSWORD is required when ENV=%q", c.Env)
	}
	return nil
}
