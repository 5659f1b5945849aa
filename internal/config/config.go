package config

import (
	"errors"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPPort          int      `env:"HTTP_PORT" env-default:"5000"`
	MongoURI          string   `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	MongoDatabase     string   `env:"MONGO_DB" env-default:"scholarHubDB"`
	AccessTokenSecret string   `env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	StripeSecretKey   string   `env:"STRIPE_SECRET_KEY" env-required:"true"`
	AllowedOrigins    []string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:5174"`
}

func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig("./config/.env", &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return &cfg, nil
}
