package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	ServerPort string `env:"SERVER_PORT" env-default:"8080"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     uint16 `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"inkwell"`
	DBPassword string `env:"DB_PASSWORD" env-default:"inkwell_dev_password"`
	DBName     string `env:"DB_NAME" env-default:"inkwell"`
	JWTSecret  string `env:"JWT_SECRET" env-default:"dev-secret-change-me"`
	UploadsDir string `env:"UPLOADS_DIR" env-default:"uploads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
