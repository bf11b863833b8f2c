package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	DB struct {
		Host string `yaml:"host"`
		User string `yaml:"user"`
		Pass string `yaml:"pass"`
		Name string `yaml:"name"`
	} `yaml:"db"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
}

func Load(env string) (*Config, error) {
	if env == "" {
		env = "local"
	}

	configPath := filepath.Join("config", "envs", env+".yaml")

	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	// Override with Environment Variables (Docker Support)
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if pass := os.Getenv("DB_PASS"); pass != "" {
		cfg.DB.Pass = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}
	if secret := os.Getenv("ACCESS_TOKEN_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	log.Printf("Loaded configuration for env: %s", env)
	return &cfg, nil
}
