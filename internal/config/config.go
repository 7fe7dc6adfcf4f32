package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port              string `yaml:"port"`
	AdminPassword     string `yaml:"admin_password"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
	StoreDriver       string `yaml:"store_driver"` // file | sqlite | redis
	DataDir           string `yaml:"data_dir"`
	DBDSN             string `yaml:"db_dsn"`
	RedisAddr         string `yaml:"redis_addr"`
	BodyLimit         int    `yaml:"body_limit"`
	WriteRateLimit    int    `yaml:"write_rate_limit"`
	TemplatesDir      string `yaml:"templates_dir"`
	StaticDir         string `yaml:"static_dir"`
	LogFile           string `yaml:"log_file"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:           "3000",
		AdminPassword:  "changeme",
		StoreDriver:    "file",
		DataDir:        "./data",
		DBDSN:          "medcatalog.db",
		RedisAddr:      "localhost:6379",
		BodyLimit:      1_000_000,
		WriteRateLimit: 120,
		TemplatesDir:   "./web/templates",
		StaticDir:      "./web/static",
	}
}

func Load() Config {
	cfg := fromEnv(Defaults())
	logResolved(cfg)
	return cfg
}

// LoadFile overlays a YAML file on the defaults; env vars still win.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg = fromEnv(cfg)
	logResolved(cfg)
	return cfg, nil
}

func fromEnv(cfg Config) Config {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		v := os.Getenv(key)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("[config] ignoring %s=%q: not a positive integer", key, v)
			return
		}
		*dst = n
	}

	str("PORT", &cfg.Port)
	str("ADMIN_PASSWORD", &cfg.AdminPassword)
	str("ADMIN_PASSWORD_HASH", &cfg.AdminPasswordHash)
	str("STORE_DRIVER", &cfg.StoreDriver)
	str("DATA_DIR", &cfg.DataDir)
	str("DB_DSN", &cfg.DBDSN)
	str("REDIS_ADDR", &cfg.RedisAddr)
	num("BODY_LIMIT", &cfg.BodyLimit)
	num("WRITE_RATE_LIMIT", &cfg.WriteRateLimit)
	str("TEMPLATES_DIR", &cfg.TemplatesDir)
	str("STATIC_DIR", &cfg.StaticDir)
	str("LOG_FILE", &cfg.LogFile)
	return cfg
}

func logResolved(cfg Config) {
	secret := "default"
	if cfg.AdminPasswordHash != "" {
		secret = "bcrypt"
	} else if cfg.AdminPassword != Defaults().AdminPassword {
		secret = "custom"
	}
	log.Printf("[config] PORT=%s STORE_DRIVER=%s DATA_DIR=%s DB_DSN=%s REDIS_ADDR=%s BODY_LIMIT=%d ADMIN_SECRET=%s LOG_FILE=%s",
		cfg.Port, cfg.StoreDriver, cfg.DataDir, cfg.DBDSN, cfg.RedisAddr, cfg.BodyLimit, secret, cfg.LogFile)
}
