package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string
	// DatabaseURL selects the PostgreSQL store; empty keeps sessions in memory.
	DatabaseURL   string
	DBMaxConns    int32
	MaxInputRunes int
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    int32(getEnvInt("DB_MAX_CONNS", 5)),
		MaxInputRunes: getEnvInt("MAX_INPUT_RUNES", 1<<20),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
