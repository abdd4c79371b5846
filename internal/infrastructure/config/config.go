package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Config reúne toda a configuração do processo. Nenhum outro pacote lê
// variáveis de ambiente; tudo entra pelos construtores a partir daqui.
type Config struct {
	DatabaseURL  string
	Port         string
	JWTSecret    string
	TokenTTL     time.Duration
	AllowOrigins string

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Load monta a configuração a partir do ambiente, aplicando os defaults de
// desenvolvimento. JWT_SECRET ausente vira um segredo aleatório por processo,
// com aviso no log: tokens deixam de valer a cada restart.
func Load() *Config {
	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Port:            envOr("PORT", "8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        24 * time.Hour,
		AllowOrigins:    envOr("ALLOW_ORIGINS", "http://localhost:3000"),
		MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 10),
		MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 100),
		ConnMaxLifetime: time.Hour,
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = uuid.NewString()
		log.Println("⚠️ JWT_SECRET not set, using a random per-process secret")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
