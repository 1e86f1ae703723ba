package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración necesaria para correr la aplicación.
type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int32
}

// Load lee variables de entorno y valida lo mínimo indispensable.
// Un .env local es opcional; si no existe, la config viene del ambiente directo.
func Load() (Config, error) {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	// Normalizamos por si alguien manda ":8080"
	port = strings.TrimPrefix(port, ":")

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return Config{}, fmt.Errorf("missing required env var: DATABASE_URL")
	}

	var maxConns int32
	if value := strings.TrimSpace(os.Getenv("DB_MAX_CONNS")); value != "" {
		number, err := strconv.ParseInt(value, 10, 32)
		if err != nil || number < 1 {
			return Config{}, fmt.Errorf("invalid DB_MAX_CONNS: %q", value)
		}
		maxConns = int32(number)
	}

	return Config{
		Port:        port,
		DatabaseURL: databaseURL,
		DBMaxConns:  maxConns,
	}, nil
}
