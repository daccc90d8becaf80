package database

import (
	"testing"

	"github.com/orienta-pe/orienta_backend/config"
)

func TestInitializeDatabaseRequiresName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432

	err := InitializeDatabase(cfg)
	if err == nil {
		t.Fatal("expected error when no database name is configured")
	}
}
