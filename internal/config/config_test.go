package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")
	os.Unsetenv("MONGO_URI")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("unexpected default mongo uri: %s", cfg.MongoURI)
	}
	if cfg.MongoDB != "mindwell" {
		t.Errorf("unexpected default mongo db: %s", cfg.MongoDB)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected default redis addr: %s", cfg.RedisAddr)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("PORT", "9100")
	os.Setenv("MONGO_DB", "mindwell_test")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("MONGO_DB")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9100" {
		t.Errorf("expected port 9100, got %s", cfg.Port)
	}
	if cfg.MongoDB != "mindwell_test" {
		t.Errorf("expected mindwell_test, got %s", cfg.MongoDB)
	}
}

func TestLoad_ProductionRequiresSecrets(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("COUNSELLOR_PASSWORD")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET missing in production")
	}

	os.Setenv("JWT_SECRET", "secret")
	defer os.Unsetenv("JWT_SECRET")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when COUNSELLOR_PASSWORD missing in production")
	}

	os.Setenv("COUNSELLOR_PASSWORD", "pw")
	defer os.Unsetenv("COUNSELLOR_PASSWORD")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IsDev() {
		t.Error("expected production mode")
	}
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	os.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	defer os.Unsetenv("CORS_ORIGINS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[0] != "https://a.example" {
		t.Errorf("unexpected first origin: %s", cfg.CORSOrigins[0])
	}
}
