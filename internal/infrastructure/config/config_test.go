package config

import (
	"context"
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("unexpected env default: %q", cfg.Env)
	}
	if cfg.Mongo.Database != "adoptme" {
		t.Fatalf("unexpected database default: %q", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected redis default: %q", cfg.Redis.Addr)
	}
	if cfg.IsProduction() {
		t.Fatal("development must not report production")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv clears the variable for the test.
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	os.Unsetenv("PORT")
	os.Unsetenv("MONGO_URI")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected error when required variables are missing")
	}
}

func TestIsProduction(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("ENV", "production")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production")
	}
}
