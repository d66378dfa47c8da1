package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "gildedrose.sqlite3" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.ImageMaxDimension != 1024 {
		t.Errorf("expected default image dimension 1024, got %d", cfg.ImageMaxDimension)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GILDEDROSE_DB", "/tmp/rose.db")
	t.Setenv("GILDEDROSE_ADMIN", "Allison")
	t.Setenv("GILDEDROSE_IMAGE_MAX_DIM", "512")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/rose.db" || cfg.AdminUser != "Allison" || cfg.ImageMaxDimension != 512 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("GILDEDROSE_IMAGE_MAX_DIM", "big")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric dimension")
	}

	t.Setenv("GILDEDROSE_IMAGE_MAX_DIM", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for zero dimension")
	}
}
