package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	oldCurrency, oldPlain := *currency, *plain
	t.Cleanup(func() { *currency, *plain = oldCurrency, oldPlain })

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte(EnvCurrency+"=EUR\n"+EnvPlain+"=true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvPlain, "")
	// godotenv does not override variables already set, even empty ones.
	os.Unsetenv(EnvCurrency)
	os.Unsetenv(EnvPlain)

	if err := LoadEnv(envFile); err != nil {
		t.Fatalf("LoadEnv() unexpected error: %v", err)
	}
	if *currency != "EUR" {
		t.Errorf("currency = %q, want %q", *currency, "EUR")
	}
	if !*plain {
		t.Error("plain = false, want true")
	}
}

func TestLoadEnv_Missing(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadEnv(missing file) unexpected error: %v", err)
	}
}

func TestLoadEnv_Invalid(t *testing.T) {
	oldVerbose := *Verbose
	t.Cleanup(func() { *Verbose = oldVerbose })
	t.Setenv(EnvVerbose, "maybe")
	if err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err == nil {
		t.Error("LoadEnv() with an invalid boolean succeeded, want an error")
	}
}
