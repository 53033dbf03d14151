package config_test

import (
	"os"
	"testing"

	"github.com/km-arc/go-container/framework/config"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	t.Setenv(key, val) // automatically restored after test
}

// unsetEnv removes key for the duration of the test so a .env file can set it.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("testdata/empty.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "go-container"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "text"},
		{"Container.Manifest", cfg.Container.Manifest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.Container.API {
		t.Error("expected Container.API to default to true")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	setEnv(t, "APP_NAME", "MyApp")
	setEnv(t, "APP_ENV", "production")
	setEnv(t, "APP_PORT", "9000")
	setEnv(t, "LOG_FORMAT", "json")

	cfg := config.Load("testdata/empty.env")

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format: got %q want %q", cfg.Log.Format, "json")
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	for _, key := range []string{"APP_NAME", "LOG_LEVEL", "CONTAINER_MANIFEST", "CONTAINER_API"} {
		unsetEnv(t, key)
	}

	cfg := config.Load("testdata/container.env")

	if cfg.App.Name != "RegistryApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "RegistryApp")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "debug")
	}
	if cfg.Container.Manifest != "testdata/container.yaml" {
		t.Errorf("Container.Manifest: got %q", cfg.Container.Manifest)
	}
	if cfg.Container.API {
		t.Error("expected Container.API to be false")
	}
}

func TestLoad_ProcessEnvWinsOverDotEnv(t *testing.T) {
	unsetEnv(t, "LOG_LEVEL")
	unsetEnv(t, "CONTAINER_MANIFEST")
	unsetEnv(t, "CONTAINER_API")
	setEnv(t, "APP_NAME", "FromProcess")

	cfg := config.Load("testdata/container.env")
	if cfg.App.Name != "FromProcess" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "FromProcess")
	}
}

func TestLoad_MissingFileIsNotFatal(t *testing.T) {
	cfg := config.Load("testdata/does-not-exist.env")
	if cfg == nil {
		t.Fatal("expected a config")
	}
}

func TestLoad_AppDebugFalse(t *testing.T) {
	setEnv(t, "APP_DEBUG", "false")
	cfg := config.Load("testdata/empty.env")
	if cfg.App.Debug {
		t.Error("expected App.Debug to be false")
	}
}

// ── Get / GetInt / GetBool ───────────────────────────────────────────────────

func TestGet_ReturnsValue(t *testing.T) {
	setEnv(t, "CUSTOM_KEY", "hello")
	if got := config.Get("CUSTOM_KEY", "default"); got != "hello" {
		t.Errorf("got %q want %q", got, "hello")
	}
}

func TestGet_ReturnsFallback(t *testing.T) {
	unsetEnv(t, "MISSING_KEY")
	if got := config.Get("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q want %q", got, "fallback")
	}
}

func TestGetInt(t *testing.T) {
	setEnv(t, "SOME_INT", "42")
	if got := config.GetInt("SOME_INT", 0); got != 42 {
		t.Errorf("got %d want %d", got, 42)
	}
	setEnv(t, "SOME_INT", "notanint")
	if got := config.GetInt("SOME_INT", 99); got != 99 {
		t.Errorf("got %d want %d", got, 99)
	}
}

func TestGetBool(t *testing.T) {
	for _, val := range []string{"true", "1", "True", "TRUE"} {
		setEnv(t, "BOOL_KEY", val)
		if !config.GetBool("BOOL_KEY", false) {
			t.Errorf("expected true for %q", val)
		}
	}
	setEnv(t, "BOOL_KEY", "notabool")
	if !config.GetBool("BOOL_KEY", true) {
		t.Error("expected fallback true")
	}
}
