package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("Port=%q, want 8000", cfg.Port)
	}
	if cfg.DebugMode {
		t.Error("DebugMode should default to false")
	}
	if cfg.DebugDefaultScore != 3 {
		t.Errorf("DebugDefaultScore=%d, want 3", cfg.DebugDefaultScore)
	}
	if cfg.LangflowTimeout != 120*time.Second {
		t.Errorf("LangflowTimeout=%v, want 120s", cfg.LangflowTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DEBUG_MODE", "true")
	t.Setenv("DEBUG_DEFAULT_SCORE", "5")
	t.Setenv("LANGFLOW_TIMEOUT_SECONDS", "30")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	if cfg.Port != "9001" {
		t.Errorf("Port=%q, want 9001", cfg.Port)
	}
	if !cfg.DebugMode {
		t.Error("DebugMode should be true")
	}
	if cfg.DebugDefaultScore != 5 {
		t.Errorf("DebugDefaultScore=%d, want 5", cfg.DebugDefaultScore)
	}
	if cfg.LangflowTimeout != 30*time.Second {
		t.Errorf("LangflowTimeout=%v, want 30s", cfg.LangflowTimeout)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr=%q, want localhost:6379", cfg.RedisAddr)
	}
}

func TestLoadClampsDebugScore(t *testing.T) {
	cases := []struct {
		env  string
		want int
	}{
		{"0", 1},
		{"9", 5},
		{"not-a-number", 3},
	}
	for _, c := range cases {
		t.Setenv("DEBUG_DEFAULT_SCORE", c.env)
		if got := Load().DebugDefaultScore; got != c.want {
			t.Errorf("DEBUG_DEFAULT_SCORE=%q: got %d, want %d", c.env, got, c.want)
		}
	}
}
