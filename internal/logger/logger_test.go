package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]any{"api_key", "sk-123", "purpose", "exam", "input_tokens", 42, "Authorization", "Bearer x"})

	want := []any{"api_key", "[REDACTED]", "purpose", "exam", "input_tokens", 42, "Authorization", "[REDACTED]"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kv[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSanitizeKVsOddLength(t *testing.T) {
	got := sanitizeKVs([]any{"level", "A1", "dangling"})
	if len(got) != 3 || got[2] != "dangling" {
		t.Errorf("got %v, want trailing key preserved", got)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "elan.log")

	l, err := New("prod", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("fetch failed", "module", "grammar", "api_key", "secret-value")
	l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "fetch failed") {
		t.Errorf("log missing message: %s", data)
	}
	if strings.Contains(string(data), "secret-value") {
		t.Errorf("log leaked secret: %s", data)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Warn("ignored", "k", "v")
	l.With("a", 1).Error("ignored")
}
