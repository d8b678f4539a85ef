package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_WritesToFile(t *testing.T) {
	for _, env := range []string{"production", "local"} {
		t.Run(env, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "netprep.log")

			l, err := New(env, path)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			l.Info("bank loaded", zap.Int("questions", 50))
			_ = l.Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			if !strings.Contains(string(data), "bank loaded") {
				t.Errorf("log file missing message: %q", data)
			}
		})
	}
}

func TestNop(t *testing.T) {
	Nop().Info("discarded")
}
