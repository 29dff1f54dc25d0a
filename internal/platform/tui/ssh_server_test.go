package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d", cfg.TickRate)
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
}

func TestNewSSHServerGeneratesHostKey(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	t.Cleanup(func() { srv.Shutdown() })

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not created: %v", err)
	}
}
