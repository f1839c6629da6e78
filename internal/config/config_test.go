package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tradej/go-augeas"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `
root = "/tmp/sandbox"
loadpath = "/usr/local/lenses"
flags = ["backup", "span"]

[[transform]]
lens = "Hosts.lns"
incl = ["/etc/hosts"]

[[transform]]
lens = "Json.lns"
name = "state"
incl = ["/var/lib/app/*.json"]
excl = ["*.bak"]
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != "/tmp/sandbox" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if cfg.LoadPath != "/usr/local/lenses" {
		t.Errorf("LoadPath = %q", cfg.LoadPath)
	}
	if !reflect.DeepEqual(cfg.Flags, []string{"backup", "span"}) {
		t.Errorf("Flags = %v", cfg.Flags)
	}
	if len(cfg.Transforms) != 2 {
		t.Fatalf("got %d transforms, want 2", len(cfg.Transforms))
	}
	if cfg.Transforms[1].Name != "state" || cfg.Transforms[1].Excl[0] != "*.bak" {
		t.Errorf("second transform = %+v", cfg.Transforms[1])
	}
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	p := writeConfig(t, `flags = ["warp"]`)
	if _, err := Load(p); err == nil || !strings.Contains(err.Error(), "unknown flag") {
		t.Errorf("Load = %v, want unknown flag error", err)
	}
}

func TestLoadRejectsBareTransform(t *testing.T) {
	p := writeConfig(t, `
[[transform]]
lens = "Hosts.lns"
`)
	if _, err := Load(p); err == nil {
		t.Error("Load accepted a transform without incl patterns")
	}
}

func TestParseFlagNames(t *testing.T) {
	tests := []struct {
		names   []string
		want    augeas.Flag
		wantErr bool
	}{
		{nil, augeas.None, false},
		{[]string{"backup"}, augeas.SaveBackup, false},
		{[]string{"newfile", "span"}, augeas.SaveNewFile | augeas.EnableSpan, false},
		{[]string{"noload", "noautoload", "nostdinc"}, augeas.NoLoad | augeas.NoModlAutoload | augeas.NoStdinc, false},
		{[]string{"typecheck", "noop"}, augeas.TypeCheck | augeas.SaveNoop, false},
		{[]string{"bogus"}, augeas.None, true},
	}
	for _, tt := range tests {
		got, err := ParseFlagNames(tt.names)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFlagNames(%v) error = %v", tt.names, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlagNames(%v) = %#x, want %#x", tt.names, uint(got), uint(tt.want))
		}
	}
}

func TestLoadDefaultMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if !reflect.DeepEqual(cfg, &Config{}) {
		t.Errorf("LoadDefault = %+v, want empty config", cfg)
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom")
	want := filepath.Join("/custom", "augedit", "config.toml")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}
