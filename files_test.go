package augeas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavesInPlace(t *testing.T) {
	aug, root := newHandle(t, None)
	hosts := filepath.Join(root, "etc", "hosts")
	before, err := os.ReadFile(hosts)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	if err := aug.Set("/files/etc/hosts/1/ipaddr", "127.0.0.2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := aug.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	after, err := os.ReadFile(hosts)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !strings.Contains(string(after), "127.0.0.2\tlocalhost") {
		t.Errorf("saved file missing new value:\n%s", after)
	}
	// Surrounding content is preserved: the comment and the other entry.
	if !strings.Contains(string(after), "# Example hosts file") {
		t.Error("comment lost on save")
	}
	if !strings.Contains(string(after), "192.168.0.1\tgateway\tgw") {
		t.Error("untouched entry rewritten")
	}
	if string(before) == string(after) {
		t.Error("file unchanged after save")
	}
}

func TestSaveOnlyModifiedFiles(t *testing.T) {
	aug, root := newHandle(t, None)
	grub := filepath.Join(root, "etc", "grub.conf")
	info, err := os.Stat(grub)
	if err != nil {
		t.Fatalf("stat fixture: %v", err)
	}

	if err := aug.Set("/files/etc/hosts/1/ipaddr", "127.0.0.2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := aug.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info2, err := os.Stat(grub)
	if err != nil {
		t.Fatalf("stat after save: %v", err)
	}
	if !info2.ModTime().Equal(info.ModTime()) {
		t.Error("unmodified file was rewritten")
	}
}

func TestSaveNewFile(t *testing.T) {
	aug, root := newHandle(t, SaveNewFile)
	hosts := filepath.Join(root, "etc", "hosts")
	before, err := os.ReadFile(hosts)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	if err := aug.Set("/files/etc/hosts/1/ipaddr", "10.9.9.9"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := aug.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	after, err := os.ReadFile(hosts)
	if err != nil {
		t.Fatalf("reading original: %v", err)
	}
	if string(before) != string(after) {
		t.Error("original changed despite SaveNewFile")
	}
	augnew, err := os.ReadFile(hosts + ".augnew")
	if err != nil {
		t.Fatalf("reading .augnew: %v", err)
	}
	if !strings.Contains(string(augnew), "10.9.9.9") {
		t.Errorf(".augnew missing new value:\n%s", augnew)
	}
}

func TestSaveBackup(t *testing.T) {
	aug, root := newHandle(t, SaveBackup)
	hosts := filepath.Join(root, "etc", "hosts")
	before, err := os.ReadFile(hosts)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	if err := aug.Set("/files/etc/hosts/1/ipaddr", "10.8.8.8"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := aug.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	backup, err := os.ReadFile(hosts + ".augsave")
	if err != nil {
		t.Fatalf("reading .augsave: %v", err)
	}
	if string(backup) != string(before) {
		t.Error(".augsave does not preserve the original")
	}
	after, err := os.ReadFile(hosts)
	if err != nil {
		t.Fatalf("reading overwritten file: %v", err)
	}
	if !strings.Contains(string(after), "10.8.8.8") {
		t.Error("original not overwritten despite SaveBackup")
	}
}

func TestSaveNoop(t *testing.T) {
	aug, root := newHandle(t, SaveNoop)
	hosts := filepath.Join(root, "etc", "hosts")
	before, err := os.ReadFile(hosts)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	if err := aug.Set("/files/etc/hosts/1/ipaddr", "10.7.7.7"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := aug.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	after, err := os.ReadFile(hosts)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(before) != string(after) {
		t.Error("file changed despite SaveNoop")
	}
	saved, err := aug.Match("/augeas/events/saved")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(saved) != 1 {
		t.Errorf("got %d saved events, want 1", len(saved))
	}
}

func TestTransformLoadCycle(t *testing.T) {
	aug, _ := newHandle(t, NoLoad)

	// Nothing has been loaded yet.
	matches, err := aug.Match("/files/etc/hosts")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("/files populated despite NoLoad: %v", matches)
	}

	if err := aug.ClearTransforms(); err != nil {
		t.Fatalf("ClearTransforms: %v", err)
	}
	if err := aug.AddTransform("Hosts.lns", "", []string{"/etc/hosts"}); err != nil {
		t.Fatalf("AddTransform: %v", err)
	}
	if err := aug.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	v, ok, err := aug.Get("/files/etc/hosts/1/ipaddr")
	if err != nil || !ok {
		t.Fatalf("Get after load = (%v, %v)", ok, err)
	}
	if v != "127.0.0.1" {
		t.Errorf("ipaddr = %q, want 127.0.0.1", v)
	}
	if m, _ := aug.Match("/files/etc/grub.conf"); len(m) != 0 {
		t.Error("excluded file loaded")
	}

	// Clearing the transforms and reloading empties /files again.
	if err := aug.ClearTransforms(); err != nil {
		t.Fatalf("ClearTransforms: %v", err)
	}
	if err := aug.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	matches, err = aug.Match("/files/etc/hosts")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("/files/etc/hosts still populated: %v", matches)
	}
}

func TestLoadHonorsExcl(t *testing.T) {
	aug, _ := newHandle(t, NoLoad)

	if err := aug.ClearTransforms(); err != nil {
		t.Fatalf("ClearTransforms: %v", err)
	}
	err := aug.AddTransform("Hosts.lns", "", []string{"/etc/*"}, "/etc/grub.conf")
	if err != nil {
		t.Fatalf("AddTransform: %v", err)
	}
	if err := aug.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m, _ := aug.Match("/files/etc/hosts"); len(m) != 1 {
		t.Errorf("included file not loaded: %v", m)
	}
	if m, _ := aug.Match("/files/etc/grub.conf"); len(m) != 0 {
		t.Errorf("excluded file loaded: %v", m)
	}
}
