package augeas

import (
	"errors"
	"testing"
)

func TestLensName(t *testing.T) {
	tests := []struct {
		lens string
		want string
	}{
		{"Hosts.lns", "Hosts"},
		{"@Hosts", "Hosts"},
		{"Grub.lns", "Grub"},
		{"Plain", "Plain"},
	}
	for _, tt := range tests {
		if got := lensName(tt.lens); got != tt.want {
			t.Errorf("lensName(%q) = %q, want %q", tt.lens, got, tt.want)
		}
	}
}

func TestAddTransformTreeEntries(t *testing.T) {
	aug, _ := newHandle(t, NoLoad)

	if err := aug.ClearTransforms(); err != nil {
		t.Fatalf("ClearTransforms: %v", err)
	}
	err := aug.AddTransform("Hosts.lns", "", []string{"/etc/hosts", "/etc/hosts.local"}, "*.bak")
	if err != nil {
		t.Fatalf("AddTransform: %v", err)
	}

	checks := []struct {
		path string
		want string
	}{
		{"/augeas/load/Hosts/lens", "Hosts.lns"},
		{"/augeas/load/Hosts/incl[1]", "/etc/hosts"},
		{"/augeas/load/Hosts/incl[2]", "/etc/hosts.local"},
		{"/augeas/load/Hosts/excl[1]", "*.bak"},
	}
	for _, c := range checks {
		v, ok, err := aug.Get(c.path)
		if err != nil || !ok {
			t.Fatalf("Get(%s) = (%v, %v)", c.path, ok, err)
		}
		if v != c.want {
			t.Errorf("Get(%s) = %q, want %q", c.path, v, c.want)
		}
	}
}

func TestAddTransformExplicitName(t *testing.T) {
	aug, _ := newHandle(t, NoLoad)

	if err := aug.AddTransform("Hosts.lns", "extra", []string{"/etc/hosts.extra"}); err != nil {
		t.Fatalf("AddTransform: %v", err)
	}
	v, ok, err := aug.Get("/augeas/load/extra/lens")
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v)", ok, err)
	}
	if v != "Hosts.lns" {
		t.Errorf("lens = %q", v)
	}
}

func TestAddTransformNoIncl(t *testing.T) {
	aug, _ := newHandle(t, NoLoad)

	err := aug.AddTransform("Hosts.lns", "", nil)
	if !errors.Is(err, ErrInvalidArg) {
		t.Errorf("AddTransform without incl: got %v, want ErrInvalidArg", err)
	}
}

func TestClearTransforms(t *testing.T) {
	aug, _ := newHandle(t, NoLoad)

	if err := aug.ClearTransforms(); err != nil {
		t.Fatalf("ClearTransforms: %v", err)
	}
	matches, err := aug.Match("/augeas/load/*")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("transforms remain: %v", matches)
	}
}
