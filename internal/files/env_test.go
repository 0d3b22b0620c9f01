package files

import (
	"path/filepath"
	"testing"
)

func TestResolveHomeHonorsPushupsHome(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "custom-root")

	t.Setenv("PUSHUPS_HOME", custom)

	got, err := ResolveHome()
	if err != nil {
		t.Fatalf("ResolveHome() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolveHome() = %q, want %q", got, custom)
	}
}

func TestResolveHomeExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PUSHUPS_HOME", "~/pushups-data")

	got, err := ResolveHome()
	if err != nil {
		t.Fatalf("ResolveHome() error = %v", err)
	}

	want := filepath.Join(home, "pushups-data")
	if got != want {
		t.Fatalf("ResolveHome() = %q, want %q", got, want)
	}
}

func TestResolveHomeDefaultsToHomeDotPushups(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PUSHUPS_HOME", "")

	got, err := ResolveHome()
	if err != nil {
		t.Fatalf("ResolveHome() error = %v", err)
	}

	want := filepath.Join(home, DefaultDirName)
	if got != want {
		t.Fatalf("ResolveHome() = %q, want %q", got, want)
	}
}

func TestResolveConfigPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("PUSHUPS_HOME", tmp)

	got, err := ResolveConfigPath()
	if err != nil {
		t.Fatalf("ResolveConfigPath() error = %v", err)
	}
	if want := filepath.Join(tmp, ConfigFileName); got != want {
		t.Fatalf("ResolveConfigPath() = %q, want %q", got, want)
	}
}
