package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/folio/pkg/appearance"
)

// writeConfig writes a config rooted in a temp dir and returns its path.
func writeConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	doc := fmt.Sprintf(`[general]
state_dir = %q

[prefs]
backend = %q

[theme]
palette_dir = %q
`, filepath.Join(dir, "state"), backend, filepath.Join(dir, "palettes"))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(appearance.EnvVar, "dark")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile, contentPath, palette, motion = "", "", "", ""
		verbose = false
		renderWidth = 0
	})
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "folio ") {
		t.Errorf("version output = %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	cfg := writeConfig(t, "memory")
	out, err := execute(t, "--config", cfg, "render", "--width", "72")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Sam Rivera", "Experience", "Projects", "Skills", "Get In Touch"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}

func TestThemeCommandPersists(t *testing.T) {
	cfg := writeConfig(t, "file")

	out, err := execute(t, "--config", cfg, "theme")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "SYSTEM (DARK)" {
		t.Errorf("initial theme = %q, want SYSTEM (DARK)", got)
	}

	if _, err := execute(t, "--config", cfg, "theme", "light"); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "--config", cfg, "theme")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "LIGHT" {
		t.Errorf("theme after set = %q, want LIGHT", got)
	}

	if _, err := execute(t, "--config", cfg, "theme", "sepia"); err == nil {
		t.Error("invalid preference should fail")
	}
}

func TestThemeFollowsAppearanceFile(t *testing.T) {
	cfg := writeConfig(t, "memory")
	t.Setenv(appearance.EnvVar, "")
	state := filepath.Join(filepath.Dir(cfg), "state")
	if err := os.MkdirAll(state, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(state, "appearance"), []byte("light\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfg, "theme")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "SYSTEM (LIGHT)" {
		t.Errorf("theme = %q, want SYSTEM (LIGHT)", got)
	}
}

func TestPalettes(t *testing.T) {
	cfg := writeConfig(t, "memory")
	out, err := execute(t, "--config", cfg, "--palette", "nord", "palettes")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "* nord") || !strings.Contains(out, "  default") {
		t.Errorf("palettes output = %q", out)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfgFile = writeConfig(t, "memory")
	palette, motion, verbose = "dracula", "instant", true
	t.Cleanup(func() {
		cfgFile, palette, motion = "", "", ""
		verbose = false
	})

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme.Palette != "dracula" || cfg.Animation.Preset != "instant" || cfg.General.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Animation.SmoothScroll {
		t.Error("instant preset should disable smooth scroll")
	}
}
