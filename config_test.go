package chatlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaultConfig_Singleton(t *testing.T) {
	if DefaultConfig() != DefaultConfig() {
		t.Error("DefaultConfig() should return the same instance")
	}
	c := DefaultConfig().Clone()
	c.Styles.Heading1 = "changed"
	if DefaultConfig().Styles.Heading1 == "changed" {
		t.Error("Clone() should not share Styles")
	}
}

func TestLoadConfig(t *testing.T) {
	src := `
link_color: "#123456"
timezone: Europe/Berlin
styles:
  heading1: "font-size: 2rem;"
`
	cfg, err := LoadConfig(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	want := DefaultConfig().Clone()
	want.LinkColor = "#123456"
	want.Timezone = "Europe/Berlin"
	want.Styles.Heading1 = "font-size: 2rem;"
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreFields(RenderConfig{}, "Now")); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg, cmpopts.IgnoreFields(RenderConfig{}, "Now")); diff != "" {
		t.Errorf("LoadConfig(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("styles: null"))
	if err != nil || cfg.Styles == nil {
		t.Errorf("LoadConfig(styles: null) = %+v, %v, want default styles", cfg, err)
	}
	if _, err := LoadConfig(strings.NewReader("link_colour: red")); err == nil {
		t.Error("LoadConfig() should reject unknown keys")
	}
	if _, err := LoadConfig(strings.NewReader("styles: [1, 2]")); err == nil {
		t.Error("LoadConfig() should reject wrong types")
	}
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfigFile() should fail for a missing file")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatlog.yaml")
	if err := os.WriteFile(path, []byte("emoji_cdn: https://cdn.example/emojis\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	if cfg.EmojiCDN != "https://cdn.example/emojis" {
		t.Errorf("EmojiCDN = %q", cfg.EmojiCDN)
	}
	if cfg.LinkColor != DefaultConfig().LinkColor {
		t.Errorf("LinkColor = %q, want default", cfg.LinkColor)
	}
}
