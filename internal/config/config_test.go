package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceLA/pkg/timeline"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Ruler.Theme = "Nord"
	cfg.Ruler.MinorLabels = true
	cfg.Capture.SampleRate = 0

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[ruler]\ntheme = \"Light\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ruler.Theme != "Light" || cfg.Ruler.Height != Default().Ruler.Height {
		t.Fatalf("cfg = %+v", cfg.Ruler)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	cases := map[string]string{
		"syntax":   "[ruler\n",
		"theme":    "[ruler]\ntheme = \"Sepia\"\n",
		"height":   "[ruler]\nheight = 0\n",
		"rate":     "[capture]\nsample_rate = -1.0\n",
		"fontsize": "[ruler]\nflag_font = 0.0\n",
		"typo":     "[ruler]\nminor_lables = true\n",
		"table":    "[rulr]\ntheme = \"Light\"\n",
	}
	for name, data := range cases {
		path := filepath.Join(t.TempDir(), name+".toml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: Load succeeded", name)
		} else if !strings.Contains(err.Error(), path) {
			t.Fatalf("%s: error %q does not name the file", name, err)
		}
	}
}

func TestLoadNamesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[ruler]\nminor_lables = true\n[capture]\nsamples = 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load accepted a misspelled key")
	}
	if !strings.Contains(err.Error(), "ruler.minor_lables") {
		t.Fatalf("error %q does not name the key", err)
	}
}

func TestNewModel(t *testing.T) {
	cfg := Default()
	cfg.Ruler.Theme = "Light"
	cfg.Ruler.MinorLabels = true
	m := cfg.NewModel()

	if m.SampleRate != cfg.Capture.SampleRate || m.Samples != cfg.Capture.Samples {
		t.Fatalf("capture not applied: %+v", m)
	}
	if m.TriggerOffset() != cfg.Capture.TriggerSample {
		t.Fatalf("trigger offset = %v", m.TriggerOffset())
	}
	if !m.ShowMinorLabels() {
		t.Fatal("minor labels not applied")
	}
	if m.BackgroundColor() != timeline.PaletteFor(timeline.ThemeLight).Background {
		t.Fatal("theme not applied")
	}
	if m.CursorFlagFont().Size != cfg.Ruler.FlagFont {
		t.Fatalf("flag font = %+v", m.CursorFlagFont())
	}
}
