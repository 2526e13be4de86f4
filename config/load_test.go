package config

import (
	"os"
	"path/filepath"
	"testing"
)

func snapshot() func() {
	c, p, d := *C, Player, Debug
	return func() {
		*C = c
		Player = p
		Debug = d
	}
}

func TestApplyOverlaysOnlyGivenFields(t *testing.T) {
	defer snapshot()()

	err := Apply([]byte(`
window:
  width: 800
player:
  speed: 200
debug:
  showHUD: true
`))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if C.Width != 800 {
		t.Errorf("Expected width 800, got %d", C.Width)
	}
	if C.Height != 720 {
		t.Errorf("Expected height to keep default 720, got %d", C.Height)
	}
	if Player.Speed != 200 {
		t.Errorf("Expected speed 200, got %v", Player.Speed)
	}
	if Player.Gravity != 60*1.8 {
		t.Errorf("Expected gravity to keep default, got %v", Player.Gravity)
	}
	if !Debug.ShowHUD {
		t.Error("Expected showHUD to be enabled")
	}
	if Debug.ShapeColor != Cyan {
		t.Errorf("Expected shape color to stay cyan, got %v", Debug.ShapeColor)
	}
}

func TestApplyRejectsBadInput(t *testing.T) {
	defer snapshot()()

	if err := Apply([]byte("window: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
	if err := Apply([]byte("window:\n  width: -1\n")); err == nil {
		t.Error("Expected error for negative width")
	}
	if C.Width != 1280 {
		t.Errorf("Expected failed Apply to leave width untouched, got %d", C.Width)
	}
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	defer snapshot()()

	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("Expected nil error for missing file, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	defer snapshot()()

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("player:\n  startCellX: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if Player.StartCellX != 3 {
		t.Errorf("Expected start cell x 3, got %d", Player.StartCellX)
	}
}
