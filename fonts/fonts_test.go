package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults() error = %v", err)
	}
	for _, name := range []FontName{HUD, Title} {
		if !Loaded(name) {
			t.Errorf("%s not loaded", name)
		}
		if m := name.Get().Metrics(); m.Height <= 0 {
			t.Errorf("%s has no line height", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("LoadFontWithSize() should fail on garbage input")
	}
	if Loaded("broken") {
		t.Error("failed font was registered")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get() of an unknown font should panic")
		}
	}()
	FontName("missing").Get()
}
