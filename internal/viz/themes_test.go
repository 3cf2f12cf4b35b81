package viz

import (
	"errors"
	"strings"
	"testing"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		th, err := ThemeByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("got %s, want %s", th.Name, name)
		}
	}

	_, err := ThemeByName("neon")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if !strings.Contains(err.Error(), "paper, night, mono") {
		t.Errorf("error should list themes: %v", err)
	}
}

func TestNextThemeWraps(t *testing.T) {
	names := ThemeNames()
	if got := NextTheme(names[len(names)-1]).Name; got != names[0] {
		t.Errorf("expected wrap to %s, got %s", names[0], got)
	}
}
