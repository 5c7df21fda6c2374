package menu

import (
	"errors"
	"strings"
	"testing"

	"github.com/balltrack/cfgmenu/internal/config"
)

// threeOptionMenu builds a menu over three screen items.
func threeOptionMenu(t *testing.T) (*Menu, *config.Tree) {
	t.Helper()
	tree := config.Defaults()
	m := New()
	for _, b := range []struct {
		key  byte
		item *config.Item
	}{
		{'w', &tree.Screen.Width},
		{'h', &tree.Screen.Height},
		{'r', &tree.Screen.Rate},
	} {
		if err := m.Add(b.key, b.item, nil); err != nil {
			t.Fatalf("Add(%q) error: %v", b.key, err)
		}
	}
	return m, tree
}

func TestMenu_Select(t *testing.T) {
	m, _ := threeOptionMenu(t)

	tests := []struct {
		key  byte
		want bool
	}{
		{'w', true},
		{'h', true},
		{'r', true},
		{'z', false},
		{'W', false}, // keys are case-sensitive
	}

	for _, tt := range tests {
		got := m.Select(tt.key)
		if got != tt.want {
			t.Errorf("Select(%q) = %v, want %v", tt.key, got, tt.want)
		}
		if selected, ok := m.Selection(); ok != tt.want {
			t.Errorf("Selection() ok = %v after Select(%q), want %v", ok, tt.key, tt.want)
		} else if ok && selected.Key() != tt.key {
			t.Errorf("selected key = %q, want %q", selected.Key(), tt.key)
		}
	}
}

func TestMenu_SelectMissResetsSelection(t *testing.T) {
	m, _ := threeOptionMenu(t)

	if !m.Select('w') {
		t.Fatal("Select('w') failed")
	}
	// A failed select must not leave the previous selection behind.
	if m.Select('z') {
		t.Fatal("Select('z') unexpectedly succeeded")
	}
	if err := m.Apply(100); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Apply() after failed select = %v, want ErrNoSelection", err)
	}
}

func TestMenu_Apply(t *testing.T) {
	tree := config.Defaults()
	m := New()

	fired := 0
	if err := m.Add('w', &tree.Screen.Width, nil); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := m.Add('h', &tree.Screen.Height, func() { fired++ }); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if !m.Select('h') {
		t.Fatal("Select('h') failed")
	}
	if err := m.Apply(1080); err != nil {
		t.Fatalf("Apply(1080) error: %v", err)
	}

	if got := tree.Screen.Height.String(); got != "1080" {
		t.Errorf("screen height = %q after apply, want %q", got, "1080")
	}
	if fired != 1 {
		t.Errorf("action fired %d times, want 1", fired)
	}
	if got := tree.Screen.Width.String(); got != "800" {
		t.Errorf("screen width = %q, want untouched %q", got, "800")
	}
}

func TestMenu_ApplyUnselected(t *testing.T) {
	m, _ := threeOptionMenu(t)
	if err := m.Apply(100); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Apply() while unselected = %v, want ErrNoSelection", err)
	}
}

func TestMenu_Remove(t *testing.T) {
	m, _ := threeOptionMenu(t)

	if !m.Select('h') {
		t.Fatal("Select('h') failed")
	}
	if err := m.Remove(); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	if got := m.Len(); got != 2 {
		t.Errorf("Len() = %d after remove, want 2", got)
	}
	if m.Select('h') {
		t.Error("removed key is still selectable")
	}
	if !m.Select('w') || !m.Select('r') {
		t.Error("remaining keys are no longer selectable")
	}
}

func TestMenu_RemoveUnselected(t *testing.T) {
	m, _ := threeOptionMenu(t)
	if err := m.Remove(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Remove() while unselected = %v, want ErrNoSelection", err)
	}
	if got := m.Len(); got != 3 {
		t.Errorf("Len() = %d after failed remove, want 3", got)
	}
}

func TestMenu_RemoveResetsSelection(t *testing.T) {
	m, _ := threeOptionMenu(t)

	if !m.Select('w') {
		t.Fatal("Select('w') failed")
	}
	if err := m.Remove(); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if err := m.Remove(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("second Remove() = %v, want ErrNoSelection", err)
	}
}

func TestMenu_AddDuplicateKey(t *testing.T) {
	m, tree := threeOptionMenu(t)

	err := m.Add('w', &tree.Camera.Gain, nil)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Add duplicate = %v, want ErrDuplicateKey", err)
	}
	if got := m.Len(); got != 3 {
		t.Errorf("Len() = %d after rejected add, want 3", got)
	}
}

func TestMenu_AddInvalidatesSelection(t *testing.T) {
	m, tree := threeOptionMenu(t)

	if !m.Select('w') {
		t.Fatal("Select('w') failed")
	}
	if err := m.Add('g', &tree.Camera.Gain, nil); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	// Structural mutation invalidates the cursor; callers re-select.
	if err := m.Apply(100); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Apply() after Add = %v, want ErrNoSelection", err)
	}
}

func TestMenu_String(t *testing.T) {
	m, _ := threeOptionMenu(t)

	want := "W | screen width                      800\n" +
		"H | screen height                     600\n" +
		"R | screen rate                        60\n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Rendering is independent of the selection state.
	m.Select('h')
	if got := m.String(); got != want {
		t.Errorf("String() after select = %q, want %q", got, want)
	}
}

func TestMenu_StringCollectionOrder(t *testing.T) {
	m, _ := threeOptionMenu(t)

	lines := strings.Split(strings.TrimRight(m.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("String() has %d lines, want 3", len(lines))
	}
	for i, prefix := range []string{"W | ", "H | ", "R | "} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}
