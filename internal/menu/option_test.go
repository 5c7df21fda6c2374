package menu

import (
	"testing"

	"github.com/balltrack/cfgmenu/internal/config"
)

func TestOption_String(t *testing.T) {
	width := config.NewInt32("screen width", 800)
	option := NewOption('w', &width, nil)

	want := "W | screen width                      800\n"
	if got := option.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOption_StringReflectsCurrentValue(t *testing.T) {
	gain := config.NewUint8("gain", 20)
	option := NewOption('g', &gain, nil)

	gain.SetString("200")
	want := "G | gain                              200\n"
	if got := option.String(); got != want {
		t.Errorf("String() after change = %q, want %q", got, want)
	}
}

func TestOption_ApplySetsThenFiresAction(t *testing.T) {
	height := config.NewInt32("screen height", 600)

	fired := 0
	var observed string
	option := NewOption('h', &height, func() {
		fired++
		// The value is committed before the action runs.
		observed = height.String()
	})

	if err := option.Apply(1080); err != nil {
		t.Fatalf("Apply(1080) error: %v", err)
	}
	if got := height.String(); got != "1080" {
		t.Errorf("item = %q after apply, want %q", got, "1080")
	}
	if fired != 1 {
		t.Errorf("action fired %d times, want 1", fired)
	}
	if observed != "1080" {
		t.Errorf("action observed %q, want the new value %q", observed, "1080")
	}
}

func TestOption_ApplyWithoutAction(t *testing.T) {
	rate := config.NewInt32("screen rate", 60)
	option := NewOption('r', &rate, nil)

	if err := option.Apply(144); err != nil {
		t.Fatalf("Apply(144) error: %v", err)
	}
	if got := rate.String(); got != "144" {
		t.Errorf("item = %q after apply, want %q", got, "144")
	}
}

func TestOption_ApplyErrorSkipsAction(t *testing.T) {
	rate := config.NewInt32("screen rate", 60)

	fired := false
	option := NewOption('r', &rate, func() { fired = true })

	if err := option.Apply(struct{}{}); err == nil {
		t.Fatal("Apply(struct{}{}) did not error")
	}
	if fired {
		t.Error("action fired although the set failed")
	}
	if got := rate.String(); got != "60" {
		t.Errorf("item = %q after failed apply, want %q", got, "60")
	}
}

func TestOption_Equal(t *testing.T) {
	width := config.NewInt32("screen width", 800)
	height := config.NewInt32("screen height", 600)

	// Options are equal iff their keys match; items and actions are
	// not compared.
	a := NewOption('w', &width, nil)
	b := NewOption('w', &height, func() {})
	c := NewOption('h', &width, nil)

	if !a.Equal(b) {
		t.Error("options with matching keys compare unequal")
	}
	if a.Equal(c) {
		t.Error("options with different keys compare equal")
	}
}
