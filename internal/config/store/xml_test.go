package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestXML_DocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.xml")

	st := NewXML()
	st.Open("settings")
	st.Set("screen-width", "800")
	st.Set("serial-enabled", "true")
	st.Close()
	if err := st.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		"<settings>",
		"</settings>",
		"<screen-width>800</screen-width>",
		"<serial-enabled>true</serial-enabled>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("saved document missing %q:\n%s", want, doc)
		}
	}
}

func TestXML_LoadHandwrittenDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.xml")
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<settings>
  <screen-width>1024</screen-width>
  <proportional>0.45</proportional>
</settings>
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	st := NewXML()
	if err := st.Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	st.Open("settings")
	defer st.Close()
	if got := st.Get("screen-width", "800"); got != "1024" {
		t.Errorf("Get(screen-width) = %q, want %q", got, "1024")
	}
	if got := st.Get("proportional", "0.3"); got != "0.45" {
		t.Errorf("Get(proportional) = %q, want %q", got, "0.45")
	}
	if got := st.Get("absent-key", "fallback"); got != "fallback" {
		t.Errorf("Get(absent-key) = %q, want fallback", got)
	}
}

func TestXML_LoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.xml")
	if err := os.WriteFile(path, []byte("<settings><broken"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	st := NewXML()
	if err := st.Load(path); err == nil {
		t.Error("Load() on malformed document did not error")
	}
}

func TestXML_OpenCreatesScopeOnce(t *testing.T) {
	st := NewXML()

	st.Open("settings")
	st.Set("gain", "20")
	st.Close()

	st.Open("settings")
	defer st.Close()
	st.Set("hue", "128")

	if got := st.Get("gain", "missing"); got != "20" {
		t.Errorf("Get(gain) = %q, want %q", got, "20")
	}
	if got := st.Get("hue", "missing"); got != "128" {
		t.Errorf("Get(hue) = %q, want %q", got, "128")
	}
	if st.root == nil || st.root.XMLName.Local != "settings" {
		t.Errorf("document root = %+v after two opens, want single settings scope", st.root)
	}
}

func TestXML_SavePersistsScopeCreatedOverForeignRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.xml")
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<other>
  <k>1</k>
</other>
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	st := NewXML()
	if err := st.Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	st.Open("settings")
	st.Set("gain", "20")
	st.Close()
	if err := st.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewXML()
	if err := reloaded.Load(path); err != nil {
		t.Fatalf("Load() after Save() error: %v", err)
	}
	reloaded.Open("settings")
	defer reloaded.Close()
	if got := reloaded.Get("gain", "missing"); got != "20" {
		t.Errorf("Get(gain) after round trip = %q, want %q", got, "20")
	}
}
