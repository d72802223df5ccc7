package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# comment
Name: Mine
ToolbarBackground: #102030
sliderknob: red
Unknown: #FFFFFF
MessageBackground: #00000080
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Mine" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.ToolbarBackground != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Errorf("ToolbarBackground = %v", th.ToolbarBackground)
	}
	if th.SliderKnob != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("SliderKnob = %v", th.SliderKnob)
	}
	if th.MessageBackground.A != 0x80 {
		t.Errorf("MessageBackground alpha = %d", th.MessageBackground.A)
	}
	if th.ButtonText != Default().ButtonText {
		t.Errorf("missing key did not keep default")
	}
}

func TestParseInvalidColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("ButtonText: #12")); err == nil {
		t.Fatal("expected error")
	}
}

func TestEmbeddedThemesParse(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{"default", "dark"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name == "" {
			t.Errorf("%s: empty name", name)
		}
	}
	dark, _ := l.Load("dark")
	if dark.ToolbarBackground == Default().ToolbarBackground {
		t.Error("dark theme uses the default toolbar color")
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ocean.theme"), []byte("Name: Ocean\nBackground: #000080\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	custom := Default()
	custom.Name = "inline"
	l := &Loader{ConfigDir: dir, Custom: map[string]*Theme{"inline": custom}}

	th, err := l.Load("ocean")
	if err != nil {
		t.Fatalf("Load(ocean): %v", err)
	}
	if th.Background != (color.RGBA{0, 0, 0x80, 0xFF}) {
		t.Errorf("Background = %v", th.Background)
	}
	th, err = l.Load(filepath.Join(dir, "ocean.theme"))
	if err != nil || th.Name != "Ocean" {
		t.Fatalf("Load(path) = %v, %v", th, err)
	}
	if th, _ := l.Load("inline"); th != custom {
		t.Error("inline theme not preferred")
	}
	if _, err := l.Load("missing"); err == nil {
		t.Error("expected error for missing theme")
	}
	if th, err := l.Load(""); err != nil || th.Name != "Default" {
		t.Errorf("Load(\"\") = %v, %v", th, err)
	}
}

func TestNames(t *testing.T) {
	l := &Loader{Custom: map[string]*Theme{"zzz": Default()}}
	got := strings.Join(l.Names(), ",")
	if got != "dark,default,zzz" {
		t.Errorf("Names = %s", got)
	}
}

func TestFields(t *testing.T) {
	fields := Fields(Default())
	if len(fields) == 0 || fields[0].Name != "Background" {
		t.Fatalf("unexpected fields %+v", fields)
	}
	for _, f := range fields {
		if f.Name == "Name" {
			t.Fatal("Name is not a color field")
		}
	}
}
