package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/simplepaint/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func recorder(out *[]sent, err error) SendFunc {
	return func(title, body string, opts platform.Options) error {
		*out = append(*out, sent{title, body, opts})
		return err
	}
}

func TestDisabledEventsAreSilent(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got, nil))
	n.Save("x.png")
	n.Copy("")
	if len(got) != 0 {
		t.Fatalf("sent %d notifications while disabled", len(got))
	}
	var nilNotifier *Notifier
	nilNotifier.Save("x.png")
}

func TestSaveIncludesAbsolutePathAndIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got, nil))
	n.Enable(EventSave, true)
	n.Save(path)
	if len(got) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(got))
	}
	if got[0].body != "Saved "+path || got[0].opts.IconPath != path {
		t.Fatalf("unexpected notification %+v", got[0])
	}
	if got[0].title != platform.AppName {
		t.Fatalf("title = %q", got[0].title)
	}
}

func TestCopyDefaultsDetail(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences()).WithSender(recorder(&got, errors.New("no bus")))
	n.Enable(EventCopy, true)
	n.Copy(" ")
	if len(got) != 1 || got[0].body != "Copied drawing to clipboard" {
		t.Fatalf("unexpected notifications %+v", got)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("SIMPLEPAINT_NOTIFY_TITLE", "Paint")
	t.Setenv("SIMPLEPAINT_NOTIFY_SAVE_TEXT", "Wrote %s")
	t.Setenv("SIMPLEPAINT_NOTIFY_COPY_TEXT", "Clipboard updated")
	prefs := LoadPreferences()
	if prefs.Title != "Paint" || prefs.Events[EventSave].Template != "Wrote %s" {
		t.Fatalf("unexpected prefs %+v", prefs)
	}
	var got []sent
	n := New(prefs).WithSender(recorder(&got, nil))
	n.Enable(EventCopy, true)
	n.Copy("drawing")
	if len(got) != 1 || got[0].body != "Clipboard updated" {
		t.Fatalf("unexpected notifications %+v", got)
	}
}
