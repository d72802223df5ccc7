// Package notify sends desktop notifications after a drawing is saved or
// copied.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/simplepaint/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when the drawing is exported to disk.
	EventSave Event = "save"
	// EventCopy emits a notification when the drawing is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Events: map[Event]EventPreference{
			EventSave: {Template: "Saved %s"},
			EventCopy: {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads overrides from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SIMPLEPAINT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("SIMPLEPAINT_NOTIFY_SAVE_TEXT", EventSave)
	apply("SIMPLEPAINT_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// SendFunc delivers one notification.
type SendFunc func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    SendFunc
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify}
}

// WithSender replaces the platform delivery function.
func (n *Notifier) WithSender(send SendFunc) *Notifier {
	n.send = send
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save sends a save notification naming the written file. The file itself
// is offered as the notification icon.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy sends a clipboard notification.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "drawing"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.Events[event].Template)
	if template == "" || n.send == nil {
		return
	}
	var body string
	if strings.Contains(template, "%s") {
		body = fmt.Sprintf(template, detail)
	} else {
		body = template
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
