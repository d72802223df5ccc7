// Package appstate hosts the drawing window: the toolbar, the canvas view
// and the event loop that feeds pointer and key input to the controller.
package appstate

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/simplepaint/internal/canvas"
	"github.com/example/simplepaint/internal/clipboard"
	"github.com/example/simplepaint/internal/notify"
	drawing "github.com/example/simplepaint/internal/paint"
	"github.com/example/simplepaint/internal/render"
	"github.com/example/simplepaint/internal/theme"
)

// minWindowWidth keeps every toolbar control visible for small canvases.
const minWindowWidth = 950

// AppState holds application configuration for the UI.
type AppState struct {
	Title   string
	Output  string
	Format  canvas.Format
	Theme   *theme.Theme
	Surface *canvas.Surface
	Session drawing.Session

	notifier *notify.Notifier
	copyFn   func(image.Image) error

	ui *ui

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSurface sets the canvas the window draws on.
func WithSurface(s *canvas.Surface) Option { return func(a *AppState) { a.Surface = s } }

// WithSession sets the initial tool, color and width.
func WithSession(s drawing.Session) Option { return func(a *AppState) { a.Session = s } }

// WithOutput sets the file written by the save command.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithFormat forces the export format. Empty infers it from the output name.
func WithFormat(f canvas.Format) Option { return func(a *AppState) { a.Format = f } }

// WithTheme sets the toolbar colors.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithNotifier enables desktop notifications for save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithClipboard replaces the function used by the copy command.
func WithClipboard(fn func(image.Image) error) Option { return func(a *AppState) { a.copyFn = fn } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Title:   "SimplePaint",
		Output:  "drawing.png",
		Theme:   theme.Default(),
		Session: drawing.NewSession(),
		copyFn:  clipboard.WriteImage,
	}
	for _, o := range opts {
		o(a)
	}
	if a.Surface == nil {
		a.Surface = canvas.NewSurface(canvas.DefaultSize, a.Session.Background)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	EnsurePaletteColor(a.Session.Color, "")
	a.ui = newUI(a, windowWidth(a.Surface))
	return a
}

// Controller exposes the interaction controller driving the canvas.
func (a *AppState) Controller() *drawing.Controller { return a.ui.ctrl }

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the window until it is closed or the user quits.
func (a *AppState) Main(s screen.Screen) {
	width := windowWidth(a.Surface)
	height := a.Surface.Bounds().Dy() + toolbarHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()
	defer a.notifyClose()

	u := a.ui
	u.afterMessage = func(d time.Duration) {
		time.AfterFunc(d, func() { w.Send(paint.Event{}) })
	}
	defer func() { u.afterMessage = nil }()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			u.resize(width)
		case paint.Event:
			drawFrame(s, w, u, image.Pt(width, height))
		case mouse.Event:
			u.handleMouse(e)
		case key.Event:
			u.handleKey(e)
			if u.quit {
				return
			}
		case error:
			log.Print(e)
		}
		if u.dirty {
			u.dirty = false
			w.Send(paint.Event{})
		}
	}
}

func windowWidth(s *canvas.Surface) int {
	if w := s.Bounds().Dx(); w > minWindowWidth {
		return w
	}
	return minWindowWidth
}

// ui is the window state that lives on the event loop goroutine.
type ui struct {
	app   *AppState
	ctrl  *drawing.Controller
	bar   *toolbar
	theme *theme.Theme
	keys  keymap
	acts  map[string]func()
	now   func() time.Time

	shadow   *image.RGBA
	shadowAt image.Point

	hover        target
	barDrag      targetKind
	message      string
	messageUntil time.Time
	afterMessage func(time.Duration)
	dirty        bool
	quit         bool
}

func newUI(a *AppState, width int) *ui {
	u := &ui{app: a, theme: a.Theme, now: time.Now, hover: target{index: -1}}
	u.ctrl = drawing.NewController(a.Surface,
		drawing.WithSession(a.Session),
		drawing.WithInvalidate(func() { u.dirty = true }),
	)
	u.shadow, u.shadowAt = render.Shadow(a.Surface.Bounds().Size(), render.DefaultShadowOptions())
	u.registerActions()
	u.resize(width)
	return u
}

func (u *ui) resize(width int) {
	s := u.ctrl.Session()
	u.bar = newToolbar(width, u.theme, s.MinWidth, s.MaxWidth, u.ctrl.SetTool, []*ActionButton{
		u.actionButton("Clear", "clear"),
		u.actionButton("Save", "save"),
		u.actionButton("Save As", "save-as"),
		u.actionButton("Copy", "copy"),
	})
	u.dirty = true
}

func (u *ui) actionButton(label, action string) *ActionButton {
	return &ActionButton{
		labelButton: labelButton{label: label},
		name:        action,
		onActivate:  func() { u.trigger(action) },
	}
}

func (u *ui) registerActions() {
	u.keys = keymap{}
	u.acts = map[string]func(){}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		u.acts[name] = fn
		if keys != nil {
			u.keys.register(name, keys)
		}
	}
	tool := func(t drawing.Tool) func() { return func() { u.ctrl.SetTool(t) } }

	register("pen", shortcutList{{Rune: 'p'}}, tool(drawing.ToolPen))
	register("eraser", shortcutList{{Rune: 'e'}}, tool(drawing.ToolEraser))
	register("line", shortcutList{{Rune: 'l'}}, tool(drawing.ToolLine))
	register("rect", shortcutList{{Rune: 'r'}}, tool(drawing.ToolRectangle))
	register("ellipse", shortcutList{{Rune: 'o'}}, tool(drawing.ToolEllipse))
	register("thinner", shortcutList{{Rune: '['}, {Rune: '-'}}, func() {
		u.ctrl.SetWidth(u.ctrl.Session().Width - 1)
	})
	register("thicker", shortcutList{{Rune: ']'}, {Rune: '+'}, {Rune: '='}}, func() {
		u.ctrl.SetWidth(u.ctrl.Session().Width + 1)
	})
	register("next-color", shortcutList{{Rune: '.'}}, func() { u.cycleColor(1) })
	register("prev-color", shortcutList{{Rune: ','}}, func() { u.cycleColor(-1) })
	register("clear", shortcutList{{Code: key.CodeDeleteForward}, {Rune: 'n', Modifiers: key.ModControl}, {Code: key.CodeN, Modifiers: key.ModControl}}, u.ctrl.ClearCanvas)
	register("save", shortcutList{{Rune: 's', Modifiers: key.ModControl}, {Code: key.CodeS, Modifiers: key.ModControl}}, u.save)
	register("save-as", shortcutList{{Rune: 's', Modifiers: key.ModControl | key.ModShift}, {Code: key.CodeS, Modifiers: key.ModControl | key.ModShift}}, u.saveAs)
	register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}, {Code: key.CodeC, Modifiers: key.ModControl}}, u.copy)
	register("dismiss", shortcutList{{Code: key.CodeEscape}}, func() {
		u.messageUntil = time.Time{}
		u.dirty = true
	})
	register("quit", shortcutList{{Rune: 'q'}}, func() { u.quit = true })
}

// cycleColor steps through the palette from the current color. A color
// that is not in the palette starts from the first entry.
func (u *ui) cycleColor(step int) {
	n := paletteLen()
	if n == 0 {
		return
	}
	idx := paletteIndexOf(u.ctrl.Session().Color)
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+step)%n + n) % n
	}
	u.ctrl.SetColor(paletteColorAt(idx))
}

func (u *ui) trigger(action string) {
	if fn, ok := u.acts[action]; ok {
		fn()
	}
}

func (u *ui) save() { u.saveTo(u.app.Output) }

// saveAs writes a new timestamped file next to the output so earlier saves
// are kept.
func (u *ui) saveAs() { u.saveTo(timestampedPath(u.app.Output, u.now())) }

// timestampedPath inserts t before the extension of path:
// out/drawing.png becomes out/drawing-20060102-150405.png.
func timestampedPath(path string, t time.Time) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "-" + t.Format("20060102-150405") + ext
}

func (u *ui) saveTo(out string) {
	if err := u.ctrl.ExportCanvas(out, u.app.Format); err != nil {
		log.Printf("save: %v", err)
		u.showMessage(fmt.Sprintf("save failed: %v", err))
		return
	}
	log.Printf("saved %s", out)
	u.showMessage(fmt.Sprintf("saved %s", out))
	u.app.notifier.Save(out)
}

func (u *ui) copy() {
	if u.app.copyFn == nil {
		return
	}
	if err := u.app.copyFn(u.ctrl.Surface().Image()); err != nil {
		log.Printf("copy: %v", err)
		u.showMessage(fmt.Sprintf("copy failed: %v", err))
		return
	}
	log.Print("drawing copied to clipboard")
	u.showMessage("drawing copied to clipboard")
	u.app.notifier.Copy("drawing")
}

func (u *ui) handleKey(e key.Event) {
	if e.Direction != key.DirPress {
		return
	}
	if action, ok := u.keys.lookup(e); ok {
		u.trigger(action)
	}
}

func (u *ui) handleMouse(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress
	release := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease

	if press && u.messageVisible() {
		u.messageUntil = time.Time{}
		u.dirty = true
		return
	}

	if u.barDrag != targetNone {
		u.dragBar(p)
		if release {
			u.barDrag = targetNone
		}
		return
	}

	if u.ctrl.Drag().Active {
		cp := p.Sub(canvasOffset)
		switch {
		case release:
			u.ctrl.PointerUp(cp)
		case e.Direction == mouse.DirNone:
			u.ctrl.PointerMove(cp)
		}
		return
	}

	if p.Y < toolbarHeight {
		t := u.bar.hit(p)
		if t != u.hover {
			u.hover = t
			u.dirty = true
		}
		if !press {
			return
		}
		switch t.kind {
		case targetButton:
			t.button.Activate()
			u.dirty = true
		case targetSwatch:
			u.ctrl.SetColor(paletteColorAt(t.index))
		case targetSlider, targetStrip:
			u.barDrag = t.kind
			u.dragBar(p)
		}
		return
	}

	if u.hover.kind != targetNone {
		u.hover = target{index: -1}
		u.dirty = true
	}
	if press {
		u.ctrl.PointerDown(p.Sub(canvasOffset))
	}
}

// dragBar applies a press or drag on the slider or the color strip. The
// drag keeps tracking the pointer after it leaves the control.
func (u *ui) dragBar(p image.Point) {
	switch u.barDrag {
	case targetSlider:
		u.ctrl.SetWidth(u.bar.slider.ValueAt(p.X))
	case targetStrip:
		u.ctrl.SetColor(u.bar.strip.ColorAt(p))
	}
}
