//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"image"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce sync.Once
	initErr  error
	backend  *x11Clipboard
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		clip := &x11Clipboard{}
		if err := clip.initialize(); err != nil {
			initErr = err
			return
		}
		backend = clip
	})
	return initErr
}

// WriteImage encodes the provided image as PNG and takes ownership of the
// CLIPBOARD selection, serving the PNG to whoever asks for it.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	backend.mu.Lock()
	backend.png = data
	backend.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(backend.conn, backend.window, backend.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

// x11Clipboard owns the selection through a hidden window and answers
// SelectionRequest events from its own goroutine.
type x11Clipboard struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atomSet
	mu     sync.RWMutex
	png    []byte
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	png       xproto.Atom
}

func (c *x11Clipboard) initialize() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	c.conn = conn
	c.window = window
	c.atoms = atoms
	go c.eventLoop()
	return nil
}

func internAtoms(conn *xgb.Conn) (atomSet, error) {
	var atoms atomSet
	for _, a := range []struct {
		name string
		dst  *xproto.Atom
	}{
		{"CLIPBOARD", &atoms.clipboard},
		{"TARGETS", &atoms.targets},
		{"image/png", &atoms.png},
	} {
		reply, err := xproto.InternAtom(conn, false, uint16(len(a.name)), a.name).Reply()
		if err != nil {
			return atomSet{}, err
		}
		*a.dst = reply.Atom
	}
	return atoms, nil
}

func (c *x11Clipboard) eventLoop() {
	for {
		ev, err := c.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			c.answer(e)
		case xproto.SelectionClearEvent:
			c.mu.Lock()
			c.png = nil
			c.mu.Unlock()
		}
	}
}

func (c *x11Clipboard) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	c.mu.RLock()
	data := c.png
	c.mu.RUnlock()

	switch {
	case e.Target == c.atoms.targets:
		targets := []xproto.Atom{c.atoms.targets}
		if len(data) > 0 {
			targets = append(targets, c.atoms.png)
		}
		buf := make([]byte, len(targets)*4)
		for i, atom := range targets {
			xgb.Put32(buf[i*4:], uint32(atom))
		}
		xproto.ChangeProperty(c.conn, xproto.PropModeReplace, e.Requestor, property, xproto.AtomAtom, 32, uint32(len(targets)), buf)
	case e.Target == c.atoms.png && len(data) > 0:
		xproto.ChangeProperty(c.conn, xproto.PropModeReplace, e.Requestor, property, c.atoms.png, 8, uint32(len(data)), data)
	default:
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(c.conn, false, e.Requestor, 0, string(notify.Bytes()))
}
