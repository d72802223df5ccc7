package appstate

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 20, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// canvasOffset is where the canvas origin sits in window coordinates.
var canvasOffset = image.Pt(0, toolbarHeight)

// render draws one complete frame of the window into dst.
func (u *ui) render(dst *image.RGBA) {
	fillRect(dst, dst.Bounds(), u.theme.Background)
	if u.shadow != nil {
		at := canvasOffset.Sub(u.shadowAt)
		draw.Draw(dst, u.shadow.Bounds().Add(at), u.shadow, image.Point{}, draw.Over)
	}
	u.ctrl.Render(dst, canvasOffset)
	u.bar.draw(dst, u.ctrl.Session(), u.hover)
	if u.messageVisible() {
		drawMessage(dst, u.message, u.theme.MessageBackground, u.theme.MessageText)
	}
}

func drawMessage(dst *image.RGBA, msg string, bg, fg color.RGBA) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(fg), Face: messageFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	b := dst.Bounds()
	px := b.Min.X + (b.Dx()-wmsg)/2
	py := toolbarHeight + (b.Dy()-toolbarHeight-ascent-descent)/2 + ascent
	rect := image.Rect(px-12, py-ascent-10, px+wmsg+12, py+descent+10)
	fillRect(dst, rect, bg)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

func drawFrame(s screen.Screen, w screen.Window, u *ui, size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	b, err := s.NewBuffer(size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	u.render(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func (u *ui) messageVisible() bool {
	return u.message != "" && u.now().Before(u.messageUntil)
}

func (u *ui) showMessage(msg string) {
	u.message = msg
	u.messageUntil = u.now().Add(messageDuration)
	u.dirty = true
	if u.afterMessage != nil {
		u.afterMessage(messageDuration)
	}
}

const messageDuration = 3 * time.Second
