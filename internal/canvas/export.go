package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format names an export encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatPDF  Format = "pdf"
)

// JPEGQuality is the quality used for JPEG exports.
const JPEGQuality = 95

// pointsPerPixel sizes PDF pages so the drawing prints at 96 DPI.
const pointsPerPixel = 72.0 / 96.0

// ErrUnsupportedFormat is returned for formats no encoder is registered for.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF, FormatPDF}
}

// ParseFormat maps a format name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath infers the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no file extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPDF:
		return encodePDF(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// encodePDF writes a single page document sized to the image and containing
// it as a lossless PNG raster.
func encodePDF(w io.Writer, img image.Image) error {
	var raster bytes.Buffer
	if err := png.Encode(&raster, img); err != nil {
		return err
	}
	b := img.Bounds()
	pageW := float64(b.Dx()) * pointsPerPixel
	pageH := float64(b.Dy()) * pointsPerPixel
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &raster)
	pdf.ImageOptions("canvas", 0, 0, pageW, pageH, false, opts, 0, "")
	return pdf.Output(w)
}

// WriteFile encodes img into path. The data goes to a uniquely named
// temporary file next to path which is renamed over path once the encoder
// has finished, so a failed export leaves no partial file behind.
func WriteFile(path string, img image.Image, f Format) error {
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("export %s: encode %s: %w", path, f, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
