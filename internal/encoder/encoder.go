// Package encoder wraps the third-party barcode and QR symbol encoders.
// It owns no symbol math: Code 128 encoding is delegated to
// boombuler/barcode and QR matrix construction to skip2/go-qrcode. What
// lives here is option validation glue, color resolution, quiet-zone
// rendering and PNG serialization.
package encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	bbarcode "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	qrcode "github.com/skip2/go-qrcode"

	"barcode-api/internal/domain"
)

// Bounds shared by module size and symbol version, matching the QR spec's
// 40 versions.
const (
	MinModuleSize = 1
	MaxModuleSize = 40
	MinVersion    = 1
	MaxVersion    = 40
	MinBorder     = 1
)

// Code 128 render geometry: pixels per bar module and total image height.
const (
	barScale      = 2
	barcodeHeight = 120
)

// RecoveryLevel is the QR error-correction level, ordered by increasing
// redundancy.
type RecoveryLevel int

const (
	LevelLow RecoveryLevel = iota
	LevelMedium
	LevelQuartile
	LevelHigh
)

// ParseRecoveryLevel maps a case-insensitive L/M/Q/H letter to a level.
// Anything unrecognized (including empty) falls back to LevelLow; this is a
// deliberate leniency carried over from the original API, reported via the
// second return so callers can log the fallback.
func ParseRecoveryLevel(s string) (RecoveryLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelLow, true
	case "M":
		return LevelMedium, true
	case "Q":
		return LevelQuartile, true
	case "H":
		return LevelHigh, true
	}
	return LevelLow, false
}

func (l RecoveryLevel) toQRCode() qrcode.RecoveryLevel {
	switch l {
	case LevelMedium:
		return qrcode.Medium
	case LevelQuartile:
		return qrcode.High
	case LevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Low
	}
}

// Options configures QR rendering. Code 128 ignores all of it.
type Options struct {
	ModuleSize int // pixels per module
	Border     int // quiet-zone width in modules
	Version    int // minimum symbol version
	Level      RecoveryLevel
	FillColor  string
	BackColor  string
}

func DefaultOptions() Options {
	return Options{
		ModuleSize: 10,
		Border:     4,
		Version:    1,
		Level:      LevelLow,
		FillColor:  "black",
		BackColor:  "white",
	}
}

// Validate rejects out-of-range numeric options before any encoding work.
func (o Options) Validate() error {
	if o.ModuleSize < MinModuleSize || o.ModuleSize > MaxModuleSize {
		return domain.ValidationError{Field: "size", Msg: fmt.Sprintf("must be between %d and %d", MinModuleSize, MaxModuleSize)}
	}
	if o.Border < MinBorder {
		return domain.ValidationError{Field: "border", Msg: fmt.Sprintf("must be at least %d", MinBorder)}
	}
	if o.Version < MinVersion || o.Version > MaxVersion {
		return domain.ValidationError{Field: "version", Msg: fmt.Sprintf("must be between %d and %d", MinVersion, MaxVersion)}
	}
	return nil
}

// QRCodePNG renders payload as a QR symbol. The symbol version is the
// smallest version >= opts.Version that fits the payload at the requested
// recovery level; the payload is never truncated to fit.
func QRCodePNG(payload string, opts Options) ([]byte, error) {
	if payload == "" {
		return nil, domain.ValidationError{Field: "data", Msg: "must not be empty"}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	fill, err := ParseColor(opts.FillColor)
	if err != nil {
		return nil, domain.EncodingError{Msg: "invalid fill_color", Err: err}
	}
	back, err := ParseColor(opts.BackColor)
	if err != nil {
		return nil, domain.EncodingError{Msg: "invalid back_color", Err: err}
	}

	var q *qrcode.QRCode
	for v := opts.Version; v <= MaxVersion; v++ {
		q, err = qrcode.NewWithForcedVersion(payload, v, opts.Level.toQRCode())
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, domain.EncodingError{
			Msg: fmt.Sprintf("payload exceeds QR capacity for every version from %d to %d", opts.Version, MaxVersion),
			Err: err,
		}
	}

	// The library only offers a fixed 4-module quiet zone, so the border is
	// rendered here instead: borderless symbol first, then composed onto a
	// background canvas.
	q.DisableBorder = true
	q.ForegroundColor = fill
	q.BackgroundColor = back

	img := withQuietZone(q.Image(-opts.ModuleSize), opts.Border*opts.ModuleSize, back)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, domain.InternalError{Msg: "failed to serialize QR image", Err: err}
	}
	return buf.Bytes(), nil
}

// Code128PNG renders payload as a Code 128 barcode. Rendering options do
// not apply to the linear symbology; the charset check is the library's.
func Code128PNG(payload string) ([]byte, error) {
	if payload == "" {
		return nil, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}

	bc, err := code128.Encode(payload)
	if err != nil {
		return nil, domain.EncodingError{Msg: "payload is not encodable as Code 128", Err: err}
	}

	scaled, err := bbarcode.Scale(bc, bc.Bounds().Dx()*barScale, barcodeHeight)
	if err != nil {
		return nil, domain.EncodingError{Msg: "failed to scale barcode", Err: err}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, domain.InternalError{Msg: "failed to serialize barcode image", Err: err}
	}
	return buf.Bytes(), nil
}

func withQuietZone(symbol image.Image, margin int, back color.Color) image.Image {
	b := symbol.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*margin, b.Dy()+2*margin))
	draw.Draw(out, out.Bounds(), image.NewUniform(back), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(margin, margin, margin+b.Dx(), margin+b.Dy()), symbol, b.Min, draw.Src)
	return out
}
