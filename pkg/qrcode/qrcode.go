package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/skip2/go-qrcode"
)

type Config struct {
	Content       string
	LogoPath      string
	Size          int
	LogoScale     float64
	Background    color.Color
	Foreground    color.Color
	RecoveryLevel int
	QuietZone     int
}

// Generate renders the QR code as a PNG, with a quiet zone around the
// matrix and an optional centered logo.
func (c *Config) Generate() ([]byte, error) {
	code, err := qrcode.New(c.Content, qrcode.RecoveryLevel(c.RecoveryLevel))
	if err != nil {
		return nil, err
	}
	code.BackgroundColor = toRGBA(c.Background)
	code.ForegroundColor = toRGBA(c.Foreground)

	totalSize := c.Size + 2*c.QuietZone
	dc := gg.NewContext(totalSize, totalSize)
	dc.SetColor(c.Background)
	dc.Clear()
	dc.DrawImage(code.Image(c.Size), c.QuietZone, c.QuietZone)

	if c.LogoPath != "" {
		if err := c.drawLogo(dc, totalSize); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Config) drawLogo(dc *gg.Context, totalSize int) error {
	f, err := os.Open(c.LogoPath)
	if err != nil {
		return err
	}
	defer f.Close()

	logo, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	logoSize := uint(float64(c.Size) * c.LogoScale)
	logo = resize.Resize(logoSize, logoSize, logo, resize.Lanczos3)

	center := float64(totalSize) / 2
	// Clear a circle behind the logo so it stays scannable.
	dc.SetColor(c.Background)
	dc.DrawCircle(center, center, float64(logoSize)/2+4)
	dc.Fill()
	dc.DrawImageAnchored(logo, totalSize/2, totalSize/2, 0.5, 0.5)
	return nil
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
