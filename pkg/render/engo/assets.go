// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-flight/pkg/render"
)

const fontURL = "goregular.ttf"

// Palette of the scene
var (
	SkyColor     = color.RGBA{173, 216, 230, 255}
	GridColor    = color.RGBA{0, 128, 0, 255}
	PlaneColor   = color.RGBA{255, 0, 0, 255}
	TextColor    = color.RGBA{0, 0, 0, 255}
	OKColor      = color.RGBA{0, 160, 0, 255}
	WarningColor = color.RGBA{220, 0, 0, 255}
)

// AssetManager handles loading the fonts used by the HUD
type AssetManager struct {
	fontSize float64
	fonts    map[render.Severity]*common.Font
}

// NewAssetManager creates a new asset manager
func NewAssetManager(fontSize float64) *AssetManager {
	return &AssetManager{
		fontSize: fontSize,
		fonts:    make(map[render.Severity]*common.Font),
	}
}

// Preload registers the embedded Go font with engo's file loader
func (am *AssetManager) Preload() error {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	return nil
}

// LoadAssets builds one font per HUD severity. It needs an OpenGL context.
func (am *AssetManager) LoadAssets() error {
	for _, severity := range []render.Severity{render.SeverityNormal, render.SeverityOK, render.SeverityWarning} {
		font := &common.Font{
			URL:  fontURL,
			FG:   SeverityColor(severity),
			Size: am.fontSize,
		}
		if err := font.CreatePreloaded(); err != nil {
			return fmt.Errorf("failed to create font: %w", err)
		}
		am.fonts[severity] = font
	}
	return nil
}

// Font returns the font for a severity, falling back to the normal one
func (am *AssetManager) Font(severity render.Severity) *common.Font {
	if font, ok := am.fonts[severity]; ok {
		return font
	}
	return am.fonts[render.SeverityNormal]
}

// SeverityColor returns the text colour used for severity
func SeverityColor(severity render.Severity) color.Color {
	switch severity {
	case render.SeverityOK:
		return OKColor
	case render.SeverityWarning:
		return WarningColor
	default:
		return TextColor
	}
}
