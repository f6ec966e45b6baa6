// internal/assets/fonts.go
package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the interface font faces.
type Fonts struct {
	HUD   font.Face
	Title font.Face
}

// LoadFonts загружает шрифт из файла path. Пустой путь означает
// встроенный Go Regular.
func LoadFonts(path string, hudSize, titleSize float64) (*Fonts, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %q: %w", path, err)
		}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	hud, err := newFace(tt, hudSize)
	if err != nil {
		return nil, err
	}
	title, err := newFace(tt, titleSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{HUD: hud, Title: title}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face of size %v: %w", size, err)
	}
	return face, nil
}
