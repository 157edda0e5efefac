package assets

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// FontManager parses a TTF once and caches faces per pixel size.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager parses the given TTF data.
func NewFontManager(ttf []byte) (*FontManager, error) {
	tt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontManager{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// NewDefaultFontManager loads the bundled Go Bold font.
func NewDefaultFontManager() (*FontManager, error) {
	return NewFontManager(gobold.TTF)
}

// Face returns a face of the given size, creating it on first use.
// Размер задаётся в пикселях, поэтому DPI = 72.
func (m *FontManager) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Разобранный шрифт уже валиден, ошибка тут означает битый размер.
		log.Fatalf("create font face of size %v: %v", size, err)
	}
	m.faces[size] = face
	return face
}

// Cleanup closes all cached faces.
func (m *FontManager) Cleanup() {
	for size, face := range m.faces {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: closing font face %v: %v", size, err)
		}
		delete(m.faces, size)
	}
}
