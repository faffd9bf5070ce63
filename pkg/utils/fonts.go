package utils

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
	fontSourceErr  error

	fontFaceMu    sync.Mutex
	fontFaceCache = map[float64]*text.GoTextFace{}
)

// loadFontSource 解析内置的 Go Regular 字体，只执行一次
func loadFontSource() (*text.GoTextFaceSource, error) {
	fontSourceOnce.Do(func() {
		fontSource, fontSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if fontSourceErr != nil {
			fontSourceErr = fmt.Errorf("failed to create font source: %w", fontSourceErr)
		}
	})
	return fontSource, fontSourceErr
}

// LoadFont 返回指定字号的字体，按字号缓存
func LoadFont(size float64) (*text.GoTextFace, error) {
	fontFaceMu.Lock()
	defer fontFaceMu.Unlock()

	if face, ok := fontFaceCache[size]; ok {
		return face, nil
	}

	source, err := loadFontSource()
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fontFaceCache[size] = face
	return face, nil
}
