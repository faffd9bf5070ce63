package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量单行文本的宽高，font 为 nil 时返回 0
func MeasureText(s string, font *text.GoTextFace) (float64, float64) {
	if font == nil {
		return 0, 0
	}
	return text.Measure(s, font, 0)
}

// DrawText 在 (x, y) 处绘制文本，坐标为文本左上角
func DrawText(screen *ebiten.Image, s string, font *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, font, op)
}

// DrawCenteredText 以 (cx, cy) 为中心绘制文本
func DrawCenteredText(screen *ebiten.Image, s string, font *text.GoTextFace, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, font, op)
}

// DrawTextLines 从 (x, y) 开始逐行绘制，行距为 lineHeight
func DrawTextLines(screen *ebiten.Image, lines []string, font *text.GoTextFace, x, y, lineHeight float64, clr color.Color) {
	for i, line := range lines {
		DrawText(screen, line, font, x, y+float64(i)*lineHeight, clr)
	}
}
