package components

import (
	"image/color"

	"github.com/tanema/gween"
)

// BannerComponent 胜负横幅
//
// 横幅从窗口上方滑入，Tween 驱动中心 Y 坐标；动画结束后 Tween 置为 nil，
// Y 停在目标位置。
type BannerComponent struct {
	Text  string
	Color color.RGBA

	CenterX float64 // 横幅中心 X
	Y       float64 // 当前中心 Y

	Tween *gween.Tween // 滑入动画，nil 表示已到位
}
