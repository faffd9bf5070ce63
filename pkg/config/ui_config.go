package config

import "image/color"

// UI 颜色与字体配置

// 调色板（与经典扫雷配色一致）
var (
	ColorBackground = color.RGBA{R: 64, G: 64, B: 64, A: 255}    // 深灰背景
	ColorCellHidden = color.RGBA{R: 128, G: 128, B: 128, A: 255} // 未翻开格子
	ColorCellSafe   = color.RGBA{R: 0, G: 200, B: 0, A: 255}     // 翻开的安全格子
	ColorCellMine   = color.RGBA{R: 255, G: 0, B: 0, A: 255}     // 翻开的地雷
	ColorExploded   = color.RGBA{R: 139, G: 0, B: 0, A: 255}     // 踩中的那颗地雷
	ColorFlag       = color.RGBA{R: 255, G: 215, B: 0, A: 255}   // 旗帜标记
	ColorBorder     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorBoxFill    = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	ColorText       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorTextLight  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorWinBanner  = color.RGBA{R: 0, G: 160, B: 0, A: 255}
	ColorLoseBanner = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	ColorPanel      = color.RGBA{R: 0, G: 0, B: 0, A: 200}

	// 凸起/凹陷边框的高光与阴影
	ColorBevelLight = color.RGBA{R: 255, G: 255, B: 255, A: 140}
	ColorBevelDark  = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

// NeighborCountColor 返回邻居地雷数的文字颜色
// 1 为黑色，2 为蓝色，3 及以上为红色
func NeighborCountColor(count int) color.RGBA {
	switch {
	case count <= 1:
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	case count == 2:
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	}
}

// 字体大小
const (
	CellFontSize  = 12.0
	BoxFontSize   = 12.0
	TimerFontSize = 28.0
	TitleFontSize = 32.0
)

// 菜单布局
const (
	MenuTitleY        = 90.0
	MenuInputX        = 200.0
	MenuInputY        = 180.0
	MenuInputWidth    = 300.0
	MenuInputHeight   = 36.0
	MenuButtonWidth   = 160.0
	MenuButtonHeight  = 44.0
	MenuButtonSpacing = 20.0
	MenuButtonY       = 280.0
	MenuNameMaxLength = 16
)
