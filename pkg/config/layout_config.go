package config

// 布局配置常量
// 本文件定义了游戏窗口的布局参数，包括网格系统和底部信息框的位置
//
// 窗口布局示意：
//
//	+-----------------------------------------------------+
//	|                   MARGIN = 50                       |
//	|   +---------------------------------------------+   |
//	|   |               Grid of Cells                 |   |
//	|   |       600 = GridColumns * CellSize wide     |   |
//	|   |       400 = GridRows * CellSize tall        |   |
//	|   +---------------------------------------------+   |
//	|                     SPACE = 25                      |
//	|   +------------+   +-------+   +----------------+   |
//	|   | Status Box |   | Timer |   |    Help Box    |   |
//	|   +------------+   +-------+   +----------------+   |
//	|                   MARGIN = 50                       |
//	+-----------------------------------------------------+

// Grid Configuration (网格配置)
const (
	// GridRows 是棋盘的行数
	GridRows = 20

	// GridColumns 是棋盘的列数
	GridColumns = 30

	// CellSize 是每个格子的边长（像素）
	CellSize = 20.0

	// CellBevel 是格子凸起/凹陷边框的宽度（像素）
	CellBevel = 4.0

	// GridWidth 是网格区域的宽度 = GridColumns * CellSize
	GridWidth = GridColumns * CellSize

	// GridHeight 是网格区域的高度 = GridRows * CellSize
	GridHeight = GridRows * CellSize
)

// Window Configuration (窗口配置)
const (
	// Margin 是画布四周的留白
	Margin = 50.0

	// Space 是界面元素之间的间距
	Space = 25.0

	// GameWindowWidth = 2*Margin + GridWidth
	GameWindowWidth = 700

	// GameWindowHeight = 2*Margin + Space + GridHeight + 信息框高度
	GameWindowHeight = 600

	// GridStartX, GridStartY 是网格左上角的屏幕坐标
	GridStartX = Margin
	GridStartY = Margin
)

// Info Box Configuration (底部信息框配置)
const (
	StatusBoxWidth  = 200.0
	StatusBoxHeight = 75.0

	TimerWidth  = 100.0
	TimerHeight = 75.0

	HelpBoxWidth  = 250.0
	HelpBoxHeight = 75.0

	// 三个信息框底部对齐
	StatusBoxX = Margin
	StatusBoxY = GameWindowHeight - Margin - StatusBoxHeight

	TimerX = Margin + StatusBoxWidth + Space
	TimerY = GameWindowHeight - Margin - TimerHeight

	HelpBoxX = GameWindowWidth - Margin - HelpBoxWidth
	HelpBoxY = GameWindowHeight - Margin - HelpBoxHeight
)

// Banner Configuration (胜负横幅配置)
const (
	// BannerCenterX 横幅中心 X（网格水平中心）
	BannerCenterX = Margin + GridWidth/2

	// BannerTargetY 横幅最终停留的中心 Y
	BannerTargetY = Margin / 2

	// BannerStartY 横幅滑入动画的起点（窗口上方）
	BannerStartY = -Margin

	// BannerSlideDuration 横幅滑入时长（秒）
	BannerSlideDuration = 0.6

	BannerFontSize = 24.0
)

// GetGridBounds 返回网格的屏幕坐标边界
// 返回值：startX, startY, endX, endY
func GetGridBounds() (float64, float64, float64, float64) {
	return GridStartX, GridStartY, GridStartX + GridWidth, GridStartY + GridHeight
}
