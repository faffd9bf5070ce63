package utils

import "github.com/gonewx/minesweeper/pkg/config"

// MouseToGridCoords 将鼠标屏幕坐标转换为棋盘格子坐标
// 参数:
//   - mouseX, mouseY: 鼠标的屏幕坐标
//
// 返回:
//   - row: 行索引 (0-19)
//   - col: 列索引 (0-29)
//   - isValid: 是否在棋盘范围内，网格外的点击应忽略
func MouseToGridCoords(mouseX, mouseY int) (row, col int, isValid bool) {
	x := float64(mouseX)
	y := float64(mouseY)

	startX, startY, endX, endY := config.GetGridBounds()
	if x < startX || x >= endX || y < startY || y >= endY {
		return 0, 0, false
	}

	col = int((x - startX) / config.CellSize)
	row = int((y - startY) / config.CellSize)

	// 边界检查（防止浮点数计算误差导致的越界）
	col = clampInt(col, 0, config.GridColumns-1)
	row = clampInt(row, 0, config.GridRows-1)

	return row, col, true
}

// GridToScreenCoords 返回格子左上角的屏幕坐标
func GridToScreenCoords(row, col int) (x, y float64) {
	x = config.GridStartX + float64(col)*config.CellSize
	y = config.GridStartY + float64(row)*config.CellSize
	return x, y
}

// PointInRect 判断点是否落在矩形内（含左上边，不含右下边）
func PointInRect(px, py int, x, y, w, h float64) bool {
	fx, fy := float64(px), float64(py)
	return fx >= x && fx < x+w && fy >= y && fy < y+h
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
