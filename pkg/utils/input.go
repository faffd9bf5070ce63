// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerClick 一次刚发生的点击
type PointerClick struct {
	X, Y   int
	Button ebiten.MouseButton
}

// clickButtons 检测顺序：左键优先
var clickButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// JustClicked 返回本帧刚按下的鼠标按键
// 触摸按下视为左键点击
func JustClicked() (PointerClick, bool) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerClick{X: x, Y: y, Button: ebiten.MouseButtonLeft}, true
	}

	for _, b := range clickButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			return PointerClick{X: x, Y: y, Button: b}, true
		}
	}
	return PointerClick{}, false
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// TypedRunes 返回本帧输入的字符
func TypedRunes() []rune {
	return ebiten.AppendInputChars(nil)
}

// KeyRepeat 判断按键是否应在本帧触发
// 第 1 帧立即响应，按住 30 帧后每 3 帧响应一次
func KeyRepeat(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}
