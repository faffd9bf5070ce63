package components

// BoxComponent 带边框的矩形区域（信息框、面板、按钮的外框）
type BoxComponent struct {
	Width  float64
	Height float64
}
