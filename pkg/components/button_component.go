package components

// ButtonComponent 按钮组件（ECS 架构）
// 纯数据组件：文字、尺寸、状态、回调
//
// 位置由 PositionComponent 提供。
type ButtonComponent struct {
	Text string

	Width  float64
	Height float64

	State    UIState
	Enabled  bool // 禁用时不响应点击
	Selected bool // 选中状态（如当前难度），渲染时高亮

	OnClick func()
}

// UIState 按钮的交互状态
type UIState int

const (
	UINormal   UIState = iota // 默认
	UIHovered                 // 鼠标悬停
	UIClicked                 // 按下
	UIDisabled                // 禁用
)
