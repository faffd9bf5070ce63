package components

// StatusBoxComponent 状态框：玩家、难度、地雷数、旗子数、剩余格子数
type StatusBoxComponent struct {
	Lines []string
}
