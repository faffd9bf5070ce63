package components

import "github.com/gonewx/minesweeper/pkg/game"

// BoardComponent 棋盘实体，持有当前这局游戏
//
// 棋盘的全部状态都在 Session 里，组件只负责把它挂到 ECS 上，
// 供输入系统和渲染系统查询。
type BoardComponent struct {
	Session *game.Session
}
