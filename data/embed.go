// Package data 嵌入游戏的静态配置文件
//
// 桌面端 (main.go) 和终端版 (cmd/minesweeper-tui) 都通过本包获取 embed.FS，
// 再交给 embedded.Init()，避免两个入口各自声明 //go:embed。
package data

import "embed"

// FS 包含 data/ 目录下的所有 YAML 配置
//
//go:embed *.yaml
var FS embed.FS
