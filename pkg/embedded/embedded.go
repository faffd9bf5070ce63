// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在 data 包（data/embed.go）。
// 本包提供包装函数，让其他包可以按 "data/..." 路径访问嵌入的配置。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// resolve 标准化路径并去掉 "data/" 前缀
func resolve(path string) (string, error) {
	if !initialized {
		return "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, dataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return strings.TrimPrefix(path, dataPrefix), nil
}

// ReadFile 读取嵌入文件的全部内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	name, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, name)
}
