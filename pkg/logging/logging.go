// Package logging 配置全局 logrus 日志
//
// 各个包通过 For("Board") 之类的调用获取带 component 字段的日志条目，
// 输出形如：level=debug msg="mines deployed" component=Board count=60
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// Options 日志配置
type Options struct {
	// Verbose 启用 debug 级别日志，否则只输出警告及以上
	Verbose bool
	// LogFile 不为空时额外写入滚动日志文件（JSON 格式）
	LogFile string
	// Output 控制台输出目标，为 nil 时保持 logrus 默认（stderr）
	Output io.Writer
}

// 滚动日志文件参数
const (
	logFileMaxSizeMB  = 5
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// Setup 根据配置初始化全局 logger
func Setup(opts Options) error {
	logger := logrus.StandardLogger()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}

	level := logrus.WarnLevel
	if opts.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if opts.LogFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.LogFile,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("failed to create log file hook for %s: %w", opts.LogFile, err)
	}
	logger.AddHook(hook)

	return nil
}

// For 返回带 component 字段的日志条目
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
