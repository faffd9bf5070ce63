// minesweeper-tui 在终端中运行扫雷
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gonewx/minesweeper/data"
	"github.com/gonewx/minesweeper/pkg/app"
	"github.com/gonewx/minesweeper/pkg/embedded"
	"github.com/gonewx/minesweeper/pkg/logging"
	"github.com/gonewx/minesweeper/pkg/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	name := pflag.StringP("name", "n", "player", "player name")
	difficulty := pflag.StringP("difficulty", "d", "easy", "difficulty preset: easy, medium or hard")
	mines := pflag.Int("mines", 0, "override the preset mine count")
	seed := pflag.Uint64("seed", 0, "seed for mine placement (0 = random)")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	logFile := pflag.String("log-file", "", "write JSON logs to this rotating file")
	pflag.Parse()

	// 终端被界面占用，控制台日志只会破坏画面
	if err := logging.Setup(logging.Options{Verbose: *verbose, LogFile: *logFile, Output: io.Discard}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	embedded.Init(data.FS)

	cfg := app.Config{
		PlayerName:    *name,
		Difficulty:    *difficulty,
		MinesOverride: *mines,
	}
	if pflag.CommandLine.Changed("seed") && *seed != 0 {
		cfg.Seed = seed
	}

	services, err := app.NewServices(cfg, app.OpenStorage(app.AppName))
	if err != nil {
		fatal(err)
	}

	session, err := services.NewSession(cfg.PlayerName, cfg.Difficulty)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var scores tui.ScoreSource
	if services.Scores != nil {
		scores = services.Scores
	}
	if err := tui.New(session, scores).Run(ctx); err != nil {
		logrus.WithError(err).Error("terminal ui exited with error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(err error) {
	logrus.WithError(err).Error("failed to initialize")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
