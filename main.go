package main

import (
	"fmt"
	"os"

	"github.com/gonewx/minesweeper/data"
	"github.com/gonewx/minesweeper/pkg/app"
	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/embedded"
	"github.com/gonewx/minesweeper/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	name := pflag.StringP("name", "n", "", "player name (with --difficulty, skips the menu)")
	difficulty := pflag.StringP("difficulty", "d", "", "difficulty preset: easy, medium or hard")
	mines := pflag.Int("mines", 0, "override the preset mine count")
	seed := pflag.Uint64("seed", 0, "seed for mine placement (0 = random)")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	logFile := pflag.String("log-file", "", "also write JSON logs to this rotating file")
	pflag.Parse()

	if err := logging.Setup(logging.Options{Verbose: *verbose, LogFile: *logFile}); err != nil {
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
		logrus.WithError(err).Fatal("failed to initialize")
	}

	gameApp, err := app.NewApp(cfg, services)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize")
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Minesweeper")
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		logrus.WithError(err).Fatal("game loop exited with error")
	}
}
