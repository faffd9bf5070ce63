// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载难度配置、打开持久化存储、
// 创建场景管理器，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"

	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/gonewx/minesweeper/pkg/logging"
	"github.com/gonewx/minesweeper/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
)

var log = logging.For("app")

// AppName gdata 存储目录名
const AppName = "minesweeper"

// Config 定义应用启动配置
type Config struct {
	// PlayerName 与 Difficulty 都非空时跳过菜单直接开局
	PlayerName string
	Difficulty string
	// MinesOverride 大于 0 时覆盖难度预设的地雷数
	MinesOverride int
	// Seed 非 nil 时使用固定种子布雷
	Seed *uint64
	// DifficultiesPath 难度配置的嵌入路径，为空时使用默认路径
	DifficultiesPath string
}

// OpenStorage 打开 gdata 存储，失败时返回 nil（降级为内存模式）
func OpenStorage(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.WithError(err).Warn("persistent storage unavailable, scores and settings will not be saved")
		return nil
	}
	return m
}

// NewServices 加载难度配置并创建排行榜、设置管理器
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewServices(cfg Config, storage *gdata.Manager) (*scenes.Services, error) {
	path := cfg.DifficultiesPath
	if path == "" {
		path = config.DefaultDifficultiesPath
	}
	difficulties, err := config.LoadDifficulties(path)
	if err != nil {
		return nil, fmt.Errorf("难度配置加载失败: %w", err)
	}

	if cfg.MinesOverride < 0 || cfg.MinesOverride >= config.GridRows*config.GridColumns {
		return nil, fmt.Errorf("%w: --mines %d", game.ErrTooManyMines, cfg.MinesOverride)
	}

	return &scenes.Services{
		Difficulties:  difficulties,
		Scores:        game.NewScoreManager(storage),
		Settings:      game.NewSettingsManager(storage),
		MinesOverride: cfg.MinesOverride,
		Seed:          cfg.Seed,
	}, nil
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config, services *scenes.Services) (*App, error) {
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(player, difficulty string) game.Scene {
		scene, err := scenes.NewGameScene(sceneManager, services, player, difficulty)
		if err != nil {
			log.WithError(err).Error("failed to create game scene")
			return nil
		}
		return scene
	})

	if cfg.PlayerName != "" && cfg.Difficulty != "" {
		if _, err := services.Difficulties.Get(cfg.Difficulty); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"player": cfg.PlayerName, "difficulty": cfg.Difficulty}).
			Debug("skipping menu")
		if !sceneManager.StartGame(cfg.PlayerName, cfg.Difficulty) {
			return nil, fmt.Errorf("failed to start game for %q", cfg.PlayerName)
		}
	} else {
		menu, err := scenes.NewMainMenuScene(sceneManager, services)
		if err != nil {
			return nil, fmt.Errorf("failed to create menu: %w", err)
		}
		sceneManager.SwitchTo(menu)
	}

	return &App{sceneManager: sceneManager}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），返回 ebiten.Termination 时结束游戏循环
func (a *App) Update() error {
	if a.sceneManager.QuitRequested() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 让当前场景保存设置
func (a *App) Shutdown() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Warn("settings were not saved on exit")
		}
	}
}
