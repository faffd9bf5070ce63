package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// SceneFactory 场景工厂函数类型
// 根据玩家名和难度创建游戏场景，避免 game 包依赖 scenes 包
type SceneFactory func(player, difficulty string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene  Scene
	sceneFactory  SceneFactory
	quitRequested bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// StartGame 为指定玩家和难度创建游戏场景并切换过去
// 返回 false 表示工厂未设置或创建失败，当前场景保持不变
func (sm *SceneManager) StartGame(player, difficulty string) bool {
	entry := log.WithFields(logrus.Fields{"player": player, "difficulty": difficulty})

	if sm.sceneFactory == nil {
		entry.Error("scene factory not set")
		return false
	}

	scene := sm.sceneFactory(player, difficulty)
	if scene == nil {
		entry.Error("failed to create game scene")
		return false
	}

	sm.SwitchTo(scene)
	entry.Debug("game scene started")
	return true
}

// RequestQuit 请求在下一帧结束游戏循环
func (sm *SceneManager) RequestQuit() {
	sm.quitRequested = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
