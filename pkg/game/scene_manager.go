package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// Only the current scene's Update and Draw are called.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene.
// 被替换的场景如果实现了 Closer 会先被关闭
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		if err := closeScene(sm.currentScene); err != nil {
			log.Printf("[SceneManager] Warning: failed to close %T: %v", sm.currentScene, err)
		}
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] 切换到场景 %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Close 关闭当前场景（窗口关闭时调用）
func (sm *SceneManager) Close() error {
	if sm.currentScene == nil {
		return nil
	}
	return closeScene(sm.currentScene)
}

func closeScene(scene Scene) error {
	if c, ok := scene.(Closer); ok {
		return c.Close()
	}
	return nil
}
