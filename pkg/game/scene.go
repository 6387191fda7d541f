package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen driven by the ebiten loop.
type Scene interface {
	// Update advances the scene by one fixed step.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在窗口关闭时做收尾工作
//
// 实现此接口的场景会在 SceneManager.Close 时被调用，
// 例如把最高分和设置写回存储。
type Closer interface {
	Close() error
}
