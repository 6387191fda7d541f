package scenes

import (
	"log"

	"github.com/decker502/dungeon/pkg/dungeon"
	"github.com/decker502/dungeon/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource 一帧内的按键事件
// 抽象出来便于测试，运行时由 ebitenInput 提供
type InputSource interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
	AnyKeyJustPressed() bool
	MouseJustPressed() bool
}

type ebitenInput struct{}

func (ebitenInput) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenInput) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

func (ebitenInput) AnyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}

func (ebitenInput) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// moveKeys 方向键和 WASD
var moveKeys = []struct {
	key ebiten.Key
	dir types.Direction
}{
	{ebiten.KeyArrowUp, types.DirectionUp},
	{ebiten.KeyW, types.DirectionUp},
	{ebiten.KeyArrowDown, types.DirectionDown},
	{ebiten.KeyS, types.DirectionDown},
	{ebiten.KeyArrowLeft, types.DirectionLeft},
	{ebiten.KeyA, types.DirectionLeft},
	{ebiten.KeyArrowRight, types.DirectionRight},
	{ebiten.KeyD, types.DirectionRight},
}

var (
	shootKeys   = []ebiten.Key{ebiten.KeySpace}
	stabKeys    = []ebiten.Key{ebiten.KeyX, ebiten.KeyShiftLeft, ebiten.KeyAltLeft}
	restartKeys = []ebiten.Key{ebiten.KeyR}
)

// controlsHelp 没有 controls 贴图时显示的文字说明
var controlsHelp = []string{
	"WASD / Arrows: move",
	"Space / Click: shoot",
	"X / Shift / Alt: stab",
	"R: restart  M: mute",
	"",
	"Press any key",
}

// applyInput 把一帧的按键事件转换成 Session 输入
//
// 任意按键都会开始游戏；鼠标点击在开始前只负责开始游戏。
func applyInput(session *dungeon.Session, in InputSource) {
	for _, k := range restartKeys {
		if in.JustPressed(k) {
			if err := session.Restart(); err != nil {
				log.Printf("[DungeonScene] Error: restart failed: %v", err)
				return
			}
		}
	}

	if in.AnyKeyJustPressed() {
		session.Start()
	}

	for _, k := range shootKeys {
		if in.JustPressed(k) {
			session.Attack()
		}
	}
	for _, k := range stabKeys {
		if in.JustPressed(k) {
			session.Stab()
		}
	}
	for _, mk := range moveKeys {
		if in.JustPressed(mk.key) {
			session.Move(mk.dir)
		}
		if in.JustReleased(mk.key) {
			session.Stop(mk.dir)
		}
	}

	if in.MouseJustPressed() {
		session.Click()
	}
}
