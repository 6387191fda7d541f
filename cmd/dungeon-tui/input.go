package main

import (
	"github.com/decker502/dungeon/pkg/dungeon"
	"github.com/decker502/dungeon/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// holdTicks 终端没有按键松开事件，按下方向键后保持移动的帧数
// 终端的按键重复会不断刷新期限
const holdTicks = 30

// action 一次按键对应的操作
type action int

const (
	actionNone action = iota
	actionMove
	actionShoot
	actionStab
	actionRestart
	actionMute
	actionQuit
)

// keyAction 把 tcell 按键翻译成操作；actionMove 时 dir 有效
func keyAction(ev *tcell.EventKey) (action, types.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return actionMove, types.DirectionUp
	case tcell.KeyDown:
		return actionMove, types.DirectionDown
	case tcell.KeyLeft:
		return actionMove, types.DirectionLeft
	case tcell.KeyRight:
		return actionMove, types.DirectionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyRune:
	default:
		return actionNone, 0
	}

	switch ev.Rune() {
	case 'w', 'W':
		return actionMove, types.DirectionUp
	case 's', 'S':
		return actionMove, types.DirectionDown
	case 'a', 'A':
		return actionMove, types.DirectionLeft
	case 'd', 'D':
		return actionMove, types.DirectionRight
	case ' ':
		return actionShoot, 0
	case 'x', 'X':
		return actionStab, 0
	case 'r', 'R':
		return actionRestart, 0
	case 'm', 'M':
		return actionMute, 0
	case 'q', 'Q':
		return actionQuit, 0
	}
	return actionNone, 0
}

// controller 把离散的按键事件变成 Session 的按下/松开输入
type controller struct {
	session *dungeon.Session
	onMute  func() // 可为 nil
	tick    int
	held    map[types.Direction]int // 方向 -> 自动松开的帧
}

func newController(s *dungeon.Session) *controller {
	return &controller{session: s, held: make(map[types.Direction]int)}
}

// handle 处理一次按键，返回 false 表示退出
func (c *controller) handle(ev *tcell.EventKey) (bool, error) {
	act, dir := keyAction(ev)
	switch act {
	case actionQuit:
		return false, nil
	case actionMove:
		// 按键重复也要重新施加速度，换房间后新玩家从静止开始
		c.session.Move(dir)
		c.held[dir] = c.tick + holdTicks
	case actionShoot:
		c.session.Attack()
	case actionStab:
		c.session.Stab()
	case actionRestart:
		c.releaseAll()
		return true, c.session.Restart()
	case actionMute:
		if c.onMute != nil {
			c.onMute()
		}
	default:
		c.session.Start()
	}
	return true, nil
}

// update 每帧调用，松开超过期限的方向键
func (c *controller) update() {
	c.tick++
	for dir, deadline := range c.held {
		if c.tick >= deadline {
			delete(c.held, dir)
			c.session.Stop(dir)
		}
	}
}

func (c *controller) releaseAll() {
	for dir := range c.held {
		delete(c.held, dir)
		c.session.Stop(dir)
	}
}
