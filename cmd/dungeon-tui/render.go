package main

import (
	"fmt"

	"github.com/decker502/dungeon/pkg/dungeon"
	"github.com/decker502/dungeon/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// 终端画面布局：第 0 行状态栏，最后一行提示，中间是地图
const (
	hudRows    = 1
	footerRows = 1
)

var (
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDoor     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDead     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleChest    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleArrow    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleDecal    = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleFireball = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	stylePotion   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleCoin     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAmmo     = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleScore    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHigh     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// glyph 精灵在终端中的字符和样式
func glyph(item dungeon.DrawItem) (rune, tcell.Style) {
	switch item.Sprite {
	case dungeon.SpriteDoorOpen:
		return '>', styleDoor
	case dungeon.SpriteDoorClosed:
		return '|', styleDoor
	case dungeon.SpritePlayerDead:
		return 'x', styleDead
	case dungeon.SpriteDemonDie1, dungeon.SpriteDemonDie2:
		return 'd', styleEnemy
	case dungeon.SpriteChestOpened:
		return '_', styleChest
	}

	switch item.Layer {
	case dungeon.LayerDecal:
		return '.', styleDecal
	case dungeon.LayerChest:
		return '=', styleChest
	case dungeon.LayerArrow:
		return arrowRune(item.Angle), styleArrow
	case dungeon.LayerFireball:
		return '*', styleFireball
	case dungeon.LayerWall:
		return '#', styleWall
	case dungeon.LayerPlayer:
		return '@', stylePlayer
	case dungeon.LayerEnemy:
		return 'D', styleEnemy
	case dungeon.LayerPotion:
		return '!', stylePotion
	case dungeon.LayerCoin:
		return '$', styleCoin
	}
	return '^', styleAmmo
}

// arrowRune 按飞行角度选择字符（0 度向上，逆时针）
func arrowRune(angle float64) rune {
	a := int(angle) % 180
	if a < 0 {
		a += 180
	}
	if a >= 45 && a < 135 {
		return '-'
	}
	return '|'
}

// renderer 把 Session 画到 tcell 屏幕上，一个格子对应一个字符
type renderer struct {
	screen tcell.Screen
}

// mapOrigin 以玩家所在格子为中心的地图窗口
// 返回窗口左上角对应的网格列和行（行号 Y 轴向上）
func mapOrigin(hud dungeon.HUD, cellSize float64, cols, rows int) (left, top int) {
	pc, pr := utils.WorldToCell(hud.PlayerX, hud.PlayerY, cellSize)
	return pc - cols/2, pr + rows/2
}

func (r *renderer) draw(s *dungeon.Session) {
	r.screen.Clear()
	width, height := r.screen.Size()
	rows := height - hudRows - footerRows
	if width <= 0 || rows <= 0 {
		r.screen.Show()
		return
	}

	hud := s.HUD()
	cellSize := s.Config().Grid.CellSize
	left, top := mapOrigin(hud, cellSize, width, rows)

	for _, item := range s.DrawList() {
		col, row := utils.WorldToCell(item.X, item.Y, cellSize)
		x, y := col-left, hudRows+top-row
		if x < 0 || x >= width || y < hudRows || y >= hudRows+rows {
			continue
		}
		ch, style := glyph(item)
		r.screen.SetContent(x, y, ch, nil, style)
	}

	r.drawHUD(hud, width, height)
	r.screen.Show()
}

func (r *renderer) drawHUD(hud dungeon.HUD, width, height int) {
	var status string
	style := styleScore
	if hud.HighScoreBeaten {
		status = fmt.Sprintf("High Score: %d", hud.HighScore)
		style = styleHigh
	} else {
		status = fmt.Sprintf("Score: %d (%d)", hud.Score, hud.HighScore)
	}
	status += fmt.Sprintf("  Room: %d  Arrows: %d  Health: %d", hud.Room, hud.Ammo, hud.Health)
	drawString(r.screen, 0, 0, width, status, style)

	footer := "arrows/WASD move  space shoot  x stab  r restart  m mute  q quit"
	switch {
	case !hud.Alive:
		footer = "You died! Press R To Restart"
		style = styleDead
	case !hud.Started:
		footer = "press any key to start  " + footer
		style = styleHelp
	default:
		style = styleHelp
	}
	drawString(r.screen, 0, height-1, width, footer, style)
}

func drawString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= width {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
