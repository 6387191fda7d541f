package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/dungeon/pkg/dungeon"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 界面颜色
var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorScore      = color.RGBA{0, 255, 0, 255}
	colorHighScore  = color.RGBA{255, 255, 0, 255}
	colorHealthBack = color.RGBA{255, 0, 0, 255}
	colorHealth     = color.RGBA{0, 255, 0, 255}
	colorDeath      = color.RGBA{200, 20, 20, 255}
)

// fallbackColors 贴图缺失时各类精灵的纯色方块
var fallbackColors = map[dungeon.DrawLayer]color.RGBA{
	dungeon.LayerDecal:    {150, 120, 60, 255},
	dungeon.LayerChest:    {160, 100, 30, 255},
	dungeon.LayerArrow:    {220, 220, 220, 255},
	dungeon.LayerFireball: {255, 120, 0, 255},
	dungeon.LayerWall:     {90, 90, 110, 255},
	dungeon.LayerPlayer:   {60, 140, 255, 255},
	dungeon.LayerEnemy:    {200, 30, 30, 255},
	dungeon.LayerPotion:   {230, 60, 200, 255},
	dungeon.LayerCoin:     {255, 215, 0, 255},
	dungeon.LayerAmmo:     {180, 140, 90, 255},
}

// 操作说明面板尺寸
const (
	controlsWidth  = 150
	controlsHeight = 200
)

// DungeonScene 地牢游戏画面
// 把键盘鼠标输入翻译成 Session 的输入方法，按 DrawList 绘制精灵
type DungeonScene struct {
	session         *dungeon.Session
	resourceManager *game.ResourceManager // 可为 nil，全部使用纯色方块
	input           InputSource

	// pixel 1x1 白色图片，缩放并着色后用作缺失贴图的占位
	pixel *ebiten.Image

	// textCache 彩色文字的离屏图片，按内容缓存
	textCache map[string]*ebiten.Image
}

var (
	_ game.Scene  = (*DungeonScene)(nil)
	_ game.Closer = (*DungeonScene)(nil)
)

// maxCachedTexts 分数变化频繁，超过上限时整体清空
const maxCachedTexts = 32

// NewDungeonScene 创建地牢场景
func NewDungeonScene(session *dungeon.Session, rm *game.ResourceManager) *DungeonScene {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &DungeonScene{
		session:         session,
		resourceManager: rm,
		input:           ebitenInput{},
		pixel:           pixel,
		textCache:       make(map[string]*ebiten.Image),
	}
}

// Update 处理输入并推进一帧
func (s *DungeonScene) Update(deltaTime float64) {
	applyInput(s.session, s.input)
	if err := s.session.Update(); err != nil {
		log.Printf("[DungeonScene] Error: %v", err)
	}
}

// Close 窗口关闭时记录最终成绩
func (s *DungeonScene) Close() error {
	gs := s.session.State()
	log.Printf("[DungeonScene] 退出：房间 %d，分数 %d，最高分 %d", gs.Room, gs.Score, gs.HighScore)
	return nil
}

// Layout 逻辑屏幕尺寸等于视口尺寸
func (s *DungeonScene) Layout() (int, int) {
	cam := s.session.Config().Camera
	return int(cam.ScrollWidth), int(cam.ScrollHeight)
}

// Draw 绘制精灵、血条和文字
func (s *DungeonScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	hud := s.session.HUD()

	for _, item := range s.session.DrawList() {
		s.drawItem(screen, item, hud)
	}

	s.drawHUD(screen, hud)
}

// toScreen 世界坐标（Y 轴向上）转换为屏幕坐标（Y 轴向下）
func toScreen(x, y float64, hud dungeon.HUD) (float64, float64) {
	return utils.WorldToScreen(x, y, hud.ViewLeft, hud.ViewBottom, hud.ViewHeight)
}

// visible 精灵是否落在视口内（留出一个精灵的余量）
func visible(item dungeon.DrawItem, hud dungeon.HUD) bool {
	sx, sy := toScreen(item.X, item.Y, hud)
	margin := math.Max(item.Width, item.Height) + 32
	return sx > -margin && sx < hud.ViewWidth+margin && sy > -margin && sy < hud.ViewHeight+margin
}

func (s *DungeonScene) image(item dungeon.DrawItem) *ebiten.Image {
	if s.resourceManager == nil {
		return nil
	}
	if item.Layer == dungeon.LayerWall && item.Sprite == dungeon.SpriteWall {
		return s.resourceManager.WallTexture(item.Texture)
	}
	return s.resourceManager.Sprite(item.Sprite)
}

func (s *DungeonScene) drawItem(screen *ebiten.Image, item dungeon.DrawItem, hud dungeon.HUD) {
	if !visible(item, hud) {
		return
	}
	sx, sy := toScreen(item.X, item.Y, hud)

	img := s.image(item)
	op := &ebiten.DrawImageOptions{}
	w, h := item.Width, item.Height
	if img == nil {
		img = s.pixel
		op.GeoM.Scale(w, h)
		op.ColorScale.ScaleWithColor(fallbackColors[item.Layer])
	} else {
		b := img.Bounds()
		w, h = float64(b.Dx()), float64(b.Dy())
	}

	// 以中心点旋转；角度为逆时针，屏幕坐标系下取反
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(-item.Angle * math.Pi / 180)
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(img, op)
}

func (s *DungeonScene) drawHUD(screen *ebiten.Image, hud dungeon.HUD) {
	px, py := toScreen(hud.PlayerX, hud.PlayerY, hud)

	// 分数；刷新最高分后只显示最高分
	if hud.HighScoreBeaten {
		s.drawText(screen, fmt.Sprintf("High Score: %d", hud.HighScore), 8, 8, colorHighScore)
	} else {
		s.drawText(screen, fmt.Sprintf("Score: %d (%d)", hud.Score, hud.HighScore), 8, 8, colorScore)
	}

	if hud.Alive {
		s.drawText(screen, fmt.Sprintf("Arrows: %d", hud.Ammo), 8, int(hud.ViewHeight)-20, color.White)

		// 血条在玩家脚下 16 像素处，绿色部分左对齐
		back := float32(dungeon.HealthBarBackWidth)
		x := float32(px) - back/2
		y := float32(py) + 16 - 2
		vector.DrawFilledRect(screen, x, y, back, 4, colorHealthBack, false)
		vector.DrawFilledRect(screen, x, y, float32(hud.HealthBarWidth), 4, colorHealth, false)
	} else {
		s.drawText(screen, "You died!", int(px)-40, int(py)-20, colorDeath)
		s.drawText(screen, "Press R To Restart", int(px)-60, int(py)+20, colorDeath)
	}

	if !hud.Started {
		s.drawControls(screen, px, py)
	}
}

// drawControls 开始前在玩家位置显示操作说明
func (s *DungeonScene) drawControls(screen *ebiten.Image, px, py float64) {
	if s.resourceManager != nil {
		if img := s.resourceManager.Sprite(dungeon.SpriteControls); img != nil {
			b := img.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(controlsWidth/float64(b.Dx()), controlsHeight/float64(b.Dy()))
			op.GeoM.Translate(px-controlsWidth/2, py-controlsHeight/2)
			screen.DrawImage(img, op)
			return
		}
	}

	left := int(px) - controlsWidth/2
	top := int(py) - controlsHeight/2
	vector.DrawFilledRect(screen, float32(left), float32(top), controlsWidth, controlsHeight, color.RGBA{0, 0, 0, 200}, false)
	for i, line := range controlsHelp {
		ebitenutil.DebugPrintAt(screen, line, left+6, top+6+i*16)
	}
}

// drawText 调试字体只有白色，其他颜色先画到临时图片再着色
func (s *DungeonScene) drawText(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	if clr == color.White {
		ebitenutil.DebugPrintAt(screen, str, x, y)
		return
	}
	tmp, ok := s.textCache[str]
	if !ok {
		if len(s.textCache) >= maxCachedTexts {
			for k, img := range s.textCache {
				img.Deallocate()
				delete(s.textCache, k)
			}
		}
		tmp = ebiten.NewImage(len(str)*6+2, 16)
		ebitenutil.DebugPrintAt(tmp, str, 0, 0)
		s.textCache[str] = tmp
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(clr)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(tmp, op)
}
