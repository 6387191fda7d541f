package dungeon

import (
	"math"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/types"
)

// DrawLayer 绘制类别，按数值从小到大依次绘制
type DrawLayer int

const (
	LayerDecal DrawLayer = iota
	LayerChest
	LayerArrow
	LayerFireball
	LayerWall
	LayerPlayer
	LayerEnemy
	LayerPotion
	LayerCoin
	LayerAmmo
)

// 精灵键名（与 sprites.txt 中的文件名对应）
const (
	SpriteWall             = "wall"
	SpriteDoorOpen         = "castle_door_open"
	SpriteDoorClosed       = "castle_door_closed"
	SpriteArrow            = "arrow"
	SpriteFireball         = "fireball"
	SpriteChestClosed      = "chest_closed"
	SpriteChestOpened      = "chest_opened"
	SpritePlayerDead       = "player_dead"
	SpriteDemon            = "demon"
	SpriteDemonSlash       = "demon_slash"
	SpriteDemonDie1        = "demon_die_1"
	SpriteDemonDie2        = "demon_die_2"
	SpritePotion           = "potion"
	SpriteCoin             = "coin"
	SpriteAmmo             = "arrow_pack"
	SpriteControls         = "controls"
	spritePlayerPrefix     = "player_"
	spritePlayerStabPrefix = "player_stab_"
)

// DrawItem 一个待绘制的精灵（世界坐标，Y 轴向上）
type DrawItem struct {
	Layer   DrawLayer
	Sprite  string
	Texture int // 普通墙的贴图索引，其他精灵为 0

	X, Y          float64 // 中心点
	Width, Height float64
	Angle         float64 // 逆时针旋转角度（度）
}

// DrawList 按绘制顺序返回当前房间的所有精灵
func (s *Session) DrawList() []DrawItem {
	em := s.world.EM
	tick := s.world.State.Tick
	items := make([]DrawItem, 0, em.EntityCount())

	add := func(layer DrawLayer, id ecs.EntityID, sprite string, texture int, angle float64) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			return
		}
		item := DrawItem{Layer: layer, Sprite: sprite, Texture: texture, X: pos.X, Y: pos.Y, Angle: angle}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			item.Width, item.Height = col.Width, col.Height
		}
		items = append(items, item)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.DecalComponent](em) {
		d, _ := ecs.GetComponent[*components.DecalComponent](em, id)
		add(LayerDecal, id, SpriteArrow, 0, d.Angle)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ChestComponent](em) {
		c, _ := ecs.GetComponent[*components.ChestComponent](em, id)
		sprite := SpriteChestClosed
		if c.Opened {
			sprite = SpriteChestOpened
		}
		add(LayerChest, id, sprite, 0, 0)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ArrowComponent](em) {
		a, _ := ecs.GetComponent[*components.ArrowComponent](em, id)
		add(LayerArrow, id, SpriteArrow, 0, a.Angle)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.FireballComponent](em) {
		f, _ := ecs.GetComponent[*components.FireballComponent](em, id)
		add(LayerFireball, id, SpriteFireball, 0, f.Angle)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.WallComponent](em) {
		wc, _ := ecs.GetComponent[*components.WallComponent](em, id)
		add(LayerWall, id, wallSprite(wc), wc.Texture, 0)
	}
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](em, s.world.Player); ok {
		add(LayerPlayer, s.world.Player, playerSprite(pc, tick), 0, 0)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		add(LayerEnemy, id, enemySprite(ec), 0, ec.Angle)
	}

	// 拾取物按种类分层：药水、金币、箭袋
	pickups := ecs.GetEntitiesWith1[*components.PickupComponent](em)
	for _, kind := range []types.PickupKind{types.PickupPotion, types.PickupCoin, types.PickupAmmo} {
		for _, id := range pickups {
			p, _ := ecs.GetComponent[*components.PickupComponent](em, id)
			if p.Kind != kind {
				continue
			}
			layer, sprite := pickupSprite(kind)
			add(layer, id, sprite, 0, 0)
		}
	}

	return items
}

func wallSprite(wc *components.WallComponent) string {
	switch wc.Door {
	case types.DoorOpen:
		return SpriteDoorOpen
	case types.DoorClosed:
		return SpriteDoorClosed
	}
	return SpriteWall
}

// playerSprite 死亡 > 挥刀姿势 > 普通朝向
func playerSprite(pc *components.PlayerComponent, tick int) string {
	if !pc.Alive {
		return SpritePlayerDead
	}
	if pc.IsStabbing(tick) {
		return spritePlayerStabPrefix + pc.Facing.String()
	}
	return spritePlayerPrefix + pc.Facing.String()
}

func enemySprite(ec *components.EnemyComponent) string {
	switch ec.State {
	case components.EnemyLunge:
		return SpriteDemonSlash
	case components.EnemyDying1:
		return SpriteDemonDie1
	case components.EnemyDying2:
		return SpriteDemonDie2
	}
	return SpriteDemon
}

func pickupSprite(kind types.PickupKind) (DrawLayer, string) {
	switch kind {
	case types.PickupPotion:
		return LayerPotion, SpritePotion
	case types.PickupCoin:
		return LayerCoin, SpriteCoin
	}
	return LayerAmmo, SpriteAmmo
}

// HUD 界面显示数据
type HUD struct {
	Score           int
	HighScore       int
	HighScoreBeaten bool // 为 true 时只显示黄色的最高分
	Room            int

	Ammo   int
	Health int
	// HealthBarWidth 绿色血条宽度（红色底条固定 24）
	HealthBarWidth int

	Alive   bool
	Started bool // false 时显示操作说明

	PlayerX, PlayerY      float64
	ViewLeft, ViewBottom  float64
	ViewWidth, ViewHeight float64
}

// HealthBarBackWidth 血条底条宽度
const HealthBarBackWidth = 24

// healthBarWidth 每 4.16 点生命值一个像素，向上取整，不超过底条
func healthBarWidth(health int) int {
	if health <= 0 {
		return 0
	}
	w := int(math.Ceil(float64(health) / 4.16))
	if w > HealthBarBackWidth {
		w = HealthBarBackWidth
	}
	return w
}

// HUD 返回当前帧的界面数据
func (s *Session) HUD() HUD {
	gs := s.world.State
	cam := s.world.Config.Camera
	hud := HUD{
		Score:           gs.Score,
		HighScore:       gs.HighScore,
		HighScoreBeaten: gs.HighScoreBeaten,
		Room:            gs.Room,
		Started:         gs.Started,
		ViewLeft:        gs.ViewLeft,
		ViewBottom:      gs.ViewBottom,
		ViewWidth:       cam.ScrollWidth,
		ViewHeight:      cam.ScrollHeight,
	}

	em := s.world.EM
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](em, s.world.Player); ok {
		hud.Ammo = pc.Ammo
		hud.Alive = pc.Alive
	}
	if hp, ok := ecs.GetComponent[*components.HealthComponent](em, s.world.Player); ok {
		hud.Health = hp.CurrentHealth
		hud.HealthBarWidth = healthBarWidth(hp.CurrentHealth)
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.world.Player); ok {
		hud.PlayerX, hud.PlayerY = pos.X, pos.Y
	}
	return hud
}
