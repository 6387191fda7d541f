// Package dungeon 把地图生成、实体和各个系统组合成一局可玩的游戏
//
// Session 不依赖任何渲染或输入库：ebiten 场景和终端前端都只通过
// 输入方法（Move/Stop/Attack/...）驱动它，再通过 DrawList/HUD 读取画面数据。
package dungeon

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/mapgen"
	"github.com/decker502/dungeon/pkg/systems"
	"github.com/decker502/dungeon/pkg/types"
)

// Session 一局游戏
type Session struct {
	world     *systems.World
	grid      *mapgen.Grid
	generator *mapgen.RoomGenerator
	room      *mapgen.Room

	projectiles *systems.ProjectileSystem
	enemies     *systems.EnemySystem
	movement    *systems.MovementSystem
	players     *systems.PlayerSystem
	collisions  *systems.CollisionSystem
	level       *systems.LevelSystem
	camera      *systems.CameraSystem
	score       *systems.ScoreSystem
}

// NewSession 创建一局游戏并生成第一个房间
//
// 参数:
//   - cfg: 地牢配置
//   - rng: 随机源，地图生成和战斗共用（固定种子可复现整局）
//   - sound: 音效播放器，nil 表示静音
//   - store: 最高分存储，nil 表示不持久化
func NewSession(cfg *config.DungeonConfig, rng *rand.Rand, sound game.SoundPlayer, store game.HighScoreStore) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("dungeon config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if sound == nil {
		sound = game.NopSoundPlayer{}
	}

	high := 0
	if store != nil {
		high = game.LoadHighScore(store)
	}

	w := &systems.World{
		State:  game.NewGameState(high),
		Config: cfg,
		Rand:   rng,
		Sound:  sound,
	}
	s := &Session{
		world:       w,
		grid:        mapgen.NewGrid(cfg.Grid.Width, cfg.Grid.Height),
		generator:   mapgen.NewRoomGenerator(cfg, rng),
		projectiles: systems.NewProjectileSystem(w),
		enemies:     systems.NewEnemySystem(w),
		movement:    systems.NewMovementSystem(w),
		players:     systems.NewPlayerSystem(w),
		collisions:  systems.NewCollisionSystem(w),
		level:       systems.NewLevelSystem(w),
		camera:      systems.NewCameraSystem(w),
		score:       systems.NewScoreSystem(w, store),
	}

	if err := s.setupRoom(s.freshCarry(), nil); err != nil {
		return nil, err
	}
	log.Printf("[Session] 新游戏开始，最高分 %d", high)
	return s, nil
}

func (s *Session) freshCarry() mapgen.Carry {
	cfg := s.world.Config.Player
	return mapgen.Carry{Health: cfg.MaxHealth, Ammo: cfg.StartAmmo}
}

// setupRoom 在新的 EntityManager 中生成当前房间，成功后整体替换
// prev 为上一个房间的玩家状态，用于延续挥刀计时和死亡状态
func (s *Session) setupRoom(carry mapgen.Carry, prev *components.PlayerComponent) error {
	em := ecs.NewEntityManager()
	room, err := s.generator.Generate(em, s.grid, s.world.State.Room, carry)
	if err != nil {
		return fmt.Errorf("failed to generate room %d: %w", s.world.State.Room, err)
	}

	if pc, ok := ecs.GetComponent[*components.PlayerComponent](em, room.Player); ok {
		if prev != nil {
			pc.KnifeDelay = prev.KnifeDelay
			pc.KnifeRate = prev.KnifeRate
			pc.Facing = prev.Facing
		}
		if carry.Health <= 0 {
			pc.Alive = false
			pc.DeathCuePlayed = true
		}
	}

	s.world.EM = em
	s.world.Player = room.Player
	s.room = room
	s.world.State.DoorRow = room.DoorRow
	s.world.State.ResetView()
	s.world.Sound.PlaySound(game.SoundDefault)
	return nil
}

// carry 当前玩家要带进下一个房间的生命值和箭矢
func (s *Session) carry() (mapgen.Carry, *components.PlayerComponent) {
	em := s.world.EM
	hp, ok1 := ecs.GetComponent[*components.HealthComponent](em, s.world.Player)
	pc, ok2 := ecs.GetComponent[*components.PlayerComponent](em, s.world.Player)
	if !ok1 || !ok2 {
		return s.freshCarry(), nil
	}
	return mapgen.Carry{Health: hp.CurrentHealth, Ammo: pc.Ammo}, pc
}

// Update 推进一帧
//
// 顺序固定：移动物体、最高分、玩家状态、碰撞、出口门、视口、清理。
// 只有房间重建失败时返回错误。
func (s *Session) Update() error {
	gs := s.world.State
	gs.Tick++

	if gs.Started {
		s.projectiles.Update()
		s.enemies.Update()
		s.movement.Update()
	}

	s.score.CommitHighScore()
	s.players.Update()
	s.collisions.Update()

	if s.level.CheckDoor() {
		if err := s.advanceRoom(); err != nil {
			return err
		}
	}

	s.camera.Follow()
	s.world.EM.RemoveMarkedEntities()
	return nil
}

// advanceRoom 通过出口门：房间序号加一、发放奖励并生成新房间
func (s *Session) advanceRoom() error {
	carry, prev := s.carry()
	s.world.State.AdvanceRoom()
	log.Printf("[Session] 进入房间 %d，分数 %d", s.world.State.Room, s.world.State.Score)
	return s.setupRoom(carry, prev)
}

// Start 开始游戏（关闭操作说明）
func (s *Session) Start() {
	s.world.State.Started = true
}

// Move 按下方向键
func (s *Session) Move(dir types.Direction) {
	s.Start()
	s.players.Move(dir)
}

// Stop 松开方向键
func (s *Session) Stop(dir types.Direction) {
	s.players.Stop(dir)
}

// Attack 主攻击键：有箭射箭，没箭挥刀
func (s *Session) Attack() {
	s.Start()
	s.players.Shoot()
}

// Click 鼠标主键：游戏未开始时只负责开始游戏
func (s *Session) Click() {
	if !s.world.State.Started {
		s.Start()
		return
	}
	s.players.Shoot()
}

// Stab 副攻击键：挥刀
func (s *Session) Stab() {
	s.Start()
	s.players.Stab()
}

// Restart 重新开始：清零分数、房间和帧数，保留最高分
func (s *Session) Restart() error {
	s.world.State.ResetRun()
	s.Start()
	log.Printf("[Session] 重新开始")
	return s.setupRoom(s.freshCarry(), nil)
}

// State 当前游戏进度
func (s *Session) State() *game.GameState {
	return s.world.State
}

// Room 当前房间的生成结果
func (s *Session) Room() *mapgen.Room {
	return s.room
}

// Grid 当前房间的网格
func (s *Session) Grid() *mapgen.Grid {
	return s.grid
}

// EntityManager 当前房间的实体管理器
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.world.EM
}

// PlayerID 当前房间的玩家实体
func (s *Session) PlayerID() ecs.EntityID {
	return s.world.Player
}

// Config 地牢配置
func (s *Session) Config() *config.DungeonConfig {
	return s.world.Config
}
