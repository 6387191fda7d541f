package mapgen

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/entities"
	"github.com/decker502/dungeon/pkg/types"
)

// Carry 跨房间继承的玩家状态
type Carry struct {
	Health int
	Ammo   int
}

// Room 一次房间生成的结果
type Room struct {
	Index   int
	DoorRow int          // 出口门所在行
	Player  ecs.EntityID // 玩家实体
	Carve   CarveResult

	Walls   int
	Chests  int
	Enemies int
}

// RoomGenerator 根据挖好的网格填充房间实体
type RoomGenerator struct {
	cfg    *config.DungeonConfig
	rng    *rand.Rand
	carver *Carver
}

// NewRoomGenerator 创建房间生成器，挖掘器与生成器共享同一个随机源
func NewRoomGenerator(cfg *config.DungeonConfig, rng *rand.Rand) *RoomGenerator {
	return &RoomGenerator{
		cfg:    cfg,
		rng:    rng,
		carver: NewCarver(rng, cfg),
	}
}

// Entrance 配置中的入口格子
func (g *RoomGenerator) Entrance() SpawnPoint {
	return SpawnPoint{X: g.cfg.Grid.Entrance.X, Y: g.cfg.Grid.Entrance.Y}
}

// Generate 生成一个完整房间并写入 em
//
// 参数:
//   - em: 新房间的实体管理器（应为空）
//   - grid: 复用的网格，生成前会被整体重置
//   - roomIndex: 房间序号，决定恶魔密度
//   - carry: 从上一个房间继承的生命值和箭矢
//
// 返回:
//   - *Room: 出口门行号、玩家实体和统计信息
//   - error: 实体创建失败时返回错误
func (g *RoomGenerator) Generate(em *ecs.EntityManager, grid *Grid, roomIndex int, carry Carry) (*Room, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if grid == nil {
		return nil, fmt.Errorf("grid cannot be nil")
	}

	entrance := g.Entrance()
	grid.Reset()
	grid.SetFloor(entrance.X, entrance.Y)

	room := &Room{Index: roomIndex}

	// 玩家最先创建，恶魔需要持有玩家的实体ID
	px, py := g.cfg.CellToWorld(entrance.X, entrance.Y)
	playerID, err := entities.NewPlayer(em, g.cfg, px, py, carry.Health, carry.Ammo)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn player: %w", err)
	}
	room.Player = playerID

	room.Carve = g.carver.Carve(grid, entrance, roomIndex)
	room.DoorRow = room.Carve.DoorRow

	// 出口门
	dx, dy := g.cfg.CellToWorld(grid.Width-1, room.DoorRow)
	if _, err := entities.NewWall(em, g.cfg, dx, dy, 0, types.DoorOpen); err != nil {
		return nil, fmt.Errorf("failed to spawn exit door: %w", err)
	}

	difficulty := g.cfg.Difficulty(roomIndex)
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			wx, wy := g.cfg.CellToWorld(x, y)

			if grid.IsWall(x, y) {
				texture := g.rng.Intn(g.cfg.Spawn.WallTextureCount)
				if _, err := entities.NewWall(em, g.cfg, wx, wy, texture, types.DoorNone); err != nil {
					return nil, fmt.Errorf("failed to spawn wall at (%d, %d): %w", x, y, err)
				}
				room.Walls++
				continue
			}

			if g.rng.Intn(g.cfg.Spawn.ChestOdds) == 0 {
				if _, err := entities.NewChest(em, g.cfg, wx, wy); err != nil {
					return nil, fmt.Errorf("failed to spawn chest at (%d, %d): %w", x, y, err)
				}
				room.Chests++
				continue
			}

			// 入口附近不刷恶魔
			if g.rng.Intn(difficulty) == 0 && x > g.cfg.Spawn.SpawnProtectionX {
				if _, err := entities.NewEnemy(em, g.cfg, wx, wy, playerID); err != nil {
					return nil, fmt.Errorf("failed to spawn enemy at (%d, %d): %w", x, y, err)
				}
				room.Enemies++
			}
		}
	}

	// 入口门，封住来路
	ex, ey := g.cfg.CellToWorld(0, entrance.Y)
	if _, err := entities.NewWall(em, g.cfg, ex, ey, 0, types.DoorClosed); err != nil {
		return nil, fmt.Errorf("failed to spawn entrance door: %w", err)
	}

	log.Printf("[RoomGenerator] Room %d generated: door row %d, %d steps (fallback=%v), %d walls, %d chests, %d enemies (difficulty %d)",
		roomIndex, room.DoorRow, room.Carve.Steps, room.Carve.Fallback, room.Walls, room.Chests, room.Enemies, difficulty)

	return room, nil
}
