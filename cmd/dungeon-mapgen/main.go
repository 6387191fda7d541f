// dungeon-mapgen 离线生成房间并以 ASCII 输出，用于检查地图生成效果
//
// 每个房间都会检查出口门是否能从入口走到，不可达时以非零状态退出。
//
// 用法:
//
//	go run ./cmd/dungeon-mapgen -seed 42 -room 0 -count 3
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/mapgen"
	"github.com/decker502/dungeon/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "地牢配置文件（默认使用内置默认值）")
	seed := flag.Int64("seed", 1, "随机种子")
	room := flag.Int("room", 0, "第一个房间的序号（影响恶魔密度）")
	count := flag.Int("count", 1, "连续生成的房间数")
	verbose := flag.Bool("verbose", false, "输出生成日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultDungeonConfig()
	if *configPath != "" {
		loaded, err := config.LoadDungeonConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := generate(os.Stdout, cfg, *seed, *room, *count); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// generate 依次生成 count 个房间并写出
// 与游戏一样，所有房间共用同一个随机源
func generate(w io.Writer, cfg *config.DungeonConfig, seed int64, firstRoom, count int) error {
	rng := rand.New(rand.NewSource(seed))
	gen := mapgen.NewRoomGenerator(cfg, rng)
	grid := mapgen.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	carry := mapgen.Carry{Health: cfg.Player.MaxHealth, Ammo: cfg.Player.StartAmmo}

	for i := 0; i < count; i++ {
		index := firstRoom + i
		em := ecs.NewEntityManager()
		room, err := gen.Generate(em, grid, index, carry)
		if err != nil {
			return fmt.Errorf("room %d: %w", index, err)
		}

		fmt.Fprintf(w, "room %d  door row %d  steps %d  fallback %v  walls %d  chests %d  enemies %d\n",
			index, room.DoorRow, room.Carve.Steps, room.Carve.Fallback, room.Walls, room.Chests, room.Enemies)
		fmt.Fprint(w, renderRoom(cfg, grid, em, room, gen.Entrance()))

		exit := mapgen.SpawnPoint{X: grid.Width - 1, Y: room.DoorRow}
		if !grid.ReachableFrom(gen.Entrance())[exit] {
			return fmt.Errorf("room %d: exit (%d,%d) unreachable from entrance", index, exit.X, exit.Y)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// renderRoom 在网格的 ASCII 图上叠加实体
//
//	#  墙    .  地板   @  入口（玩家）   >  出口门
//	C  宝箱  D  恶魔
func renderRoom(cfg *config.DungeonConfig, grid *mapgen.Grid, em *ecs.EntityManager, room *mapgen.Room, entrance mapgen.SpawnPoint) string {
	lines := strings.Split(strings.TrimSuffix(grid.String(), "\n"), "\n")
	cells := make([][]byte, len(lines))
	for i, line := range lines {
		cells[i] = []byte(line)
	}

	set := func(col, row int, ch byte) {
		y := grid.Height - 1 - row
		if y < 0 || y >= len(cells) || col < 0 || col >= len(cells[y]) {
			return
		}
		cells[y][col] = ch
	}
	mark := func(id ecs.EntityID, ch byte) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			return
		}
		col, row := utils.WorldToCell(pos.X, pos.Y, cfg.Grid.CellSize)
		set(col, row, ch)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ChestComponent](em) {
		mark(id, 'C')
	}
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		mark(id, 'D')
	}
	set(entrance.X, entrance.Y, '@')
	set(grid.Width-1, room.DoorRow, '>')

	var sb strings.Builder
	for _, line := range cells {
		sb.Write(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
