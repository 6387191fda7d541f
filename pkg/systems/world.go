package systems

import (
	"math/rand"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/game"
)

// World 各系统共享的运行环境
//
// 系统只持有 *World，房间切换时由 Session 整体替换 EM 和 Player，
// 所有系统在下一次调用时自然看到新房间。
type World struct {
	EM     *ecs.EntityManager
	State  *game.GameState
	Config *config.DungeonConfig
	Rand   *rand.Rand
	Sound  game.SoundPlayer

	Player ecs.EntityID // 当前房间的玩家实体
}

// play 播放音效，Sound 为 nil 时忽略
func (w *World) play(soundID string) {
	if w.Sound != nil {
		w.Sound.PlaySound(soundID)
	}
}

// playerView 玩家实体的全部组件
type playerView struct {
	id  ecs.EntityID
	pos *components.PositionComponent
	vel *components.VelocityComponent
	col *components.CollisionComponent
	hp  *components.HealthComponent
	pc  *components.PlayerComponent
}

func (p playerView) box() components.Box {
	return components.BoxAt(p.pos, p.col)
}

// player 取出当前玩家；玩家不存在时返回 false
func (w *World) player() (playerView, bool) {
	em := w.EM
	id := w.Player
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, ok2 := ecs.GetComponent[*components.VelocityComponent](em, id)
	col, ok3 := ecs.GetComponent[*components.CollisionComponent](em, id)
	hp, ok4 := ecs.GetComponent[*components.HealthComponent](em, id)
	pc, ok5 := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return playerView{}, false
	}
	return playerView{id: id, pos: pos, vel: vel, col: col, hp: hp, pc: pc}, true
}

// boxOf 实体当前的包围盒
func (w *World) boxOf(id ecs.EntityID) (components.Box, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.EM, id)
	if !ok {
		return components.Box{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](w.EM, id)
	if !ok {
		return components.Box{}, false
	}
	return components.BoxAt(pos, col), true
}

// enemyAlive 恶魔生命值大于 0 且未进入死亡流程
func enemyAlive(hp *components.HealthComponent, ec *components.EnemyComponent) bool {
	return !hp.IsDead() && ec.IsAlive()
}

// killEnemy 生命值归零并立即开始死亡流程
func (w *World) killEnemy(id ecs.EntityID) {
	hp, ok := ecs.GetComponent[*components.HealthComponent](w.EM, id)
	if ok {
		hp.Kill()
	}
	if ec, ok := ecs.GetComponent[*components.EnemyComponent](w.EM, id); ok {
		startDying(ec, w.State.Tick)
	}
}

func startDying(ec *components.EnemyComponent, tick int) {
	if ec.Dying {
		return
	}
	ec.Dying = true
	ec.DeathTick = tick
	ec.State = components.EnemyDying1
}
