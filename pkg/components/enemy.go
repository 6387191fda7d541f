package components

import "github.com/decker502/dungeon/pkg/ecs"

// EnemyState 恶魔的外观状态
type EnemyState int

const (
	EnemyIdle   EnemyState = iota // 正常
	EnemyLunge                    // 扑击（碰到玩家）
	EnemyDying1                   // 死亡动画第一阶段
	EnemyDying2                   // 死亡动画第二阶段
)

// EnemyComponent 恶魔的 AI 状态
type EnemyComponent struct {
	// Target 追踪目标（玩家实体ID），非拥有引用
	// 房间重建时整个 EntityManager 被替换，不会留下悬空引用
	Target ecs.EntityID

	NextShotTick int     // 下一次允许发射火球的时间
	Detected     bool    // 玩家是否处于侦测范围（用于只播放一次低吼）
	Angle        float64 // 朝向角度（度）

	Dying     bool // 是否已进入死亡流程
	DeathTick int  // 死亡开始的时间
	State     EnemyState
}

// IsAlive 尚未进入死亡流程
func (e *EnemyComponent) IsAlive() bool {
	return !e.Dying
}
