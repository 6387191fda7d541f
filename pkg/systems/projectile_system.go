package systems

import (
	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
)

// ProjectileSystem 推进箭矢和火球
type ProjectileSystem struct {
	world *World
}

// NewProjectileSystem 创建投射物系统
func NewProjectileSystem(w *World) *ProjectileSystem {
	return &ProjectileSystem{world: w}
}

// Update 按速度移动投射物，火球每帧额外旋转 FireballSpin 度
func (s *ProjectileSystem) Update() {
	em := s.world.EM

	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.VelocityComponent, *components.ArrowComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		pos.X += vel.VX
		pos.Y += vel.VY
	}

	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.VelocityComponent, *components.FireballComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		fb, _ := ecs.GetComponent[*components.FireballComponent](em, id)
		pos.X += vel.VX
		pos.Y += vel.VY
		fb.Angle += s.world.Config.Combat.FireballSpin
	}
}
