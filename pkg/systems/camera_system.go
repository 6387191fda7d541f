package systems

import (
	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
)

// CameraSystem 视口跟随
// 玩家离视口边缘小于 Margin 时推动视口，视口原点保存在 GameState
type CameraSystem struct {
	world *World
}

// NewCameraSystem 创建视口系统
func NewCameraSystem(w *World) *CameraSystem {
	return &CameraSystem{world: w}
}

// camera 当前房间的镜头实体，不存在时按配置创建
// 每个房间都有独立的 EntityManager，所以镜头实体随房间重建
func (s *CameraSystem) camera() *components.CameraComponent {
	em := s.world.EM
	for _, id := range ecs.GetEntitiesWith1[*components.CameraComponent](em) {
		cam, _ := ecs.GetComponent[*components.CameraComponent](em, id)
		return cam
	}

	cfg := s.world.Config.Camera
	cam := &components.CameraComponent{
		ScrollWidth:  cfg.ScrollWidth,
		ScrollHeight: cfg.ScrollHeight,
		Margin:       cfg.Margin,
	}
	ecs.AddComponent(em, em.CreateEntity(), cam)
	return cam
}

// Follow 根据玩家包围盒调整视口，返回视口是否移动
func (s *CameraSystem) Follow() bool {
	p, ok := s.world.player()
	if !ok {
		return false
	}
	cam := s.camera()
	gs := s.world.State
	box := p.box()
	changed := false

	// 视口放不下两侧边距时收窄边距，否则上下两个边界会每帧互相推动
	mx := effectiveMargin(cam.Margin, cam.ScrollWidth, box.Right-box.Left)
	my := effectiveMargin(cam.Margin, cam.ScrollHeight, box.Top-box.Bottom)

	if left := gs.ViewLeft + mx; box.Left < left {
		gs.ViewLeft -= left - box.Left
		changed = true
	}
	if right := gs.ViewLeft + cam.ScrollWidth - mx; box.Right > right {
		gs.ViewLeft += box.Right - right
		changed = true
	}
	if top := gs.ViewBottom + cam.ScrollHeight - my; box.Top > top {
		gs.ViewBottom += box.Top - top
		changed = true
	}
	if bottom := gs.ViewBottom + my; box.Bottom < bottom {
		gs.ViewBottom -= bottom - box.Bottom
		changed = true
	}

	return changed
}

// effectiveMargin 边距最多为 (视口 - 玩家尺寸) / 2
func effectiveMargin(margin, scroll, size float64) float64 {
	limit := (scroll - size) / 2
	if limit < 0 {
		limit = 0
	}
	if margin > limit {
		return limit
	}
	return margin
}
