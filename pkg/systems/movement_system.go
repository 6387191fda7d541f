package systems

import (
	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
)

// MovementSystem 按速度移动玩家，墙体阻挡
//
// X、Y 两个轴分别移动和检测，撞墙时贴齐墙面，
// 所以沿墙斜向移动时另一个轴仍然可以滑动。
type MovementSystem struct {
	world *World
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(w *World) *MovementSystem {
	return &MovementSystem{world: w}
}

// Update 移动玩家一帧
func (s *MovementSystem) Update() {
	p, ok := s.world.player()
	if !ok {
		return
	}

	if p.vel.VX != 0 {
		p.pos.X += p.vel.VX
		if wall, hit := s.blockingWall(p.box()); hit {
			if p.vel.VX > 0 {
				p.pos.X = wall.Left - p.col.Width/2
			} else {
				p.pos.X = wall.Right + p.col.Width/2
			}
		}
	}

	if p.vel.VY != 0 {
		p.pos.Y += p.vel.VY
		if wall, hit := s.blockingWall(p.box()); hit {
			if p.vel.VY > 0 {
				p.pos.Y = wall.Bottom - p.col.Height/2
			} else {
				p.pos.Y = wall.Top + p.col.Height/2
			}
		}
	}
}

// blockingWall 找到与 box 内部相交、在移动方向上最靠前的墙
func (s *MovementSystem) blockingWall(box components.Box) (components.Box, bool) {
	em := s.world.EM
	var (
		found bool
		best  components.Box
	)
	for _, id := range ecs.GetEntitiesWith1[*components.WallComponent](em) {
		wb, ok := s.world.boxOf(id)
		if !ok || !box.Intersects(wb) {
			continue
		}
		if !found {
			best = wb
			found = true
			continue
		}
		// 多面墙同时相交时取包围范围，贴齐后不会嵌入任何一面
		if wb.Left < best.Left {
			best.Left = wb.Left
		}
		if wb.Right > best.Right {
			best.Right = wb.Right
		}
		if wb.Bottom < best.Bottom {
			best.Bottom = wb.Bottom
		}
		if wb.Top > best.Top {
			best.Top = wb.Top
		}
	}
	return best, found
}
