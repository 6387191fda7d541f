package systems

// LevelSystem 出口门判定
type LevelSystem struct {
	world *World
}

// NewLevelSystem 创建关卡系统
func NewLevelSystem(w *World) *LevelSystem {
	return &LevelSystem{world: w}
}

// DoorBand 出口门的触发区域：doorY-band < y < doorY+band 且 x > (Width-2)*cell
func (s *LevelSystem) DoorBand() (minY, maxY, minX float64) {
	cfg := s.world.Config
	_, doorY := cfg.CellToWorld(0, s.world.State.DoorRow)
	minX, _ = cfg.CellToWorld(cfg.Grid.Width-2, 0)
	band := cfg.Door.BandHalfHeight
	return doorY - band, doorY + band, minX
}

// CheckDoor 玩家是否进入出口门
// 只负责判定，房间切换由调用方完成
func (s *LevelSystem) CheckDoor() bool {
	p, ok := s.world.player()
	if !ok {
		return false
	}
	minY, maxY, minX := s.DoorBand()
	return p.pos.Y > minY && p.pos.Y < maxY && p.pos.X > minX
}
