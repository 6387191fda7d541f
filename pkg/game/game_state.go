package game

// GameState 一局游戏的进度数据（帧计数、分数、房间序号、视口）
//
// 由 dungeon.Session 持有并显式传给各个系统，没有全局单例。
type GameState struct {
	Tick    int  // 当前帧，每次 Update 加一
	Started bool // 收到第一次输入后才开始推进移动物体

	Score           int
	HighScore       int
	HighScoreBeaten bool // 本局已刷新最高分（只提示一次）

	Room    int // 当前房间序号，从 0 开始
	DoorRow int // 当前房间出口门所在行

	// 视口左下角（世界坐标）
	ViewLeft   float64
	ViewBottom float64
}

// NewGameState 创建新一局的状态，highScore 来自持久化存储
func NewGameState(highScore int) *GameState {
	if highScore < 0 {
		highScore = 0
	}
	return &GameState{HighScore: highScore}
}

// AddScore 增加分数
func (gs *GameState) AddScore(amount int) {
	gs.Score += amount
}

// AdvanceRoom 进入下一个房间并发放通关奖励
// 分数乘以 (1 + room/10)，按整数截断：score * (10 + room) / 10
func (gs *GameState) AdvanceRoom() {
	gs.Room++
	gs.Score = gs.Score * (10 + gs.Room) / 10
}

// ExceedsHighScore 当前分数是否超过已保存的最高分
func (gs *GameState) ExceedsHighScore() bool {
	return gs.Score > gs.HighScore
}

// ResetView 新房间从原点开始显示
func (gs *GameState) ResetView() {
	gs.ViewLeft = 0
	gs.ViewBottom = 0
}

// ResetRun 重新开始：清零分数、帧数和房间，保留最高分
func (gs *GameState) ResetRun() {
	gs.Tick = 0
	gs.Score = 0
	gs.Room = 0
	gs.DoorRow = 0
	gs.HighScoreBeaten = false
	gs.ResetView()
}
