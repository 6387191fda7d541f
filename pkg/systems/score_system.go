package systems

import (
	"log"

	"github.com/decker502/dungeon/pkg/game"
)

// ScoreSystem 最高分提交
type ScoreSystem struct {
	world *World
	store game.HighScoreStore // 可为 nil（不持久化）
}

// NewScoreSystem 创建分数系统
func NewScoreSystem(w *World, store game.HighScoreStore) *ScoreSystem {
	return &ScoreSystem{world: w, store: store}
}

// CommitHighScore 分数超过最高分时更新并写入存储
// 每局第一次刷新最高分时播放提示音；写入失败只记录日志
func (s *ScoreSystem) CommitHighScore() bool {
	gs := s.world.State
	if !gs.ExceedsHighScore() {
		return false
	}

	gs.HighScore = gs.Score
	if s.store != nil {
		if err := s.store.Save(gs.HighScore); err != nil {
			log.Printf("[ScoreSystem] Warning: failed to persist high score %d: %v", gs.HighScore, err)
		}
	}

	if !gs.HighScoreBeaten {
		gs.HighScoreBeaten = true
		s.world.play(game.SoundHighScore)
	}
	return true
}
