package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// HighScoreStore 最高分持久化接口
// 只保存一个整数，每次刷新最高分时整体覆盖
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// parseHighScore 解析十进制分数
// 空内容视为 0；多行时取最后一个非空行
func parseHighScore(data []byte) (int, error) {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("invalid high score %q: %w", last, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("negative high score %d", score)
	}
	return score, nil
}

// FileHighScoreStore 纯文本文件存储，内容是一个十进制整数
type FileHighScoreStore struct {
	path string
}

// NewFileHighScoreStore 创建文件存储
func NewFileHighScoreStore(path string) *FileHighScoreStore {
	return &FileHighScoreStore{path: path}
}

// Load 读取最高分
// 文件不存在或为空返回 0；内容损坏时返回 0 和错误（调用方按 0 处理）
func (s *FileHighScoreStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read high score file %s: %w", s.path, err)
	}
	score, err := parseHighScore(data)
	if err != nil {
		return 0, fmt.Errorf("corrupt high score file %s: %w", s.path, err)
	}
	return score, nil
}

// Save 覆盖写入最高分
func (s *FileHighScoreStore) Save(score int) error {
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("failed to write high score file %s: %w", s.path, err)
	}
	return nil
}

// 最高分在 gdata 中的存储位置
const (
	highScoreObject   = "scores"
	highScoreProperty = "high"
)

// GdataHighScoreStore 通过 gdata 保存到用户数据目录
// gdataManager 为 nil 时进入降级模式：读取返回 0，写入静默忽略
type GdataHighScoreStore struct {
	gdataManager *gdata.Manager
}

// NewGdataHighScoreStore 创建 gdata 存储
func NewGdataHighScoreStore(gdataManager *gdata.Manager) *GdataHighScoreStore {
	return &GdataHighScoreStore{gdataManager: gdataManager}
}

// Load 读取最高分
func (s *GdataHighScoreStore) Load() (int, error) {
	if s.gdataManager == nil {
		return 0, nil
	}
	if !s.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return 0, nil
	}
	data, err := s.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}
	score, err := parseHighScore(data)
	if err != nil {
		return 0, fmt.Errorf("corrupt high score: %w", err)
	}
	return score, nil
}

// Save 覆盖写入最高分
func (s *GdataHighScoreStore) Save(score int) error {
	if s.gdataManager == nil {
		return nil
	}
	if err := s.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// LoadHighScore 读取最高分，任何错误都记日志并按 0 处理
func LoadHighScore(store HighScoreStore) int {
	if store == nil {
		return 0
	}
	score, err := store.Load()
	if err != nil {
		log.Printf("[HighScore] Warning: %v (treating as 0)", err)
		return 0
	}
	return score
}
