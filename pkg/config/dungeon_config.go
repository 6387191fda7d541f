package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DungeonConfig 地牢玩法配置
//
// 包含地图尺寸、生成概率、战斗数值和视口参数。
// 所有时间单位都是游戏帧（固定步长，60 帧/秒）。
//
// 配置文件位置: data/dungeon.yaml
type DungeonConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Carver    CarverConfig    `yaml:"carver"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Player    PlayerConfig    `yaml:"player"`
	Combat    CombatConfig    `yaml:"combat"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Pickup    PickupConfig    `yaml:"pickup"`
	Door      DoorConfig      `yaml:"door"`
	Camera    CameraConfig    `yaml:"camera"`
	Sizes     SizeConfig      `yaml:"sizes"`
	HighScore HighScoreConfig `yaml:"highScore"`
}

// GridConfig 地图网格配置
type GridConfig struct {
	Width       int       `yaml:"width"`       // 列数 BR_X
	Height      int       `yaml:"height"`      // 行数 BR_Y
	CellSize    float64   `yaml:"cellSize"`    // 格子边长（世界单位）
	Entrance    CellPoint `yaml:"entrance"`    // 入口格子
	FallbackRow int       `yaml:"fallbackRow"` // 挖掘失败时强制打通的行
}

// CellPoint 网格坐标
type CellPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// CarverConfig 路径挖掘配置
type CarverConfig struct {
	TurnChance     float64 `yaml:"turnChance"`     // 每步随机转向概率
	MaxSteps       int     `yaml:"maxSteps"`       // 步数上限，超过后强制打通
	MaxTurnRetries int     `yaml:"maxTurnRetries"` // 单步内换方向的重试上限
}

// SpawnConfig 房间内容生成配置
type SpawnConfig struct {
	ChestOdds        int `yaml:"chestOdds"`        // 每个地板格 1/ChestOdds 概率生成宝箱
	DifficultyBase   int `yaml:"difficultyBase"`   // difficulty = max(0, base-room) + floor
	DifficultyFloor  int `yaml:"difficultyFloor"`  // 难度下限
	SpawnProtectionX int `yaml:"spawnProtectionX"` // 只有 x 大于该值的格子才生成恶魔
	WallTextureCount int `yaml:"wallTextureCount"` // 墙体贴图数量（清单加载后会覆盖）
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	MaxHealth     int     `yaml:"maxHealth"`
	StartAmmo     int     `yaml:"startAmmo"`
	MoveSpeed     float64 `yaml:"moveSpeed"`
	DeathFriction float64 `yaml:"deathFriction"` // 死亡后每帧速度衰减
}

// CombatConfig 战斗数值
type CombatConfig struct {
	ArrowSpeed     float64 `yaml:"arrowSpeed"`
	FireballSpeed  float64 `yaml:"fireballSpeed"`
	FireballSpin   float64 `yaml:"fireballSpin"` // 每帧旋转角度
	FireballDamage int     `yaml:"fireballDamage"`
	KnifeReach     float64 `yaml:"knifeReach"`     // 刀的攻击距离
	KnifeHalfWidth float64 `yaml:"knifeHalfWidth"` // 攻击框半宽
	KnifeCooldown  int     `yaml:"knifeCooldown"`  // 挥刀间隔
	KnifePenalty   int     `yaml:"knifePenalty"`   // 冷却中连按的惩罚
}

// EnemyConfig 恶魔配置
type EnemyConfig struct {
	MaxHealth       int     `yaml:"maxHealth"`
	DetectionRadius float64 `yaml:"detectionRadius"`
	ShotCooldownMin int     `yaml:"shotCooldownMin"`
	ShotCooldownMax int     `yaml:"shotCooldownMax"`
	DeathTicks      int     `yaml:"deathTicks"`      // 死亡到移除的帧数
	DeathPhaseTicks int     `yaml:"deathPhaseTicks"` // 死亡动画每阶段帧数
}

// PickupConfig 拾取物配置
type PickupConfig struct {
	Delay      int `yaml:"delay"`      // 宝箱掉落物的拾取延迟
	AmmoGrant  int `yaml:"ammoGrant"`  // 箭袋补充数量
	PotionHeal int `yaml:"potionHeal"` // 药水回复量
	CoinValue  int `yaml:"coinValue"`  // 金币分数
}

// DoorConfig 出口判定
type DoorConfig struct {
	BandHalfHeight float64 `yaml:"bandHalfHeight"` // 门所在行上下的判定范围
}

// CameraConfig 视口跟随配置
type CameraConfig struct {
	ScrollWidth  float64 `yaml:"scrollWidth"`
	ScrollHeight float64 `yaml:"scrollHeight"`
	Margin       float64 `yaml:"margin"`
}

// SizeConfig 各类实体的碰撞盒边长
type SizeConfig struct {
	Wall     float64 `yaml:"wall"`
	Player   float64 `yaml:"player"`
	Enemy    float64 `yaml:"enemy"`
	Chest    float64 `yaml:"chest"`
	Arrow    float64 `yaml:"arrow"`
	Fireball float64 `yaml:"fireball"`
	Pickup   float64 `yaml:"pickup"`
}

// HighScoreConfig 最高分存储
type HighScoreConfig struct {
	Backend string `yaml:"backend"` // "file" 或 "gdata"
	Path    string `yaml:"path"`    // file 后端的文件路径
	AppName string `yaml:"appName"` // gdata 后端的应用名
}

// 最高分存储后端
const (
	HighScoreBackendFile  = "file"
	HighScoreBackendGdata = "gdata"
)

// DefaultDungeonConfig 返回默认配置（与原版数值一致）
func DefaultDungeonConfig() *DungeonConfig {
	return &DungeonConfig{
		Grid: GridConfig{
			Width:       64,
			Height:      48,
			CellSize:    32,
			Entrance:    CellPoint{X: 1, Y: 5},
			FallbackRow: 16,
		},
		Carver: CarverConfig{
			TurnChance:     0.25,
			MaxSteps:       2000,
			MaxTurnRetries: 16,
		},
		Spawn: SpawnConfig{
			ChestOdds:        50,
			DifficultyBase:   17,
			DifficultyFloor:  3,
			SpawnProtectionX: 7,
			WallTextureCount: 1,
		},
		Player: PlayerConfig{
			MaxHealth:     100,
			StartAmmo:     5,
			MoveSpeed:     3,
			DeathFriction: 0.1,
		},
		Combat: CombatConfig{
			ArrowSpeed:     6,
			FireballSpeed:  4,
			FireballSpin:   20,
			FireballDamage: 25,
			KnifeReach:     36,
			KnifeHalfWidth: 16,
			KnifeCooldown:  20,
			KnifePenalty:   5,
		},
		Enemy: EnemyConfig{
			MaxHealth:       100,
			DetectionRadius: 150,
			ShotCooldownMin: 100,
			ShotCooldownMax: 200,
			DeathTicks:      20,
			DeathPhaseTicks: 10,
		},
		Pickup: PickupConfig{
			Delay:      10,
			AmmoGrant:  3,
			PotionHeal: 10,
			CoinValue:  1,
		},
		Door: DoorConfig{
			BandHalfHeight: 16,
		},
		Camera: CameraConfig{
			ScrollWidth:  512,
			ScrollHeight: 384,
			Margin:       200,
		},
		Sizes: SizeConfig{
			Wall:     32,
			Player:   28,
			Enemy:    24,
			Chest:    24,
			Arrow:    8,
			Fireball: 16,
			Pickup:   20,
		},
		HighScore: HighScoreConfig{
			Backend: HighScoreBackendFile,
			Path:    "scores.txt",
			AppName: "dungeon",
		},
	}
}

// LoadDungeonConfig 从文件加载地牢配置
//
// 参数:
//   - path: 配置文件路径（如 "data/dungeon.yaml"）
//
// 返回:
//   - *DungeonConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadDungeonConfig(path string) (*DungeonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dungeon config: %w", err)
	}
	return ParseDungeonConfig(data)
}

// ParseDungeonConfig 解析 YAML 配置
// 未出现的字段保持默认值
func ParseDungeonConfig(data []byte) (*DungeonConfig, error) {
	config := DefaultDungeonConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse dungeon config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dungeon config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *DungeonConfig) Validate() error {
	g := c.Grid
	if g.Width < 4 || g.Height < 4 {
		return fmt.Errorf("grid too small: %dx%d", g.Width, g.Height)
	}
	if g.CellSize <= 0 {
		return fmt.Errorf("cellSize must be positive, got %.1f", g.CellSize)
	}
	if g.Entrance.X <= 0 || g.Entrance.X >= g.Width-1 || g.Entrance.Y <= 0 || g.Entrance.Y >= g.Height-1 {
		return fmt.Errorf("entrance (%d,%d) must lie strictly inside the grid", g.Entrance.X, g.Entrance.Y)
	}
	if g.FallbackRow <= 0 || g.FallbackRow >= g.Height-1 {
		return fmt.Errorf("fallbackRow %d out of range", g.FallbackRow)
	}

	if c.Carver.TurnChance < 0 || c.Carver.TurnChance > 1 {
		return fmt.Errorf("turnChance must be within [0,1], got %.2f", c.Carver.TurnChance)
	}
	if c.Carver.MaxSteps <= 0 {
		return fmt.Errorf("maxSteps must be positive, got %d", c.Carver.MaxSteps)
	}
	if c.Carver.MaxTurnRetries <= 0 {
		return fmt.Errorf("maxTurnRetries must be positive, got %d", c.Carver.MaxTurnRetries)
	}

	if c.Spawn.ChestOdds <= 0 {
		return fmt.Errorf("chestOdds must be positive, got %d", c.Spawn.ChestOdds)
	}
	if c.Spawn.DifficultyFloor <= 0 {
		return fmt.Errorf("difficultyFloor must be positive, got %d", c.Spawn.DifficultyFloor)
	}
	if c.Spawn.WallTextureCount <= 0 {
		return fmt.Errorf("wallTextureCount must be positive, got %d", c.Spawn.WallTextureCount)
	}

	if c.Player.MaxHealth <= 0 || c.Enemy.MaxHealth <= 0 {
		return fmt.Errorf("max health must be positive")
	}
	if c.Enemy.ShotCooldownMin > c.Enemy.ShotCooldownMax {
		return fmt.Errorf("shot cooldown range invalid: min(%d) > max(%d)",
			c.Enemy.ShotCooldownMin, c.Enemy.ShotCooldownMax)
	}
	if c.Enemy.DeathPhaseTicks <= 0 || c.Enemy.DeathTicks < c.Enemy.DeathPhaseTicks {
		return fmt.Errorf("death timing invalid: deathTicks=%d deathPhaseTicks=%d",
			c.Enemy.DeathTicks, c.Enemy.DeathPhaseTicks)
	}
	if c.Pickup.Delay < 0 {
		return fmt.Errorf("pickup delay must not be negative, got %d", c.Pickup.Delay)
	}
	if c.Camera.Margin < 0 || c.Camera.ScrollWidth <= 0 || c.Camera.ScrollHeight <= 0 {
		return fmt.Errorf("camera window invalid: %.0fx%.0f margin %.1f",
			c.Camera.ScrollWidth, c.Camera.ScrollHeight, c.Camera.Margin)
	}

	switch c.HighScore.Backend {
	case HighScoreBackendFile, HighScoreBackendGdata:
	default:
		return fmt.Errorf("unknown highScore backend %q", c.HighScore.Backend)
	}

	return nil
}

// Difficulty 返回指定房间的恶魔生成难度
// 数值越小，恶魔越密集
func (c *DungeonConfig) Difficulty(roomIndex int) int {
	d := c.Spawn.DifficultyBase - roomIndex
	if d < 0 {
		d = 0
	}
	return d + c.Spawn.DifficultyFloor
}

// CellToWorld 将格子坐标转换为该格中心的世界坐标
func (c *DungeonConfig) CellToWorld(x, y int) (float64, float64) {
	return float64(x) * c.Grid.CellSize, float64(y) * c.Grid.CellSize
}
