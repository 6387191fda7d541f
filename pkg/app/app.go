// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/dungeon"
	"github.com/decker502/dungeon/pkg/embedded"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/scenes"
	"github.com/decker502/dungeon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultConfigPath 内置配置文件路径
const DefaultConfigPath = "data/dungeon.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的地牢配置，为空则使用内置 data/dungeon.yaml
	ConfigPath string
	// ScoresPath 非空时把最高分写到该文件，忽略配置中的存储后端
	ScoresPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	viewWidth       int
	viewHeight      int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	dungeonConfig, err := LoadConfig(cfg.ConfigPath, embedded.ReadFile)
	if err != nil {
		return nil, fmt.Errorf("地牢配置加载失败: %w", err)
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	// gdata 打不开时设置只保存在内存中
	gdataManager, err := gdata.Open(gdata.Config{AppName: dungeonConfig.HighScore.AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 清单缺失时所有精灵用纯色方块代替
	resourceManager := game.NewResourceManager(audioContext, embedded.ReadFile, "assets")
	if err := resourceManager.LoadManifests(); err != nil {
		log.Printf("[App] Warning: %v (drawing placeholders)", err)
	} else if n := resourceManager.WallTextureCount(); n > 0 {
		dungeonConfig.Spawn.WallTextureCount = n
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	store := NewHighScoreStore(dungeonConfig.HighScore, cfg.ScoresPath, gdataManager)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Seed: %d", seed)

	session, err := dungeon.NewSession(dungeonConfig, rand.New(rand.NewSource(seed)), audioManager, store)
	if err != nil {
		return nil, fmt.Errorf("游戏初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewDungeonScene(session, resourceManager))

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		viewWidth:       int(dungeonConfig.Camera.ScrollWidth),
		viewHeight:      int(dungeonConfig.Camera.ScrollHeight),
	}, nil
}

// LoadConfig 加载地牢配置
//
// path 非空时读取磁盘文件，失败即返回错误；
// 否则读取内置配置，内置配置缺失时使用默认值。
func LoadConfig(path string, readFile game.ReadFileFunc) (*config.DungeonConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载地牢配置: %s", path)
		return config.LoadDungeonConfig(path)
	}

	data, err := readFile(DefaultConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return config.DefaultDungeonConfig(), nil
	}
	return config.ParseDungeonConfig(data)
}

// NewHighScoreStore 选择最高分存储后端
//
// 优先级：命令行指定的文件 > 配置中的 gdata > 配置中的文件。
// 移动端工作目录不可写，总是使用 gdata；gdata 不可用时退回文件存储。
func NewHighScoreStore(hc config.HighScoreConfig, scoresPath string, gdataManager *gdata.Manager) game.HighScoreStore {
	if scoresPath != "" {
		return game.NewFileHighScoreStore(scoresPath)
	}
	if hc.Backend == config.HighScoreBackendGdata || utils.IsMobile() {
		if gdataManager != nil {
			return game.NewGdataHighScoreStore(gdataManager)
		}
		log.Printf("[App] Warning: gdata backend unavailable, falling back to %s", hc.Path)
	}
	return game.NewFileHighScoreStore(hc.Path)
}

// WindowSize 初始窗口尺寸：视口乘以设置中的放大倍数
func (a *App) WindowSize() (int, int) {
	scale := a.settingsManager.GetSettings().WindowScale
	return a.viewWidth * scale, a.viewHeight * scale
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 静音
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		settings := a.settingsManager.GetSettings()
		a.settingsManager.SetSoundEnabled(!settings.SoundEnabled)
		log.Printf("[App] Sound enabled: %v", settings.SoundEnabled)
	}

	// -/= 调整窗口放大倍数，全屏时只保存设置
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.stepWindowScale(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.stepWindowScale(1)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// stepWindowScale 放大倍数加减 delta（限制在 1 ~ 3），返回新的窗口尺寸
func (a *App) stepWindowScale(delta int) (int, int) {
	scale := a.settingsManager.GetSettings().WindowScale
	a.settingsManager.SetWindowScale(scale + delta)
	w, h := a.WindowSize()
	if !ebiten.IsFullscreen() {
		ebiten.SetWindowSize(w, h)
	}
	log.Printf("[App] Window scale: %d", a.settingsManager.GetSettings().WindowScale)
	return w, h
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settingsManager.SetFullscreen(true)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填黑，画面用最近邻缩放保持像素风格
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（等于视口尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.viewWidth, a.viewHeight
}

// Close 退出前保存设置并关闭当前场景
func (a *App) Close() error {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	return a.sceneManager.Close()
}
