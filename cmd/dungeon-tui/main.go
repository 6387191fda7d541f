// dungeon-tui 在终端里玩地牢
//
// 与图形版共用 dungeon.Session，用 tcell 绘制字符画面，
// 音效由 beep 实时合成。
//
// 用法:
//
//	go run ./cmd/dungeon-tui -seed 42
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/dungeon"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// frameInterval 与图形版一致，每秒 60 帧
const frameInterval = time.Second / 60

func main() {
	configPath := flag.String("config", "data/dungeon.yaml", "地牢配置文件，不存在时使用默认值")
	scoresPath := flag.String("scores", "", "最高分文件（默认使用配置中的路径）")
	seed := flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	logPath := flag.String("log", "", "日志文件（终端被游戏占用，默认不输出日志）")
	mute := flag.Bool("mute", false, "静音启动")
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	path := cfg.HighScore.Path
	if *scoresPath != "" {
		path = *scoresPath
	}

	sound := newSynth(*mute)
	if err := sound.init(); err != nil {
		log.Printf("[TUI] Warning: audio unavailable: %v", err)
	}
	defer sound.close()

	session, err := dungeon.NewSession(cfg, rand.New(rand.NewSource(*seed)), sound, game.NewFileHighScoreStore(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctrl := newController(session)
	ctrl.onMute = func() {
		log.Printf("[TUI] muted: %v", sound.toggleMute())
	}
	if err := run(screen, session, ctrl); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	gs := session.State()
	log.Printf("[TUI] 退出：房间 %d，分数 %d，最高分 %d", gs.Room, gs.Score, gs.HighScore)
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

// loadConfig 配置文件不存在时使用默认值，存在但无效时报错
func loadConfig(path string) (*config.DungeonConfig, error) {
	if _, err := os.Stat(path); err != nil {
		log.Printf("[TUI] Warning: %v (using defaults)", err)
		return config.DefaultDungeonConfig(), nil
	}
	return config.LoadDungeonConfig(path)
}

// run 主循环：事件在独立 goroutine 中读取，逻辑和绘制按固定帧率推进
func run(screen tcell.Screen, session *dungeon.Session, ctrl *controller) error {
	r := &renderer{screen: screen}
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keepRunning, err := ctrl.handle(ev)
				if err != nil {
					return err
				}
				if !keepRunning {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			ctrl.update()
			if err := session.Update(); err != nil {
				return err
			}
			r.draw(session)
		}
	}
}
