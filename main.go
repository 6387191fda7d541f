package main

import (
	"flag"
	"log"

	"github.com/decker502/dungeon/pkg/app"
	"github.com/decker502/dungeon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "地牢配置文件（默认使用内置 data/dungeon.yaml）")
	scoresPath := flag.String("scores", "", "最高分文件（覆盖配置中的存储后端）")
	seed := flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		ScoresPath: *scoresPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Dungeon")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("关闭时出错: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
