package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/startree/pkg/app"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/embedded"
	"github.com/gonewx/startree/pkg/game"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	seed := flag.Int64("seed", 0, "布局随机种子（0 表示取当前时间）")
	fullscreen := flag.Bool("fullscreen", false, "启动时全屏")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("星愿圣诞树")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGameWithOptions(gameApp, &ebiten.RunGameOptions{})

	// 正常关闭（窗口关闭返回 nil，或显式终止）时保存设置
	if scene := gameApp.GetSceneManager().GetCurrentScene(); scene != nil {
		if saveable, ok := scene.(game.Saveable); ok {
			if !saveable.SaveOnExit() {
				log.Printf("[Main] Failed to save settings on exit")
			}
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
