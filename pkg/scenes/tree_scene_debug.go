package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleDebugKey Tab 切换调试浮层，H 切换按键帮助
func (s *TreeScene) handleDebugKey() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.debugVisible = !s.debugVisible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.helpVisible = !s.helpVisible
	}
}

// drawHelpOverlay 按键帮助
func (s *TreeScene) drawHelpOverlay(screen *ebiten.Image) {
	// DebugPrint 的点阵字体只覆盖 ASCII
	const help = "Space  toggle scattered / tree\n" +
		"Z      manual zoom\n" +
		"S      snow on/off\n" +
		"C      camera gestures on/off\n" +
		"F11    fullscreen\n" +
		"F12    save snapshot\n" +
		"Tab    debug info\n" +
		"H      close this help\n" +
		"Drop image files to hang photos"
	ebitenutil.DebugPrintAt(screen, help, 8, 120)
}

// drawDebugOverlay 左上角的调试信息
func (s *TreeScene) drawDebugOverlay(screen *ebiten.Image) {
	msg := fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nMode: %s\nScale: %.2f  Bias: %+.2f  Angle: %.2f\nEntities: %d  Photos: %d\nGesture: %v  ManualZoom: %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.gameState.Mode(),
		s.gameState.ScaleSignal, s.gameState.RotationBias, s.gameState.CameraAngle,
		s.entityManager.EntityCount(), s.photoCount,
		s.gameState.GestureActive, s.gameState.ManualZoom,
	)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
