package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/startree/pkg/game"
)

// InputSystem 键盘输入处理
//
// 键位：
//
//	Space - 切换散落/树形模式
//	Z     - 手动缩放开关（无摄像头时替代捏合手势）
//	S     - 下雪开关
//	C     - 摄像头手势输入开关
type InputSystem struct {
	state *game.GameState

	// onCameraToggle 摄像头开关变化时的回调（由场景负责开关输入源进程）
	onCameraToggle func(enabled bool)
}

// NewInputSystem 创建输入系统
func NewInputSystem(state *game.GameState, onCameraToggle func(enabled bool)) *InputSystem {
	return &InputSystem{
		state:          state,
		onCameraToggle: onCameraToggle,
	}
}

// Update 处理本帧按键
func (s *InputSystem) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.state.ToggleMode()
		log.Printf("[Input] Mode switched to %s", s.state.Mode())
		if am := s.state.GetAudioManager(); am != nil {
			am.PlayModeChime()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		s.state.ManualZoom = !s.state.ManualZoom
		log.Printf("[Input] Manual zoom: %v", s.state.ManualZoom)
	}

	settings := s.state.GetSettingsManager()
	if settings == nil {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		enabled := !settings.GetSettings().SnowEnabled
		settings.SetSnowEnabled(enabled)
		log.Printf("[Input] Snow: %v", enabled)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		enabled := !settings.GetSettings().CameraEnabled
		settings.SetCameraEnabled(enabled)
		log.Printf("[Input] Camera gestures: %v", enabled)
		if s.onCameraToggle != nil {
			s.onCameraToggle(enabled)
		}
	}
}
