package game

import (
	"fmt"

	"github.com/gonewx/startree/pkg/types"
)

// GameState 存储全局展示状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
//
// 控制信号（缩放、旋转偏置）每帧由手势/输入系统重写，
// 只被动画驱动消费，永不持久化。
type GameState struct {
	mode types.Mode

	// ScaleSignal 缩放控制信号
	// 中性值 1.0；捏合手势或手动缩放开关时渐近逼近 scaleMax
	ScaleSignal float64

	// RotationBias 旋转偏置控制信号
	// 中性值 0；手腕水平偏移的线性函数
	RotationBias float64

	// CameraAngle 场景当前的旋转角（弧度），由 CameraSystem 推进
	CameraAngle float64

	// ManualZoom 手动缩放开关（无手势时通过键盘控制）
	ManualZoom bool

	// GestureActive 手势输入源当前是否可用
	GestureActive bool

	settingsManager *SettingsManager
	audioManager    *AudioManager
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// NewGameState 创建初始状态
// 测试中直接使用此函数，避免单例串扰
func NewGameState() *GameState {
	return &GameState{
		mode:        types.ModeScattered,
		ScaleSignal: 1.0,
	}
}

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个程序生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = NewGameState()
	}
	return globalGameState
}

// Mode 返回当前展示模式
func (gs *GameState) Mode() types.Mode {
	return gs.mode
}

// SetMode 设置展示模式
// 这是模式的唯一写入口：非法值在边界处被拒绝，不进入动画驱动
func (gs *GameState) SetMode(m types.Mode) error {
	if !m.IsValid() {
		return fmt.Errorf("invalid mode value %d", int(m))
	}
	gs.mode = m
	return nil
}

// ToggleMode 在两个模式间切换
func (gs *GameState) ToggleMode() {
	gs.mode = gs.mode.Toggle()
}

// SetSettingsManager 注入设置管理器
func (gs *GameState) SetSettingsManager(sm *SettingsManager) {
	gs.settingsManager = sm
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// SetAudioManager 注入音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}
