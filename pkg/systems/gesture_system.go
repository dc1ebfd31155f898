package systems

import (
	"github.com/gonewx/startree/internal/gesture"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/types"
)

// GestureSystem 手势输入到控制信号的映射
//
// 这是 ScaleSignal 和 RotationBias 的唯一写入方。
// 每帧取一帧关键点并分类：
//   - 张开 → 散落模式；握拳 → 树形模式（变化时播放提示音）
//   - 捏合 → 缩放信号慢速逼近 scaleMax；松开 → 快速回落到 1.0
//   - 手腕水平偏移 → 旋转偏置
//   - 无手或输入源不可用 → 所有信号向中性值衰减
//
// 输入源可以为 nil（摄像头关闭），此时手动缩放开关仍然有效。
type GestureSystem struct {
	state    *game.GameState
	config   *config.GestureConfig
	provider gesture.Provider

	// lastOpenness 上一帧的张开度，用于只在变化沿触发模式切换
	lastOpenness gesture.Openness
}

// NewGestureSystem 创建手势系统
// provider 为 nil 表示无输入源，系统退化为手动缩放 + 信号衰减
func NewGestureSystem(state *game.GameState, cfg *config.GestureConfig, provider gesture.Provider) *GestureSystem {
	return &GestureSystem{
		state:    state,
		config:   cfg,
		provider: provider,
	}
}

// SetProvider 替换手势输入源（摄像头开关切换时调用）
// 旧输入源由调用方负责关闭
func (s *GestureSystem) SetProvider(p gesture.Provider) {
	s.provider = p
	s.lastOpenness = gesture.OpennessNeutral
	s.state.GestureActive = p != nil
}

// Update 把最新关键点帧映射为控制信号
func (s *GestureSystem) Update(deltaTime float64) {
	reading, ok := s.poll()
	if !ok || reading.HandCount == 0 {
		s.relax()
		return
	}

	s.state.GestureActive = true

	// 模式切换只在张开度的变化沿触发，持续握拳不会反复切换
	if reading.Openness != s.lastOpenness {
		switch reading.Openness {
		case gesture.OpennessOpen:
			s.switchMode(types.ModeScattered)
		case gesture.OpennessFist:
			s.switchMode(types.ModeTreeShape)
		}
		s.lastOpenness = reading.Openness
	}

	// 缩放：捏合慢速进入，松开快速释放
	if reading.Pinch {
		s.state.ScaleSignal += (s.config.ScaleMax - s.state.ScaleSignal) * s.config.ScaleEngageRate
	} else {
		s.decayScale(s.config.ScaleReleaseRate)
	}

	// 旋转偏置：手腕偏离画面中心的线性函数
	s.state.RotationBias = (reading.WristX - 0.5) * s.config.RotationGain
}

// poll 取一帧并分类
func (s *GestureSystem) poll() (gesture.Reading, bool) {
	if s.provider == nil {
		return gesture.Reading{}, false
	}
	frame, ok := s.provider.Poll()
	if !ok {
		return gesture.Reading{}, false
	}
	return gesture.Classify(frame, gesture.Thresholds{
		Pinch: s.config.PinchThreshold,
		Open:  s.config.OpenThreshold,
		Fist:  s.config.FistThreshold,
	}), true
}

// relax 无手势时所有控制信号向中性值衰减
// 手动缩放开关打开时缩放信号改为逼近 scaleMax
func (s *GestureSystem) relax() {
	s.state.GestureActive = false
	s.lastOpenness = gesture.OpennessNeutral

	if s.state.ManualZoom {
		s.state.ScaleSignal += (s.config.ScaleMax - s.state.ScaleSignal) * s.config.ScaleEngageRate
	} else {
		s.decayScale(s.config.NeutralDecayRate)
	}

	s.state.RotationBias *= 1 - s.config.NeutralDecayRate
}

// decayScale 缩放信号向中性值 1.0 回落，进入吸附范围后精确归位
func (s *GestureSystem) decayScale(rate float64) {
	s.state.ScaleSignal += (1.0 - s.state.ScaleSignal) * rate
	if s.state.ScaleSignal > 1.0-s.config.ScaleNeutralEpsilon &&
		s.state.ScaleSignal < 1.0+s.config.ScaleNeutralEpsilon {
		s.state.ScaleSignal = 1.0
	}
}

// switchMode 切换展示模式，只在实际变化时播放提示音
func (s *GestureSystem) switchMode(target types.Mode) {
	if s.state.Mode() == target {
		return
	}
	if err := s.state.SetMode(target); err != nil {
		return
	}
	if am := s.state.GetAudioManager(); am != nil {
		am.PlayModeChime()
	}
}
