package components

import (
	"github.com/gonewx/startree/internal/vec"
)

// SnowFieldComponent 雪花粒子场
// 与针叶场相同的整体持有方式；雪花不参与模式形变，
// 只在固定空间内下落并在底部回绕到顶部
type SnowFieldComponent struct {
	// Positions 雪花位置缓冲
	Positions []vec.Vec3f
	// FallSpeeds 每片雪花的下落速度（世界单位/秒）
	FallSpeeds []float32
	// DriftPhases 水平飘移的相位偏移
	DriftPhases []float32

	// CeilingY 回绕顶部高度
	CeilingY float32
	// FloorY 回绕底部高度
	FloorY float32
	// DriftAmplitude 水平飘移幅度
	DriftAmplitude float32

	// Clock 场内累计时间（秒），驱动飘移正弦
	Clock float64
}
