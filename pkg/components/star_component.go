package components

// StarComponent 树顶星
type StarComponent struct {
	// PulsePhase 亮度/缩放脉动的相位（秒，持续累加）
	PulsePhase float64
	// BaseScale 基准缩放
	BaseScale float64
}
