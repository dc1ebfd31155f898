// Package systems 实现所有每帧系统
// 所有系统在渲染线程的 Update 回调内同步执行，
// 可变实体状态只由这里的系统写入，无需加锁
package systems

import (
	"math"

	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/game"
)

// CameraSystem 推进场景旋转角
// 角速度 = 自动旋转 + 旋转偏置 × 增益
type CameraSystem struct {
	state *game.GameState
}

// NewCameraSystem 创建相机系统
func NewCameraSystem(state *game.GameState) *CameraSystem {
	return &CameraSystem{state: state}
}

// Update 推进旋转角
func (s *CameraSystem) Update(deltaTime float64) {
	base := float64(config.AutoRotateSpeed)
	if settings := s.state.GetSettingsManager(); settings != nil {
		if v := settings.GetSettings().AutoRotateSpeed; v > 0 {
			base = v
		}
	}

	omega := base + s.state.RotationBias*config.RotationBiasGain
	s.state.CameraAngle += omega * deltaTime

	// 保持角度在 [0, 2π) 内，避免长时间运行后精度流失
	if s.state.CameraAngle >= 2*math.Pi {
		s.state.CameraAngle -= 2 * math.Pi
	} else if s.state.CameraAngle < 0 {
		s.state.CameraAngle += 2 * math.Pi
	}
}
