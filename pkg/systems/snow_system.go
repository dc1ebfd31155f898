package systems

import (
	"github.com/chewxy/math32"

	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
)

// SnowSystem 雪花下落驱动
// 雪花匀速下落并按正弦水平飘移，落到底部后回绕到顶部
type SnowSystem struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
}

// NewSnowSystem 创建雪花系统
func NewSnowSystem(em *ecs.EntityManager, state *game.GameState) *SnowSystem {
	return &SnowSystem{entityManager: em, state: state}
}

// Update 推进雪花位置
func (s *SnowSystem) Update(deltaTime float64) {
	settings := s.state.GetSettingsManager()
	if settings != nil && !settings.GetSettings().SnowEnabled {
		return
	}

	dt := float32(deltaTime)

	for _, id := range ecs.GetEntitiesWith1[*components.SnowFieldComponent](s.entityManager) {
		field, ok := ecs.GetComponent[*components.SnowFieldComponent](s.entityManager, id)
		if !ok {
			continue
		}

		field.Clock += deltaTime
		clock := float32(field.Clock)

		for i := range field.Positions {
			p := &field.Positions[i]
			p.Y -= field.FallSpeeds[i] * dt
			p.X += field.DriftAmplitude * 0.4 * math32.Cos(clock*0.8+field.DriftPhases[i]) * dt

			if p.Y < field.FloorY {
				p.Y = field.CeilingY
			}
		}
	}
}
