package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/ecs"
)

// NewSnowFieldEntity 创建雪花粒子场实体
// 雪花在散落球体的包围空间内分布，落到底部后回绕到顶部
func NewSnowFieldEntity(
	manager *ecs.EntityManager,
	rng *rand.Rand,
	layoutCfg *config.LayoutConfig,
) ecs.EntityID {
	count := layoutCfg.Snow.Count
	radius := layoutCfg.Scatter.Radius
	ceiling := float32(radius * 1.2)
	floor := float32(-radius * 0.4)

	field := &components.SnowFieldComponent{
		Positions:      make([]vec.Vec3f, count),
		FallSpeeds:     make([]float32, count),
		DriftPhases:    make([]float32, count),
		CeilingY:       ceiling,
		FloorY:         floor,
		DriftAmplitude: float32(layoutCfg.Snow.DriftAmplitude),
	}

	speedSpan := layoutCfg.Snow.FallSpeedMax - layoutCfg.Snow.FallSpeedMin
	for i := 0; i < count; i++ {
		field.Positions[i] = vec.Vec3f{
			X: float32((rng.Float64()*2 - 1) * radius),
			Y: floor + rng.Float32()*(ceiling-floor),
			Z: float32((rng.Float64()*2 - 1) * radius),
		}
		field.FallSpeeds[i] = float32(layoutCfg.Snow.FallSpeedMin + rng.Float64()*speedSpan)
		field.DriftPhases[i] = rng.Float32() * 2 * math.Pi
	}

	id := manager.CreateEntity()
	manager.AddComponent(id, field)
	return id
}
