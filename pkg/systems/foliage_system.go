package systems

import (
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/types"
	"github.com/gonewx/startree/pkg/utils"
)

// FoliageSystem 针叶粒子场的形变驱动
//
// 全局形变因子向当前模式对应的目标（0 或 1）平滑推进，从不跳变，
// 每点位置按缓动后的因子在散落/树形缓冲间插值，
// 形成连续的"聚合成树"动画而不是瞬间切换。
type FoliageSystem struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
	// morphRate 形变因子的推进速率（每秒），来自 data/layout.yaml
	morphRate float64
}

// NewFoliageSystem 创建针叶系统
func NewFoliageSystem(em *ecs.EntityManager, state *game.GameState, morphRate float64) *FoliageSystem {
	return &FoliageSystem{
		entityManager: em,
		state:         state,
		morphRate:     morphRate,
	}
}

// Update 推进形变因子并重写位置缓冲
func (s *FoliageSystem) Update(deltaTime float64) {
	target := 0.0
	if s.state.Mode() == types.ModeTreeShape {
		target = 1.0
	}

	for _, id := range ecs.GetEntitiesWith1[*components.FoliageFieldComponent](s.entityManager) {
		field, ok := ecs.GetComponent[*components.FoliageFieldComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 因子向目标匀速推进，到达后停住
		step := s.morphRate * deltaTime
		if field.MorphFactor < target {
			field.MorphFactor += step
			if field.MorphFactor > target {
				field.MorphFactor = target
			}
		} else if field.MorphFactor > target {
			field.MorphFactor -= step
			if field.MorphFactor < target {
				field.MorphFactor = target
			}
		}

		// 缓动后的混合因子，端点处导数为零，起止更柔和
		t := float32(utils.Smoothstep(field.MorphFactor))
		for i := range field.Current {
			field.Current[i] = field.Scatter[i].Lerp(field.Tree[i], t)
		}
	}
}
