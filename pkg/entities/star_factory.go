package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/startree/internal/layout"
	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/ecs"
)

// starAboveTree 树顶星悬在锥尖上方的高度（世界单位）
const starAboveTree = 1.8

// NewStarEntity 创建树顶星实体
// 树形位置固定在锥尖正上方的中轴上，不参与碰撞放置
func NewStarEntity(
	manager *ecs.EntityManager,
	rng *rand.Rand,
	sampler *layout.Sampler,
	layoutCfg *config.LayoutConfig,
) ecs.EntityID {
	id := manager.CreateEntity()

	scatterPos := sampler.ScatterPosition()
	manager.AddComponent(id, &components.TransformComponent{
		Scatter: scatterPos,
		Tree:    vec.Vec3{X: 0, Y: layoutCfg.Tree.Height + starAboveTree, Z: 0},
		Current: scatterPos,
		Weight:  1.0,
		// 星星始终缓慢自转
		SpinSpeed: 0.6,
		Phase:     rng.Float64() * 2 * math.Pi,
	})

	manager.AddComponent(id, &components.StarComponent{
		BaseScale: 1.0,
	})

	return id
}
