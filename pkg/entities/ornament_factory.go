// Package entities 提供实体工厂
// 每个工厂创建实体并挂载所需组件，布局计算委托给 internal/layout
package entities

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/startree/internal/layout"
	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/types"
)

// NewOrnamentEntities 批量创建挂饰实体
//
// 两遍放置：
//  1. 主遍：按权重抽取类别，在整个锥面上碰撞感知放置 ornamentCount 个；
//  2. 填充遍：在树脚高度带内用固定类别放置 baseBandCount 个，避免底部空洞。
//
// 放置预算耗尽的挂饰被静默丢弃，实际数量可能少于请求数。
//
// 参数:
//   - manager: EntityManager 实例
//   - rng: 随机源（与采样器共享，保证整体布局可复现）
//   - sampler: 布局采样器
//   - placer: 碰撞感知放置器（照片工厂后续复用同一实例）
//   - ornaments: 挂饰类别参数表
//   - layoutCfg: 布局配置
//
// 返回: 创建的实体ID列表
func NewOrnamentEntities(
	manager *ecs.EntityManager,
	rng *rand.Rand,
	sampler *layout.Sampler,
	placer *layout.Placer,
	ornaments *config.OrnamentConfig,
	layoutCfg *config.LayoutConfig,
) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, layoutCfg.Placer.OrnamentCount+layoutCfg.Placer.BaseBandCount)

	// 主遍：全锥面加权放置
	for i := 0; i < layoutCfg.Placer.OrnamentCount; i++ {
		cat := drawCategory(rng, ornaments)
		if id, ok := placeOrnament(manager, rng, sampler, placer, ornaments, cat, sampler.TreeSurfacePosition); ok {
			ids = append(ids, id)
		}
	}

	// 填充遍：树脚高度带
	band := layoutCfg.Tree.BaseBandHeight
	bandSample := func() vec.Vec3 {
		return sampler.TreeSurfacePositionInBand(0, band)
	}
	for i := 0; i < layoutCfg.Placer.BaseBandCount; i++ {
		if id, ok := placeOrnament(manager, rng, sampler, placer, ornaments, ornaments.BaseBand(), bandSample); ok {
			ids = append(ids, id)
		}
	}

	log.Printf("[Entities] Ornaments placed: %d accepted, %d dropped after retry budget",
		len(ids), placer.Dropped())
	return ids
}

// placeOrnament 放置单个挂饰
// 放置预算耗尽时返回 (0, false)，不创建实体
func placeOrnament(
	manager *ecs.EntityManager,
	rng *rand.Rand,
	sampler *layout.Sampler,
	placer *layout.Placer,
	ornaments *config.OrnamentConfig,
	cat types.OrnamentCategory,
	sample func() vec.Vec3,
) (ecs.EntityID, bool) {
	params := ornaments.Params(cat)

	scale := params.ScaleMin + rng.Float64()*(params.ScaleMax-params.ScaleMin)
	radius := params.EffectiveRadius(scale)

	treePos, ok := placer.TryPlace(radius, sample)
	if !ok {
		return 0, false
	}

	id := manager.CreateEntity()

	scatterPos := sampler.ScatterPosition()
	manager.AddComponent(id, &components.TransformComponent{
		Scatter: scatterPos,
		Tree:    treePos,
		Current: scatterPos,
		// 重的挂饰收敛慢
		Weight:    1.0 / params.Mass,
		SpinSpeed: (0.5 + rng.Float64()*1.5) * spinDirection(rng),
		Phase:     rng.Float64() * 2 * math.Pi,
	})

	manager.AddComponent(id, &components.OrnamentComponent{
		Category: cat,
		Scale:    scale,
		Color:    params.Palette[rng.Intn(len(params.Palette))],
		Radius:   radius,
	})

	return id, true
}

// drawCategory 按 drawWeight 加权随机抽取类别
func drawCategory(rng *rand.Rand, ornaments *config.OrnamentConfig) types.OrnamentCategory {
	total := ornaments.TotalDrawWeight()
	roll := rng.Float64() * total

	for _, cat := range types.DrawableCategories() {
		roll -= ornaments.Params(cat).DrawWeight
		if roll < 0 {
			return cat
		}
	}
	// 浮点边界兜底
	cats := types.DrawableCategories()
	return cats[len(cats)-1]
}

// spinDirection 随机自转方向
func spinDirection(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
