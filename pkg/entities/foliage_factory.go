package entities

import (
	"image/color"
	"math/rand"

	"github.com/gonewx/startree/internal/layout"
	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/ecs"
)

// NewFoliageFieldEntity 创建针叶粒子场实体
//
// 树形位置用黄金角螺旋采样（数万点时纯随机方位角会聚簇）；
// 散落位置在球体内均匀分布。每点颜色是深浅不一的绿色。
func NewFoliageFieldEntity(
	manager *ecs.EntityManager,
	rng *rand.Rand,
	sampler *layout.Sampler,
	layoutCfg *config.LayoutConfig,
) ecs.EntityID {
	count := layoutCfg.Foliage.Count

	field := &components.FoliageFieldComponent{
		Scatter: make([]vec.Vec3f, count),
		Tree:    make([]vec.Vec3f, count),
		Current: make([]vec.Vec3f, count),
		Colors:  make([]color.RGBA, count),
	}

	for i := 0; i < count; i++ {
		scatter := vec.Vec3fOf(sampler.ScatterPosition())
		field.Scatter[i] = scatter
		field.Tree[i] = vec.Vec3fOf(sampler.FoliagePosition())
		field.Current[i] = scatter
		field.Colors[i] = foliageColor(rng)
	}

	id := manager.CreateEntity()
	manager.AddComponent(id, field)
	return id
}

// foliageColor 随机的针叶绿
func foliageColor(rng *rand.Rand) color.RGBA {
	g := 110 + uint8(rng.Intn(110))
	return color.RGBA{
		R: uint8(10 + rng.Intn(30)),
		G: g,
		B: uint8(20 + rng.Intn(40)),
		A: 255,
	}
}
