package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/startree/internal/layout"
	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/types"
)

// 照片相框在树上偏好的归一化高度带
// 太低会被底部填充带的挂饰挤占，太高锥面半径不够放相框
const (
	photoBandMin = 0.25
	photoBandMax = 0.75
)

// NewPhotoEntity 为上传的照片创建相框实体
//
// 散落位置在固定半径球体内随机；树形位置按 "photo" 类别
// 走与挂饰相同的碰撞感知放置。放置预算耗尽时照片仍然创建，
// 直接使用未校验的锥面采样位置——上传的照片必须出现在树上，
// 轻微重叠好过整张照片消失。
//
// 返回: 创建的实体ID
func NewPhotoEntity(
	manager *ecs.EntityManager,
	rng *rand.Rand,
	sampler *layout.Sampler,
	placer *layout.Placer,
	ornaments *config.OrnamentConfig,
	photo *game.PhotoImage,
) ecs.EntityID {
	params := ornaments.Params(types.CategoryPhoto)

	bandSample := func() vec.Vec3 {
		return sampler.TreeSurfacePositionInBand(photoBandMin, photoBandMax)
	}

	treePos, ok := placer.TryPlace(params.CollisionRadius, bandSample)
	if !ok {
		treePos = bandSample()
	}

	id := manager.CreateEntity()

	scatterPos := sampler.ScatterPosition()
	manager.AddComponent(id, &components.TransformComponent{
		Scatter:   scatterPos,
		Tree:      treePos,
		Current:   scatterPos,
		Weight:    1.0 / params.Mass,
		SpinSpeed: (0.3 + rng.Float64()*0.6) * spinDirection(rng),
		Phase:     rng.Float64() * 2 * math.Pi,
	})

	manager.AddComponent(id, &components.PhotoComponent{
		Image:       photo.Image,
		AspectRatio: photo.AspectRatio,
		PinnedLocal: vec.Identity(),
	})

	return id
}
