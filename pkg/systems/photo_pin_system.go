package systems

import (
	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
)

// 钉住照片在观察者前方的位姿
const (
	// pinDepth 钉住照片到场景原点的深度（朝向相机为负 Z 前移）
	pinDepth = config.CameraDistance * 0.55
	// pinHeight 钉住照片的高度
	pinHeight = 15.0
	// pinSpacing 多张照片横向排开的间距
	pinSpacing = 7.5
)

// PhotoPinSystem 照片的世界空间钉住
//
// 缩放信号超过阈值时进入展示子模式：每张照片被钉到观察者
// 前方的固定世界位姿。父容器（整棵树）每帧都在旋转，
// 所以每帧用父世界变换的逆重新解算照片的局部变换
// （vec.PinLocal），保证照片在屏幕上静止。
type PhotoPinSystem struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
	zoomThreshold float64
}

// NewPhotoPinSystem 创建照片钉住系统
func NewPhotoPinSystem(em *ecs.EntityManager, state *game.GameState, zoomThreshold float64) *PhotoPinSystem {
	return &PhotoPinSystem{
		entityManager: em,
		state:         state,
		zoomThreshold: zoomThreshold,
	}
}

// Update 解算钉住照片的局部变换
func (s *PhotoPinSystem) Update(deltaTime float64) {
	zoomActive := s.state.ScaleSignal >= s.zoomThreshold
	parentWorld := vec.RotationY(s.state.CameraAngle)

	photos := ecs.GetEntitiesWith2[*components.PhotoComponent, *components.TransformComponent](s.entityManager)

	for slot, id := range photos {
		photo, ok := ecs.GetComponent[*components.PhotoComponent](s.entityManager, id)
		if !ok {
			continue
		}
		tf, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if !zoomActive {
			photo.Pinned = false
			continue
		}

		photo.Pinned = true

		// 期望的世界位姿：观察者前方一字排开，正对相机
		offset := (float64(slot) - float64(len(photos)-1)/2) * pinSpacing
		desiredWorld := vec.Translation(vec.Vec3{X: offset, Y: pinHeight, Z: pinDepth})

		photo.PinnedLocal = vec.PinLocal(parentWorld, desiredWorld)

		// 局部位置直接取解算结果，保证世界位姿每帧精确成立
		tf.Current = photo.PinnedLocal.MulPoint(vec.Vec3{})
		// 朝向抵消场景旋转，照片始终正对观察者
		tf.RotationY = -s.state.CameraAngle
	}
}
