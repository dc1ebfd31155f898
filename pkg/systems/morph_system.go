package systems

import (
	"math"

	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/types"
)

// 指数平滑速率（每秒）
// 实际每帧因子 = rate × deltaTime（上限 1），挂饰再乘以 Weight
const (
	// ornamentAssembleRate 挂饰向树形位置收敛的基准速率
	ornamentAssembleRate = 2.2
	// ornamentScatterRate 挂饰向散落位置收敛的基准速率（飘散更慢）
	ornamentScatterRate = 1.4
	// photoRate 照片相框的常规收敛速率
	photoRate = 2.0
	// photoZoomRate 展示子模式激活时照片的收敛速率（快速就位）
	photoZoomRate = 6.0
	// starRate 树顶星的收敛速率
	starRate = 1.8
	// orientRate 树形模式下挂饰朝向的收敛速率
	orientRate = 3.0
	// swayAmplitude 树形模式下的轻微摇摆幅度（弧度）
	swayAmplitude = 0.12
)

// MorphSystem 形变/动画驱动
//
// 每帧把每个离散实体（挂饰、照片、星星）的实时变换
// 用指数平滑推向当前模式隐含的目标位置：
// position += (target - position) × rate。
// 模式切换是瞬时的，实体各自独立地在多帧内缓动过去。
type MorphSystem struct {
	entityManager *ecs.EntityManager
	state         *game.GameState
	// zoomThreshold 缩放信号超过该值时照片进入展示子模式
	zoomThreshold float64
	clock         float64
}

// NewMorphSystem 创建形变系统
func NewMorphSystem(em *ecs.EntityManager, state *game.GameState, zoomThreshold float64) *MorphSystem {
	return &MorphSystem{
		entityManager: em,
		state:         state,
		zoomThreshold: zoomThreshold,
	}
}

// Update 更新所有离散实体的位置与朝向
func (s *MorphSystem) Update(deltaTime float64) {
	s.clock += deltaTime
	mode := s.state.Mode()
	zoomActive := s.state.ScaleSignal >= s.zoomThreshold

	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](s.entityManager) {
		tf, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}

		target := s.targetOf(tf, mode)

		switch {
		case ecs.HasComponentOf[*components.OrnamentComponent](s.entityManager, id):
			s.updateOrnament(tf, mode, target, deltaTime)
		case ecs.HasComponentOf[*components.PhotoComponent](s.entityManager, id):
			s.updatePhoto(id, tf, mode, target, zoomActive, deltaTime)
		case ecs.HasComponentOf[*components.StarComponent](s.entityManager, id):
			s.updateStar(id, tf, target, deltaTime)
		default:
			tf.Current = tf.Current.Approach(target, frameRate(photoRate, deltaTime))
		}
	}
}

// targetOf 返回当前模式隐含的目标位置
func (s *MorphSystem) targetOf(tf *components.TransformComponent, mode types.Mode) vec.Vec3 {
	if mode == types.ModeTreeShape {
		return tf.Tree
	}
	return tf.Scatter
}

// updateOrnament 挂饰：速率按重量缩放；散落时自转，树形时朝外带摇摆
func (s *MorphSystem) updateOrnament(tf *components.TransformComponent, mode types.Mode, target vec.Vec3, deltaTime float64) {
	base := ornamentAssembleRate
	if mode == types.ModeScattered {
		base = ornamentScatterRate
	}
	tf.Current = tf.Current.Approach(target, frameRate(base*tf.Weight, deltaTime))

	if mode == types.ModeScattered {
		// 持续自转
		tf.RotationY += tf.SpinSpeed * deltaTime
		return
	}

	// 树形：缓动到朝外的方向，叠加轻微摇摆
	outward := math.Atan2(tf.Current.X, tf.Current.Z)
	sway := swayAmplitude * math.Sin(s.clock*1.3+tf.Phase)
	tf.RotationY += angleDiff(outward+sway, tf.RotationY) * frameRate(orientRate, deltaTime)
}

// updatePhoto 照片：展示子模式下加速收敛；钉住时位置由 PhotoPinSystem 接管
func (s *MorphSystem) updatePhoto(id ecs.EntityID, tf *components.TransformComponent, mode types.Mode, target vec.Vec3, zoomActive bool, deltaTime float64) {
	photo, ok := ecs.GetComponent[*components.PhotoComponent](s.entityManager, id)
	if !ok {
		return
	}

	if photo.Pinned {
		// 钉住期间 PhotoPinSystem 每帧直接解算位置，这里不再平滑
		return
	}

	rate := photoRate
	if zoomActive {
		rate = photoZoomRate
	}
	tf.Current = tf.Current.Approach(target, frameRate(rate*tf.Weight, deltaTime))

	if mode == types.ModeScattered {
		tf.RotationY += tf.SpinSpeed * deltaTime
	} else {
		outward := math.Atan2(tf.Current.X, tf.Current.Z)
		sway := swayAmplitude * 0.5 * math.Sin(s.clock+tf.Phase)
		tf.RotationY += angleDiff(outward+sway, tf.RotationY) * frameRate(orientRate, deltaTime)
	}
}

// updateStar 树顶星：固定速率收敛，持续自转与脉动
func (s *MorphSystem) updateStar(id ecs.EntityID, tf *components.TransformComponent, target vec.Vec3, deltaTime float64) {
	tf.Current = tf.Current.Approach(target, frameRate(starRate, deltaTime))
	tf.RotationY += tf.SpinSpeed * deltaTime

	if star, ok := ecs.GetComponent[*components.StarComponent](s.entityManager, id); ok {
		star.PulsePhase += deltaTime
	}
}

// frameRate 把每秒速率换算成每帧平滑因子，上限 1
func frameRate(ratePerSecond, deltaTime float64) float64 {
	f := ratePerSecond * deltaTime
	if f > 1 {
		return 1
	}
	return f
}

// angleDiff 返回从 from 转到 to 的最短角差（[-π, π]）
func angleDiff(to, from float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
