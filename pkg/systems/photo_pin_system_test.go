package systems

import (
	"testing"

	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
)

func newPinFixture() (*game.GameState, *PhotoPinSystem, *components.PhotoComponent, *components.TransformComponent) {
	em := ecs.NewEntityManager()
	state := game.NewGameState()

	id := em.CreateEntity()
	tf := &components.TransformComponent{
		Scatter: vec.Vec3{X: 8, Y: 3, Z: -5},
		Tree:    vec.Vec3{X: 2, Y: 12, Z: 1},
		Current: vec.Vec3{X: 2, Y: 12, Z: 1},
		Weight:  1.0,
	}
	photo := &components.PhotoComponent{AspectRatio: 16.0 / 9.0}
	em.AddComponent(id, tf)
	em.AddComponent(id, photo)

	return state, NewPhotoPinSystem(em, state, 3.0), photo, tf
}

func TestPhotoPinBelowThresholdInactive(t *testing.T) {
	state, sys, photo, _ := newPinFixture()
	state.ScaleSignal = 1.0

	sys.Update(testDt)

	if photo.Pinned {
		t.Error("缩放信号低于阈值时照片不应被钉住")
	}
}

func TestPhotoPinScreenStationaryUnderRotation(t *testing.T) {
	state, sys, photo, tf := newPinFixture()
	state.ScaleSignal = 5.0

	// 父容器持续旋转的 120 帧里，照片的世界位姿必须逐帧不变
	var firstWorld vec.Vec3
	for frame := 0; frame < 120; frame++ {
		state.CameraAngle += 0.02
		sys.Update(testDt)

		if !photo.Pinned {
			t.Fatal("缩放信号超过阈值时照片应被钉住")
		}

		world := vec.RotationY(state.CameraAngle).MulPoint(tf.Current)
		if frame == 0 {
			firstWorld = world
			continue
		}
		if world.Dist(firstWorld) > 1e-6 {
			t.Fatalf("第 %d 帧照片世界位置漂移 %v", frame, world.Dist(firstWorld))
		}
	}
}

func TestPhotoPinMultiPhotoSlotsStable(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewGameState()
	state.ScaleSignal = 5.0

	// 两张照片：槽位必须按创建顺序固定，不随查询抖动互换
	photos := make([]*components.TransformComponent, 2)
	for i := range photos {
		id := em.CreateEntity()
		photos[i] = &components.TransformComponent{Weight: 1.0}
		em.AddComponent(id, photos[i])
		em.AddComponent(id, &components.PhotoComponent{AspectRatio: 4.0 / 3.0})
	}

	sys := NewPhotoPinSystem(em, state, 3.0)

	var firstWorlds [2]vec.Vec3
	for frame := 0; frame < 120; frame++ {
		state.CameraAngle += 0.02
		sys.Update(testDt)

		for i, tf := range photos {
			world := vec.RotationY(state.CameraAngle).MulPoint(tf.Current)
			if frame == 0 {
				firstWorlds[i] = world
				continue
			}
			if world.Dist(firstWorlds[i]) > 1e-6 {
				t.Fatalf("第 %d 帧照片 %d 世界位置漂移 %v", frame, i, world.Dist(firstWorlds[i]))
			}
		}
	}

	// 两张照片以 pinSpacing 为间距左右对称排开
	if firstWorlds[0].X >= firstWorlds[1].X {
		t.Errorf("照片应按创建顺序从左到右排列: %v, %v", firstWorlds[0], firstWorlds[1])
	}
	gap := firstWorlds[1].X - firstWorlds[0].X
	if gap < pinSpacing-1e-9 || gap > pinSpacing+1e-9 {
		t.Errorf("照片横向间距应为 %v, 实际 %v", pinSpacing, gap)
	}
}

func TestPhotoPinFacesViewer(t *testing.T) {
	state, sys, _, tf := newPinFixture()
	state.ScaleSignal = 5.0
	state.CameraAngle = 1.234

	sys.Update(testDt)

	// 朝向抵消场景旋转
	if tf.RotationY != -state.CameraAngle {
		t.Errorf("照片朝向应为 -CameraAngle (%v), got %v", -state.CameraAngle, tf.RotationY)
	}
}

func TestPhotoPinReleaseRestoresMorph(t *testing.T) {
	state, sys, photo, _ := newPinFixture()
	state.ScaleSignal = 5.0
	sys.Update(testDt)
	if !photo.Pinned {
		t.Fatal("前置条件失败: 照片应已钉住")
	}

	// 信号回落后钉住解除，形变系统重新接管
	state.ScaleSignal = 1.0
	sys.Update(testDt)
	if photo.Pinned {
		t.Error("缩放信号回落后钉住应解除")
	}
}
