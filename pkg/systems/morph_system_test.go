package systems

import (
	"math"
	"testing"

	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/types"
)

const testDt = 1.0 / 60

// newMorphFixture 一个挂饰实体加形变系统
func newMorphFixture(t *testing.T) (*ecs.EntityManager, *game.GameState, *MorphSystem, *components.TransformComponent) {
	t.Helper()

	em := ecs.NewEntityManager()
	state := game.NewGameState()

	id := em.CreateEntity()
	tf := &components.TransformComponent{
		Scatter: vec.Vec3{X: 8, Y: 3, Z: -5},
		Tree:    vec.Vec3{X: 2, Y: 12, Z: 1},
		Current: vec.Vec3{X: 8, Y: 3, Z: -5},
		Weight:  1.0,
	}
	em.AddComponent(id, tf)
	em.AddComponent(id, &components.OrnamentComponent{Category: types.CategoryBall, Scale: 1})

	return em, state, NewMorphSystem(em, state, 3.0), tf
}

func TestMorphSystemConvergesToTreeTarget(t *testing.T) {
	_, state, sys, tf := newMorphFixture(t)
	state.SetMode(types.ModeTreeShape)

	for i := 0; i < 600; i++ {
		sys.Update(testDt)
	}

	if tf.Current.Dist(tf.Tree) > 0.01 {
		t.Errorf("树形模式下应收敛到树面位置, 距离 %v", tf.Current.Dist(tf.Tree))
	}
}

func TestMorphSystemFixedPointAtTarget(t *testing.T) {
	_, state, sys, tf := newMorphFixture(t)
	state.SetMode(types.ModeScattered)

	// 已在目标位置：任意步数后位置不变（不动点）
	for i := 0; i < 120; i++ {
		sys.Update(testDt)
	}

	if tf.Current.Dist(tf.Scatter) > 1e-9 {
		t.Errorf("处于目标位置时不应漂移, 距离 %v", tf.Current.Dist(tf.Scatter))
	}
}

func TestMorphSystemWeightScalesRate(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewGameState()
	state.SetMode(types.ModeTreeShape)
	sys := NewMorphSystem(em, state, 3.0)

	scatter := vec.Vec3{X: 10, Y: 0, Z: 0}
	tree := vec.Vec3{X: 0, Y: 10, Z: 0}

	// 轻挂饰（Weight 大）与重挂饰（Weight 小）
	light := &components.TransformComponent{Scatter: scatter, Tree: tree, Current: scatter, Weight: 1.0}
	heavy := &components.TransformComponent{Scatter: scatter, Tree: tree, Current: scatter, Weight: 0.4}
	for _, tf := range []*components.TransformComponent{light, heavy} {
		id := em.CreateEntity()
		em.AddComponent(id, tf)
		em.AddComponent(id, &components.OrnamentComponent{Category: types.CategoryBall, Scale: 1})
	}

	for i := 0; i < 30; i++ {
		sys.Update(testDt)
	}

	if light.Current.Dist(tree) >= heavy.Current.Dist(tree) {
		t.Errorf("轻挂饰应领先于重挂饰: light 距离 %v, heavy 距离 %v",
			light.Current.Dist(tree), heavy.Current.Dist(tree))
	}

	// 终态与到达顺序无关：两者最终都收敛到同一目标
	for i := 0; i < 1200; i++ {
		sys.Update(testDt)
	}
	if light.Current.Dist(tree) > 0.01 || heavy.Current.Dist(tree) > 0.01 {
		t.Errorf("两个挂饰都应收敛: light %v, heavy %v",
			light.Current.Dist(tree), heavy.Current.Dist(tree))
	}
}

func TestMorphSystemPinnedPhotoUntouched(t *testing.T) {
	em := ecs.NewEntityManager()
	state := game.NewGameState()
	sys := NewMorphSystem(em, state, 3.0)

	pinnedPos := vec.Vec3{X: 1, Y: 15, Z: -20}
	id := em.CreateEntity()
	tf := &components.TransformComponent{
		Scatter: vec.Vec3{X: 8, Y: 3, Z: -5},
		Tree:    vec.Vec3{X: 2, Y: 12, Z: 1},
		Current: pinnedPos,
		Weight:  1.0,
	}
	em.AddComponent(id, tf)
	em.AddComponent(id, &components.PhotoComponent{AspectRatio: 1.5, Pinned: true})

	for i := 0; i < 60; i++ {
		sys.Update(testDt)
	}

	if tf.Current.Dist(pinnedPos) > 1e-9 {
		t.Errorf("钉住的照片不应被形变系统移动, 距离 %v", tf.Current.Dist(pinnedPos))
	}
}

func TestAngleDiffShortestPath(t *testing.T) {
	tests := []struct {
		name     string
		to, from float64
		want     float64
	}{
		{"零差", 1.0, 1.0, 0},
		{"正向小角", 1.0, 0.5, 0.5},
		{"跨越边界取短路", 0.1, 2*math.Pi - 0.1, 0.2},
		{"反向跨越", 2*math.Pi - 0.1, 0.1, -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := angleDiff(tt.to, tt.from)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("angleDiff(%v, %v) = %v, want %v", tt.to, tt.from, got, tt.want)
			}
		})
	}
}
