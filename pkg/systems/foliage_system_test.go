package systems

import (
	"testing"

	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/types"
)

func newFoliageFixture() (*game.GameState, *FoliageSystem, *components.FoliageFieldComponent) {
	em := ecs.NewEntityManager()
	state := game.NewGameState()

	field := &components.FoliageFieldComponent{
		Scatter: []vec.Vec3f{{X: 10, Y: 0, Z: 0}, {X: -5, Y: 2, Z: 8}},
		Tree:    []vec.Vec3f{{X: 1, Y: 20, Z: 0}, {X: -2, Y: 5, Z: 3}},
		Current: []vec.Vec3f{{X: 10, Y: 0, Z: 0}, {X: -5, Y: 2, Z: 8}},
	}
	em.AddComponent(em.CreateEntity(), field)

	return state, NewFoliageSystem(em, state, 0.9), field
}

func TestFoliageMorphFactorAdvancesMonotonically(t *testing.T) {
	state, sys, field := newFoliageFixture()
	state.SetMode(types.ModeTreeShape)

	prev := field.MorphFactor
	for i := 0; i < 120; i++ {
		sys.Update(testDt)
		if field.MorphFactor < prev {
			t.Fatalf("第 %d 帧形变因子倒退: %v -> %v", i, prev, field.MorphFactor)
		}
		if field.MorphFactor > 1 {
			t.Fatalf("形变因子越界: %v", field.MorphFactor)
		}
		prev = field.MorphFactor
	}

	if field.MorphFactor != 1 {
		t.Errorf("足够帧数后形变因子应到达 1, got %v", field.MorphFactor)
	}

	// 因子为 1 时每点位置等于树形缓冲
	for i := range field.Current {
		if field.Current[i] != field.Tree[i] {
			t.Errorf("点 %d 应与树形位置重合: %v vs %v", i, field.Current[i], field.Tree[i])
		}
	}
}

func TestFoliageMorphReversible(t *testing.T) {
	state, sys, field := newFoliageFixture()
	state.SetMode(types.ModeTreeShape)

	// 推到一半再切回散落
	for i := 0; i < 30; i++ {
		sys.Update(testDt)
	}
	mid := field.MorphFactor
	if mid <= 0 || mid >= 1 {
		t.Fatalf("前置条件失败: 因子应在中途, got %v", mid)
	}

	state.SetMode(types.ModeScattered)
	for i := 0; i < 600; i++ {
		sys.Update(testDt)
	}

	if field.MorphFactor != 0 {
		t.Errorf("切回散落后因子应回到 0, got %v", field.MorphFactor)
	}
	for i := range field.Current {
		if field.Current[i] != field.Scatter[i] {
			t.Errorf("点 %d 应回到散落位置: %v vs %v", i, field.Current[i], field.Scatter[i])
		}
	}
}
