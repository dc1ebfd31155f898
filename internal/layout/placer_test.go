package layout

import (
	"math/rand"
	"testing"
)

func testPlacerSpec() PlacerSpec {
	return PlacerSpec{AttemptBudget: 50, AcceptFactor: 0.85}
}

// TestPlacerPairwiseDistance 测试碰撞约束
// 所有已接受的放置两两距离 ≥ acceptFactor × (r1 + r2)
func TestPlacerPairwiseDistance(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(11)), testCone(), 26)
	p := NewPlacer(testPlacerSpec())

	radii := []float64{0.9, 1.1, 0.6, 0.8, 0.6, 0.4, 0.9}
	for i := 0; i < 150; i++ {
		r := radii[i%len(radii)]
		p.TryPlace(r, s.TreeSurfacePosition)
	}

	placed := p.Placements()
	if len(placed) == 0 {
		t.Fatal("没有任何放置被接受")
	}

	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			minDist := 0.85 * (placed[i].Radius + placed[j].Radius)
			dist := placed[i].Pos.Dist(placed[j].Pos)
			if dist < minDist-1e-9 {
				t.Fatalf("放置 %d 与 %d 过近: 距离 %v < 最小 %v", i, j, dist, minDist)
			}
		}
	}
}

// TestPlacerExhaustionDropsSilently 预算耗尽时条目被丢弃而非报错
// 在一个小得放不下的锥面上塞入大量大半径条目
func TestPlacerExhaustionDropsSilently(t *testing.T) {
	tiny := ConeSpec{Height: 4, BaseRadius: 1.5, SurfaceBiasMin: 0.95, SurfaceBiasMax: 1.1}
	s := NewSampler(rand.New(rand.NewSource(13)), tiny, 10)
	p := NewPlacer(testPlacerSpec())

	const requested = 60
	accepted := 0
	for i := 0; i < requested; i++ {
		if _, ok := p.TryPlace(1.2, s.TreeSurfacePosition); ok {
			accepted++
		}
	}

	if accepted == requested {
		t.Error("拥挤场景下不应全部放置成功")
	}
	if accepted != len(p.Placements()) {
		t.Errorf("接受计数不一致: %d vs %d", accepted, len(p.Placements()))
	}
	if p.Dropped() != requested-accepted {
		t.Errorf("丢弃计数 = %d, 期望 %d", p.Dropped(), requested-accepted)
	}
}

// TestPlacerFirstItemAlwaysFits 空放置器的第一个条目必然成功
func TestPlacerFirstItemAlwaysFits(t *testing.T) {
	s := NewSampler(rand.New(rand.NewSource(17)), testCone(), 26)
	p := NewPlacer(testPlacerSpec())

	if _, ok := p.TryPlace(2.0, s.TreeSurfacePosition); !ok {
		t.Error("空列表上的第一次放置不应失败")
	}
}

// TestPlacerAcceptFactorPermitsNesting 接受系数 0.85 允许轻微嵌套
// 距离在 [0.85×和, 1.0×和) 区间的候选应被接受
func TestPlacerAcceptFactorPermitsNesting(t *testing.T) {
	p := NewPlacer(testPlacerSpec())

	s := NewSampler(rand.New(rand.NewSource(19)), testCone(), 26)
	first, ok := p.TryPlace(1.0, s.TreeSurfacePosition)
	if !ok {
		t.Fatal("首个放置失败")
	}

	// 构造一个距首个放置 1.8 的候选（完全不重叠的阈值是 2.0）
	candidate := first
	candidate.X += 1.8
	if !p.fits(candidate, 1.0) {
		t.Errorf("距离 1.8 (≥ 0.85×2.0=1.7) 的候选应被接受")
	}

	tooClose := first
	tooClose.X += 1.5
	if p.fits(tooClose, 1.0) {
		t.Errorf("距离 1.5 (< 1.7) 的候选不应被接受")
	}
}
