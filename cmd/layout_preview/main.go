// layout_preview 在终端里预览布局生成结果
//
// 不启动渲染窗口：按给定种子跑一遍完整的挂饰放置流程，
// 输出每个类别的接受数、丢弃数和高度分布直方图。
// 用于调参 data/layout.yaml 和 data/ornaments.yaml。
//
// 用法:
//
//	go run ./cmd/layout_preview -layout data/layout.yaml -ornaments data/ornaments.yaml -seed 42
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/gonewx/startree/internal/layout"
	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/types"
)

func main() {
	layoutPath := flag.String("layout", "data/layout.yaml", "布局配置路径")
	ornamentPath := flag.String("ornaments", "data/ornaments.yaml", "挂饰配置路径")
	seed := flag.Int64("seed", 1, "随机种子")
	flag.Parse()

	layoutCfg, err := loadLayout(*layoutPath)
	if err != nil {
		log.Fatalf("布局配置加载失败: %v", err)
	}
	ornamentCfg, err := loadOrnaments(*ornamentPath)
	if err != nil {
		log.Fatalf("挂饰配置加载失败: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	sampler := layout.NewSampler(rng, layout.ConeSpec{
		Height:         layoutCfg.Tree.Height,
		BaseRadius:     layoutCfg.Tree.BaseRadius,
		SurfaceBiasMin: layoutCfg.Tree.SurfaceBiasMin,
		SurfaceBiasMax: layoutCfg.Tree.SurfaceBiasMax,
	}, layoutCfg.Scatter.Radius)
	placer := layout.NewPlacer(layout.PlacerSpec{
		AttemptBudget: layoutCfg.Placer.AttemptBudget,
		AcceptFactor:  layoutCfg.Placer.AcceptFactor,
	})

	accepted := map[types.OrnamentCategory]int{}
	droppedPer := map[types.OrnamentCategory]int{}
	var heights []float64

	// 主遍
	for i := 0; i < layoutCfg.Placer.OrnamentCount; i++ {
		cat := drawCategory(rng, ornamentCfg)
		if pos, ok := place(rng, placer, sampler.TreeSurfacePosition, ornamentCfg, cat); ok {
			accepted[cat]++
			heights = append(heights, pos.Y)
		} else {
			droppedPer[cat]++
		}
	}

	// 底部填充带
	band := layoutCfg.Tree.BaseBandHeight
	bandSample := func() vec.Vec3 { return sampler.TreeSurfacePositionInBand(0, band) }
	for i := 0; i < layoutCfg.Placer.BaseBandCount; i++ {
		cat := ornamentCfg.BaseBand()
		if pos, ok := place(rng, placer, bandSample, ornamentCfg, cat); ok {
			accepted[cat]++
			heights = append(heights, pos.Y)
		} else {
			droppedPer[cat]++
		}
	}

	fmt.Printf("种子 %d: 接受 %d, 丢弃 %d\n\n", *seed, len(heights), placer.Dropped())
	fmt.Println("类别统计:")
	for _, cat := range types.DrawableCategories() {
		fmt.Printf("  %-9s 接受 %3d  丢弃 %3d\n", cat, accepted[cat], droppedPer[cat])
	}

	fmt.Println("\n高度分布:")
	printHistogram(heights, layoutCfg.Tree.Height, 12)
}

func loadLayout(path string) (*config.LayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.ParseLayoutConfig(data)
}

func loadOrnaments(path string) (*config.OrnamentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.ParseOrnamentConfig(data)
}

// place 按类别参数做一次碰撞感知放置
func place(
	rng *rand.Rand,
	placer *layout.Placer,
	sample func() vec.Vec3,
	ornaments *config.OrnamentConfig,
	cat types.OrnamentCategory,
) (vec.Vec3, bool) {
	params := ornaments.Params(cat)
	scale := params.ScaleMin + rng.Float64()*(params.ScaleMax-params.ScaleMin)
	return placer.TryPlace(params.EffectiveRadius(scale), sample)
}

// drawCategory 按 drawWeight 加权随机抽取类别
func drawCategory(rng *rand.Rand, ornaments *config.OrnamentConfig) types.OrnamentCategory {
	roll := rng.Float64() * ornaments.TotalDrawWeight()
	for _, cat := range types.DrawableCategories() {
		roll -= ornaments.Params(cat).DrawWeight
		if roll < 0 {
			return cat
		}
	}
	cats := types.DrawableCategories()
	return cats[len(cats)-1]
}

// printHistogram 按高度分桶打印 ASCII 直方图
func printHistogram(heights []float64, treeHeight float64, buckets int) {
	counts := make([]int, buckets)
	max := 0
	for _, h := range heights {
		b := int(h / treeHeight * float64(buckets))
		if b >= buckets {
			b = buckets - 1
		}
		if b < 0 {
			b = 0
		}
		counts[b]++
		if counts[b] > max {
			max = counts[b]
		}
	}
	if max == 0 {
		max = 1
	}

	for b := buckets - 1; b >= 0; b-- {
		lo := treeHeight * float64(b) / float64(buckets)
		hi := treeHeight * float64(b+1) / float64(buckets)
		bar := strings.Repeat("#", counts[b]*40/max)
		fmt.Printf("  %5.1f-%5.1f %4d %s\n", lo, hi, counts[b], bar)
	}
}
