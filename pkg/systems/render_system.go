package systems

import (
	"image/color"
	"sort"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/startree/internal/vec"
	"github.com/gonewx/startree/pkg/components"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/types"
)

// 渲染项类别
type itemKind int

const (
	kindFoliage itemKind = iota
	kindSnow
	kindOrnament
	kindPhoto
	kindStar
)

// renderItem 一个待绘制的投影后元素
// 深度为相机空间 Z，绘制前按深度从远到近排序（画家算法）
type renderItem struct {
	kind  itemKind
	depth float64
	x, y  float32
	size  float32
	clr   color.RGBA

	// 仅挂饰
	ornament *components.OrnamentComponent
	rotation float64
	// 仅照片
	photo *components.PhotoComponent
	// 仅树顶星
	pulse float64
}

// RenderSystem 软件 3D 投影渲染
//
// 没有真正的 3D 管线：每帧把所有世界坐标绕 Y 轴旋转到相机空间，
// 透视缩放 focal/(z+distance) 投影到屏幕，按深度排序后
// 用 ebiten/v2/vector 的 2D 图元画出来。
// 对这种点云 + 少量贴图的场景，这条软件路径完全够用。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	state         *game.GameState

	// centerY 场景竖直中心（树高的一半），投影时对准屏幕中心
	centerY float64

	// items 渲染项缓冲，跨帧复用避免每帧重新分配
	items []renderItem
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, state *game.GameState, layout *config.LayoutConfig) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		state:         state,
		centerY:       layout.Tree.Height / 2,
	}
}

// Draw 投影并绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.items = s.items[:0]

	angle := s.state.CameraAngle
	sin, cos := math32.Sincos(float32(angle))
	scale := s.state.ScaleSignal

	s.collectFoliage(sin, cos, scale)
	s.collectSnow(sin, cos, scale)
	s.collectEntities(angle, scale)

	// 画家算法：深度大（远）的先画
	sort.Slice(s.items, func(i, j int) bool {
		return s.items[i].depth > s.items[j].depth
	})

	for i := range s.items {
		s.drawItem(screen, &s.items[i])
	}
}

// project 把相机空间点投影到屏幕
// 返回屏幕坐标、透视因子和是否可见（在相机前方）
func (s *RenderSystem) project(x, y, z float64) (float32, float32, float64, bool) {
	depth := z + config.CameraDistance
	if depth < 1 {
		return 0, 0, 0, false
	}
	persp := config.ProjectionFocal / depth
	sx := float32(config.GameWindowWidth/2 + x*persp)
	sy := float32(config.GameWindowHeight/2 - (y-s.centerY)*persp)
	return sx, sy, persp, true
}

// dimByDepth 按深度衰减点的亮度，远处的针叶和雪花更暗
// depth 为相机空间 Z + 相机距离，相机处 depth = CameraDistance
func dimByDepth(clr color.RGBA, depth float64) color.RGBA {
	f := float32(1.25 - depth/(2*config.CameraDistance))
	if f > 1 {
		f = 1
	} else if f < 0.45 {
		f = 0.45
	}
	clr.R = uint8(float32(clr.R) * f)
	clr.G = uint8(float32(clr.G) * f)
	clr.B = uint8(float32(clr.B) * f)
	return clr
}

// collectFoliage 针叶点云：float32 路径内联旋转，避免逐点矩阵乘法
func (s *RenderSystem) collectFoliage(sin, cos float32, scale float64) {
	sc := float32(scale)
	for _, id := range ecs.GetEntitiesWith1[*components.FoliageFieldComponent](s.entityManager) {
		field, ok := ecs.GetComponent[*components.FoliageFieldComponent](s.entityManager, id)
		if !ok {
			continue
		}
		for i := range field.Current {
			p := field.Current[i]
			wx := (p.X*cos + p.Z*sin) * sc
			wz := (-p.X*sin + p.Z*cos) * sc
			wy := p.Y * sc
			sx, sy, persp, visible := s.project(float64(wx), float64(wy), float64(wz))
			if !visible {
				continue
			}
			depth := float64(wz) + config.CameraDistance
			s.items = append(s.items, renderItem{
				kind:  kindFoliage,
				depth: depth,
				x:     sx,
				y:     sy,
				size:  float32(persp) * 0.045,
				clr:   dimByDepth(field.Colors[i], depth),
			})
		}
	}
}

// collectSnow 雪花：和针叶同一条 float32 投影路径
func (s *RenderSystem) collectSnow(sin, cos float32, scale float64) {
	sc := float32(scale)
	for _, id := range ecs.GetEntitiesWith1[*components.SnowFieldComponent](s.entityManager) {
		field, ok := ecs.GetComponent[*components.SnowFieldComponent](s.entityManager, id)
		if !ok {
			continue
		}
		settings := s.state.GetSettingsManager()
		if settings != nil && !settings.GetSettings().SnowEnabled {
			continue
		}
		for i := range field.Positions {
			p := field.Positions[i]
			wx := (p.X*cos + p.Z*sin) * sc
			wz := (-p.X*sin + p.Z*cos) * sc
			wy := p.Y * sc
			sx, sy, persp, visible := s.project(float64(wx), float64(wy), float64(wz))
			if !visible {
				continue
			}
			depth := float64(wz) + config.CameraDistance
			s.items = append(s.items, renderItem{
				kind:  kindSnow,
				depth: depth,
				x:     sx,
				y:     sy,
				size:  float32(persp) * 0.06,
				clr:   dimByDepth(color.RGBA{R: 240, G: 245, B: 255, A: 230}, depth),
			})
		}
	}
}

// collectEntities 离散实体（挂饰、照片、星星）
func (s *RenderSystem) collectEntities(angle, scale float64) {
	rot := vec.RotationY(angle)

	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](s.entityManager) {
		tf, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}

		world := rot.MulPoint(tf.Current)

		switch {
		case ecs.HasComponentOf[*components.OrnamentComponent](s.entityManager, id):
			orn, _ := ecs.GetComponent[*components.OrnamentComponent](s.entityManager, id)
			world = world.Scale(scale)
			sx, sy, persp, visible := s.project(world.X, world.Y, world.Z)
			if !visible {
				continue
			}
			s.items = append(s.items, renderItem{
				kind:     kindOrnament,
				depth:    world.Z + config.CameraDistance,
				x:        sx,
				y:        sy,
				size:     float32(persp * orn.Scale * 0.45),
				clr:      orn.Color,
				ornament: orn,
				rotation: tf.RotationY + angle,
			})

		case ecs.HasComponentOf[*components.PhotoComponent](s.entityManager, id):
			photo, _ := ecs.GetComponent[*components.PhotoComponent](s.entityManager, id)
			// 钉住照片的世界位姿已由 PhotoPinSystem 精确解算，不再叠加缩放
			if !photo.Pinned {
				world = world.Scale(scale)
			}
			sx, sy, persp, visible := s.project(world.X, world.Y, world.Z)
			if !visible {
				continue
			}
			s.items = append(s.items, renderItem{
				kind:  kindPhoto,
				depth: world.Z + config.CameraDistance,
				x:     sx,
				y:     sy,
				size:  float32(persp),
				photo: photo,
			})

		case ecs.HasComponentOf[*components.StarComponent](s.entityManager, id):
			star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
			world = world.Scale(scale)
			sx, sy, persp, visible := s.project(world.X, world.Y, world.Z)
			if !visible {
				continue
			}
			s.items = append(s.items, renderItem{
				kind:  kindStar,
				depth: world.Z + config.CameraDistance,
				x:     sx,
				y:     sy,
				size:  float32(persp * star.BaseScale),
				pulse: star.PulsePhase,
			})
		}
	}
}

// drawItem 按类别绘制单个渲染项
func (s *RenderSystem) drawItem(screen *ebiten.Image, item *renderItem) {
	switch item.kind {
	case kindFoliage, kindSnow:
		size := item.size
		if size < 0.5 {
			size = 0.5
		}
		vector.DrawFilledCircle(screen, item.x, item.y, size, item.clr, false)

	case kindOrnament:
		s.drawOrnament(screen, item)

	case kindPhoto:
		s.drawPhoto(screen, item)

	case kindStar:
		s.drawStar(screen, item)
	}
}

// drawOrnament 每个类别一种简单图元组合
func (s *RenderSystem) drawOrnament(screen *ebiten.Image, item *renderItem) {
	size := item.size
	if size < 1 {
		size = 1
	}
	clr := item.clr

	switch item.ornament.Category {
	case types.CategoryBox:
		vector.DrawFilledRect(screen, item.x-size, item.y-size, size*2, size*2, clr, true)
		// 缎带十字
		ribbon := color.RGBA{R: 250, G: 230, B: 120, A: 255}
		vector.StrokeLine(screen, item.x-size, item.y, item.x+size, item.y, size*0.3, ribbon, true)
		vector.StrokeLine(screen, item.x, item.y-size, item.x, item.y+size, size*0.3, ribbon, true)

	case types.CategoryIcicle:
		tip := size * 2.6
		vector.StrokeLine(screen, item.x, item.y-size, item.x, item.y+tip, size*0.5, clr, true)
		vector.DrawFilledCircle(screen, item.x, item.y-size, size*0.5, clr, true)

	case types.CategoryBell:
		vector.DrawFilledCircle(screen, item.x, item.y, size, clr, true)
		vector.DrawFilledRect(screen, item.x-size, item.y+size*0.6, size*2, size*0.5, clr, true)
		vector.DrawFilledCircle(screen, item.x, item.y+size*1.2, size*0.3, color.RGBA{R: 120, G: 90, B: 40, A: 255}, true)

	case types.CategoryCandy:
		// 旋转的条纹棒
		sin, cos := math32.Sincos(float32(item.rotation))
		dx, dy := cos*size*1.6, sin*size*1.6
		vector.StrokeLine(screen, item.x-dx, item.y-dy, item.x+dx, item.y+dy, size*0.6, color.RGBA{R: 250, G: 250, B: 250, A: 255}, true)
		vector.StrokeLine(screen, item.x-dx*0.5, item.y-dy*0.5, item.x+dx*0.5, item.y+dy*0.5, size*0.6, clr, true)

	case types.CategoryLight:
		// 发光点：外圈半透明光晕
		halo := clr
		halo.A = 70
		vector.DrawFilledCircle(screen, item.x, item.y, size*2.2, halo, true)
		vector.DrawFilledCircle(screen, item.x, item.y, size*0.7, clr, true)

	case types.CategoryPinecone:
		// 两层收窄的堆叠
		vector.DrawFilledCircle(screen, item.x, item.y+size*0.5, size, clr, true)
		vector.DrawFilledCircle(screen, item.x, item.y-size*0.4, size*0.7, clr, true)

	default: // ball 及其余
		vector.DrawFilledCircle(screen, item.x, item.y, size, clr, true)
		// 高光
		vector.DrawFilledCircle(screen, item.x-size*0.3, item.y-size*0.3, size*0.25, color.RGBA{R: 255, G: 255, B: 255, A: 150}, true)
	}
}

// 照片相框在世界空间的基准高度
const photoWorldHeight = 4.0

// drawPhoto 照片相框：高度定死，宽度 = 高度 × 宽高比，绝不拉伸
func (s *RenderSystem) drawPhoto(screen *ebiten.Image, item *renderItem) {
	photo := item.photo
	if photo.Image == nil {
		return
	}

	h := float64(item.size) * photoWorldHeight
	w := h * photo.AspectRatio

	// 相框边
	border := float32(h) * 0.05
	vector.DrawFilledRect(screen,
		item.x-float32(w)/2-border, item.y-float32(h)/2-border,
		float32(w)+border*2, float32(h)+border*2,
		color.RGBA{R: 210, G: 180, B: 120, A: 255}, true)

	bounds := photo.Image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(float64(item.x)-w/2, float64(item.y)-h/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(photo.Image, op)
}

// drawStar 树顶星：脉动的亮核加四道光芒
func (s *RenderSystem) drawStar(screen *ebiten.Image, item *renderItem) {
	pulse := 1.0 + 0.2*float64(math32.Sin(float32(item.pulse*2.4)))
	size := item.size * float32(pulse)
	if size < 2 {
		size = 2
	}

	core := color.RGBA{R: 255, G: 235, B: 120, A: 255}
	halo := color.RGBA{R: 255, G: 235, B: 120, A: 60}

	vector.DrawFilledCircle(screen, item.x, item.y, size*1.8, halo, true)
	vector.DrawFilledCircle(screen, item.x, item.y, size*0.8, core, true)

	ray := size * 2.4
	vector.StrokeLine(screen, item.x-ray, item.y, item.x+ray, item.y, size*0.2, core, true)
	vector.StrokeLine(screen, item.x, item.y-ray, item.x, item.y+ray, size*0.2, core, true)
}
