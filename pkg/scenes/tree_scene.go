// Package scenes 实现应用的各个场景
package scenes

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/startree/internal/gesture"
	"github.com/gonewx/startree/internal/layout"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/systems"
)

// TreeScene 圣诞树主场景
//
// 持有 ECS 实体与全部每帧系统，按固定顺序推进：
// 输入 → 手势 → 相机 → 形变 → 照片钉住 → 针叶 → 雪花。
// 渲染在 Draw 中完成。
type TreeScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	gameState       *game.GameState

	layoutConfig   *config.LayoutConfig
	ornamentConfig *config.OrnamentConfig
	gestureConfig  *config.GestureConfig

	rng *rand.Rand

	// 布局采样器与放置器（上传照片时复用，与已放置挂饰联合避碰）
	sampler *layout.Sampler
	placer  *layout.Placer

	// ECS 框架与系统
	entityManager   *ecs.EntityManager
	inputSystem     *systems.InputSystem
	gestureSystem   *systems.GestureSystem
	cameraSystem    *systems.CameraSystem
	morphSystem     *systems.MorphSystem
	photoPinSystem  *systems.PhotoPinSystem
	foliageSystem   *systems.FoliageSystem
	snowSystem      *systems.SnowSystem
	renderSystem    *systems.RenderSystem

	// 手势输入源（可为 nil）
	gestureProvider gesture.Provider

	// 快照请求标志（按键在 Update 置位，Draw 末尾消费）
	snapshotPending bool

	// 调试浮层与按键帮助开关
	debugVisible bool
	helpVisible  bool

	photoCount int
}

// NewTreeScene 创建主场景并生成全部实体
func NewTreeScene(
	rm *game.ResourceManager,
	sm *game.SceneManager,
	layoutCfg *config.LayoutConfig,
	ornamentCfg *config.OrnamentConfig,
	gestureCfg *config.GestureConfig,
	seed int64,
) *TreeScene {
	s := &TreeScene{
		resourceManager: rm,
		sceneManager:    sm,
		gameState:       game.GetGameState(),
		layoutConfig:    layoutCfg,
		ornamentConfig:  ornamentCfg,
		gestureConfig:   gestureCfg,
		rng:             rand.New(rand.NewSource(seed)),
	}

	s.initECS()
	s.initEntities()
	s.initGestureProvider()

	return s
}

// Update 推进一帧
func (s *TreeScene) Update(deltaTime float64) {
	s.handleDroppedFiles()
	s.handleSnapshotKey()
	s.handleDebugKey()

	s.inputSystem.Update(deltaTime)
	s.gestureSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	s.morphSystem.Update(deltaTime)
	s.photoPinSystem.Update(deltaTime)
	s.foliageSystem.Update(deltaTime)
	s.snowSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 渲染一帧
func (s *TreeScene) Draw(screen *ebiten.Image) {
	// 深夜蓝背景
	screen.Fill(color.RGBA{R: 8, G: 10, B: 28, A: 255})

	s.renderSystem.Draw(screen)

	if s.debugVisible {
		s.drawDebugOverlay(screen)
	}
	if s.helpVisible {
		s.drawHelpOverlay(screen)
	}

	if s.snapshotPending {
		s.snapshotPending = false
		s.captureSnapshot(screen)
	}
}

// SaveOnExit 退出时保存设置
func (s *TreeScene) SaveOnExit() bool {
	if s.gestureProvider != nil {
		s.gestureProvider.Close()
		s.gestureProvider = nil
	}
	if settings := s.gameState.GetSettingsManager(); settings != nil {
		if err := settings.Save(); err != nil {
			return false
		}
	}
	return true
}
