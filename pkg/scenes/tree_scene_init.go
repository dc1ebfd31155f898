package scenes

import (
	"log"
	"strings"

	"github.com/gonewx/startree/internal/gesture"
	"github.com/gonewx/startree/internal/layout"
	"github.com/gonewx/startree/pkg/ecs"
	"github.com/gonewx/startree/pkg/embedded"
	"github.com/gonewx/startree/pkg/entities"
	"github.com/gonewx/startree/pkg/systems"
)

// initECS 初始化 ECS 框架与全部系统
func (s *TreeScene) initECS() {
	s.entityManager = ecs.NewEntityManager()

	s.inputSystem = systems.NewInputSystem(s.gameState, s.onCameraToggle)
	s.gestureSystem = systems.NewGestureSystem(s.gameState, s.gestureConfig, nil)
	s.cameraSystem = systems.NewCameraSystem(s.gameState)
	s.morphSystem = systems.NewMorphSystem(s.entityManager, s.gameState, s.gestureConfig.ZoomThreshold)
	s.photoPinSystem = systems.NewPhotoPinSystem(s.entityManager, s.gameState, s.gestureConfig.ZoomThreshold)
	s.foliageSystem = systems.NewFoliageSystem(s.entityManager, s.gameState, s.layoutConfig.Foliage.MorphRate)
	s.snowSystem = systems.NewSnowSystem(s.entityManager, s.gameState)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, s.gameState, s.layoutConfig)
}

// initEntities 生成针叶场、挂饰、树顶星和雪花
// 采样器、放置器与各工厂共享同一随机源，整体布局按种子可复现
func (s *TreeScene) initEntities() {
	sampler := layout.NewSampler(s.rng, layout.ConeSpec{
		Height:         s.layoutConfig.Tree.Height,
		BaseRadius:     s.layoutConfig.Tree.BaseRadius,
		SurfaceBiasMin: s.layoutConfig.Tree.SurfaceBiasMin,
		SurfaceBiasMax: s.layoutConfig.Tree.SurfaceBiasMax,
	}, s.layoutConfig.Scatter.Radius)

	s.sampler = sampler
	s.placer = layout.NewPlacer(layout.PlacerSpec{
		AttemptBudget: s.layoutConfig.Placer.AttemptBudget,
		AcceptFactor:  s.layoutConfig.Placer.AcceptFactor,
	})

	entities.NewFoliageFieldEntity(s.entityManager, s.rng, sampler, s.layoutConfig)
	entities.NewOrnamentEntities(s.entityManager, s.rng, sampler, s.placer, s.ornamentConfig, s.layoutConfig)
	entities.NewStarEntity(s.entityManager, s.rng, sampler, s.layoutConfig)
	entities.NewSnowFieldEntity(s.entityManager, s.rng, s.layoutConfig)

	log.Printf("[TreeScene] Entities created: %d total", s.entityManager.EntityCount())
}

// initGestureProvider 按当前设置接入手势输入源
func (s *TreeScene) initGestureProvider() {
	settings := s.gameState.GetSettingsManager()
	if settings == nil || !settings.GetSettings().CameraEnabled {
		return
	}
	s.openGestureProvider()
}

// openGestureProvider 打开手势输入源
//
// 设置了跟踪器命令时启动外部进程（NDJSON 流）；
// 命令为空时回放内置的关键点录制，用于无摄像头演示。
// 摄像头获取失败只记日志并停用手势，其余系统照常运行。
func (s *TreeScene) openGestureProvider() {
	settings := s.gameState.GetSettingsManager()

	command := ""
	if settings != nil {
		command = settings.GetSettings().TrackerCommand
	}

	if command != "" {
		parts := strings.Fields(command)
		provider, err := gesture.NewTrackerProvider(parts[0], parts[1:]...)
		if err != nil {
			log.Printf("[TreeScene] Failed to start hand tracker %q: %v (gestures disabled)", command, err)
			return
		}
		log.Printf("[TreeScene] Hand tracker started: %s", command)
		s.gestureProvider = provider
		s.gestureSystem.SetProvider(provider)
		return
	}

	data, err := embedded.ReadFile("data/landmarks_sample.yaml")
	if err != nil {
		log.Printf("[TreeScene] Failed to read landmark recording: %v", err)
		return
	}
	provider, err := gesture.NewReplayProvider(data)
	if err != nil {
		log.Printf("[TreeScene] Failed to load landmark recording: %v", err)
		return
	}
	log.Printf("[TreeScene] Gesture replay started (no tracker configured)")
	s.gestureProvider = provider
	s.gestureSystem.SetProvider(provider)
}

// closeGestureProvider 关闭当前手势输入源
func (s *TreeScene) closeGestureProvider() {
	if s.gestureProvider == nil {
		return
	}
	if err := s.gestureProvider.Close(); err != nil {
		log.Printf("[TreeScene] Failed to close gesture provider: %v", err)
	}
	s.gestureProvider = nil
	s.gestureSystem.SetProvider(nil)
}

// onCameraToggle 摄像头开关变化的回调（InputSystem 触发）
func (s *TreeScene) onCameraToggle(enabled bool) {
	if enabled {
		s.openGestureProvider()
	} else {
		s.closeGestureProvider()
	}
}
