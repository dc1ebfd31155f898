package systems

import (
	"math"
	"testing"

	"github.com/gonewx/startree/internal/gesture"
	"github.com/gonewx/startree/pkg/config"
	"github.com/gonewx/startree/pkg/game"
	"github.com/gonewx/startree/pkg/types"
)

// fakeProvider 固定返回同一帧的输入源
type fakeProvider struct {
	frame gesture.Frame
}

func (p *fakeProvider) Poll() (gesture.Frame, bool) { return p.frame, true }
func (p *fakeProvider) Close() error                { return nil }

// testGestureConfig 与 data/gestures.yaml 一致的测试配置
func testGestureConfig() *config.GestureConfig {
	return &config.GestureConfig{
		PinchThreshold:      0.07,
		OpenThreshold:       0.38,
		FistThreshold:       0.22,
		ScaleMax:            10.0,
		ScaleEngageRate:     0.04,
		ScaleReleaseRate:    0.18,
		ScaleNeutralEpsilon: 0.05,
		ZoomThreshold:       3.0,
		RotationGain:        2.0,
		NeutralDecayRate:    0.17,
	}
}

// testHand 构造一只手：五个指尖在距手腕 tipDist 处均匀分布
// pinch 为真时把拇指尖挪到食指尖旁边
func testHand(wristX, tipDist float64, pinch bool) gesture.Hand {
	wrist := gesture.Point{X: wristX, Y: 0.5}
	landmarks := make([]gesture.Point, gesture.LandmarkCount)
	for i := range landmarks {
		landmarks[i] = wrist
	}

	tips := []int{
		gesture.LandmarkThumbTip, gesture.LandmarkIndexTip, gesture.LandmarkMiddleTip,
		gesture.LandmarkRingTip, gesture.LandmarkPinkyTip,
	}
	for i, tip := range tips {
		angle := float64(i) * 2 * math.Pi / 5
		landmarks[tip] = gesture.Point{
			X: wristX + tipDist*math.Cos(angle),
			Y: 0.5 + tipDist*math.Sin(angle),
		}
	}

	if pinch {
		index := landmarks[gesture.LandmarkIndexTip]
		landmarks[gesture.LandmarkThumbTip] = gesture.Point{X: index.X + 0.01, Y: index.Y}
	}

	return gesture.Hand{Landmarks: landmarks}
}

func frameOf(hands ...gesture.Hand) gesture.Frame {
	return gesture.Frame{Hands: hands}
}

func TestGestureSystemNoHandsDecay(t *testing.T) {
	cfg := testGestureConfig()
	state := game.NewGameState()
	state.RotationBias = 0.8

	// 最坏起点：长时间持续捏合把信号推到 scaleMax 附近
	provider := &fakeProvider{frame: frameOf(testHand(0.5, 0.3, true))}
	sys := NewGestureSystem(state, cfg, provider)
	for i := 0; i < 600; i++ {
		sys.Update(1.0 / 60)
	}
	if state.ScaleSignal < cfg.ScaleMax-0.01 {
		t.Fatalf("前置条件失败: 持续捏合后信号应逼近 scaleMax, got %v", state.ScaleSignal)
	}

	// 连续 30 帧无手
	provider.frame = frameOf()
	for i := 0; i < 30; i++ {
		sys.Update(1.0 / 60)
	}

	if math.Abs(state.ScaleSignal-1.0) > 0.05 {
		t.Errorf("无手 30 帧后缩放信号应回到中性值, got %v", state.ScaleSignal)
	}
	// 衰减进吸附范围后应已精确归位
	if state.ScaleSignal != 1.0 {
		t.Errorf("进入吸附范围后应精确归位到 1.0, got %v", state.ScaleSignal)
	}
	if math.Abs(state.RotationBias) > 0.01 {
		t.Errorf("无手 30 帧后旋转偏置应归零, got %v", state.RotationBias)
	}
	if state.GestureActive {
		t.Error("无手时 GestureActive 应为 false")
	}
}

func TestGestureSystemPinchAsymmetry(t *testing.T) {
	cfg := testGestureConfig()
	state := game.NewGameState()
	provider := &fakeProvider{frame: frameOf(testHand(0.5, 0.3, true))}
	sys := NewGestureSystem(state, cfg, provider)

	// 持续捏合：度量走完一半距离所需的帧数（半衰期）
	engageHalf := (1.0 + cfg.ScaleMax) / 2
	engageFrames := 0
	for state.ScaleSignal < engageHalf {
		sys.Update(1.0 / 60)
		engageFrames++
		if engageFrames > 10000 {
			t.Fatal("缩放信号未能逼近 scaleMax")
		}
	}
	if state.ScaleSignal >= cfg.ScaleMax {
		t.Errorf("缩放信号不应越过 scaleMax, got %v", state.ScaleSignal)
	}

	// 松开：同样度量半衰期，释放必须快于进入
	provider.frame = frameOf(testHand(0.5, 0.3, false))
	releaseHalf := (state.ScaleSignal + 1.0) / 2
	releaseFrames := 0
	for state.ScaleSignal > releaseHalf {
		sys.Update(1.0 / 60)
		releaseFrames++
		if releaseFrames > 10000 {
			t.Fatal("缩放信号未能回落")
		}
	}
	if releaseFrames >= engageFrames {
		t.Errorf("释放半衰期 (%d 帧) 应短于进入半衰期 (%d 帧)", releaseFrames, engageFrames)
	}

	// 继续松开直到进入吸附范围，应精确归位
	for i := 0; i < 600 && state.ScaleSignal != 1.0; i++ {
		sys.Update(1.0 / 60)
	}
	if state.ScaleSignal != 1.0 {
		t.Errorf("进入吸附范围后应精确归位到 1.0, got %v", state.ScaleSignal)
	}
}

func TestGestureSystemModeSwitch(t *testing.T) {
	tests := []struct {
		name    string
		tipDist float64
		want    types.Mode
	}{
		{"张开切到散落", 0.45, types.ModeScattered},
		{"握拳切到树形", 0.10, types.ModeTreeShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := game.NewGameState()
			// 从相反的模式出发
			if tt.want == types.ModeScattered {
				state.SetMode(types.ModeTreeShape)
			}

			provider := &fakeProvider{frame: frameOf(testHand(0.5, tt.tipDist, false))}
			sys := NewGestureSystem(state, testGestureConfig(), provider)

			sys.Update(1.0 / 60)
			if state.Mode() != tt.want {
				t.Errorf("模式应为 %s, got %s", tt.want, state.Mode())
			}

			// 持续同一手势不应反复切换
			for i := 0; i < 10; i++ {
				sys.Update(1.0 / 60)
			}
			if state.Mode() != tt.want {
				t.Errorf("持续手势后模式应保持 %s, got %s", tt.want, state.Mode())
			}
		})
	}
}

func TestGestureSystemRotationBias(t *testing.T) {
	cfg := testGestureConfig()
	state := game.NewGameState()

	// 手腕在画面右侧 0.8 处
	provider := &fakeProvider{frame: frameOf(testHand(0.8, 0.3, false))}
	sys := NewGestureSystem(state, cfg, provider)

	sys.Update(1.0 / 60)

	want := (0.8 - 0.5) * cfg.RotationGain
	if math.Abs(state.RotationBias-want) > 1e-9 {
		t.Errorf("旋转偏置应为 %v, got %v", want, state.RotationBias)
	}
}

func TestGestureSystemManualZoomFallback(t *testing.T) {
	cfg := testGestureConfig()
	state := game.NewGameState()
	state.ManualZoom = true

	// 无输入源：手动缩放开关仍应驱动缩放信号
	sys := NewGestureSystem(state, cfg, nil)
	for i := 0; i < 300; i++ {
		sys.Update(1.0 / 60)
	}

	if state.ScaleSignal < cfg.ZoomThreshold {
		t.Errorf("手动缩放应把信号推过展示阈值 %v, got %v", cfg.ZoomThreshold, state.ScaleSignal)
	}

	// 关掉开关后信号回落
	state.ManualZoom = false
	for i := 0; i < 60; i++ {
		sys.Update(1.0 / 60)
	}
	if state.ScaleSignal != 1.0 {
		t.Errorf("关闭手动缩放后信号应回到 1.0, got %v", state.ScaleSignal)
	}
}

func TestGestureSystemInvalidHandsTreatedAsNone(t *testing.T) {
	state := game.NewGameState()
	state.ScaleSignal = 4.0

	// 关键点不完整的手按无手处理
	provider := &fakeProvider{frame: frameOf(gesture.Hand{Landmarks: make([]gesture.Point, 5)})}
	sys := NewGestureSystem(state, testGestureConfig(), provider)

	for i := 0; i < 60; i++ {
		sys.Update(1.0 / 60)
	}

	if state.ScaleSignal != 1.0 {
		t.Errorf("无效手应触发中性衰减, got %v", state.ScaleSignal)
	}
}
