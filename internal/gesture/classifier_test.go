package gesture

import (
	"math"
	"testing"
)

func testThresholds() Thresholds {
	return Thresholds{Pinch: 0.07, Open: 0.38, Fist: 0.22}
}

// makeHand 构造一只合成手
// wristX: 手腕水平位置；tipDist: 指尖到手腕的距离；pinch: 是否捏合
func makeHand(wristX, tipDist float64, pinch bool) Hand {
	wrist := Point{X: wristX, Y: 0.8, Z: 0}
	landmarks := make([]Point, LandmarkCount)

	// 非指尖关键点放在手腕附近
	for i := range landmarks {
		landmarks[i] = Point{X: wristX, Y: 0.8 - 0.05, Z: 0}
	}
	landmarks[LandmarkWrist] = wrist

	// 五个指尖放在距手腕 tipDist 的扇形上
	for k, tip := range []int{LandmarkThumbTip, LandmarkIndexTip, LandmarkMiddleTip, LandmarkRingTip, LandmarkPinkyTip} {
		angle := math.Pi/2 + (float64(k)-2)*0.25
		landmarks[tip] = Point{
			X: wristX + tipDist*math.Cos(angle),
			Y: 0.8 - tipDist*math.Sin(angle),
			Z: 0,
		}
	}

	if pinch {
		// 拇指尖贴到食指尖
		landmarks[LandmarkThumbTip] = landmarks[LandmarkIndexTip]
	}

	return Hand{Landmarks: landmarks}
}

// TestClassifyOpenness 测试张开度分类
func TestClassifyOpenness(t *testing.T) {
	tests := []struct {
		name     string
		tipDist  float64
		expected Openness
	}{
		{"张开", 0.45, OpennessOpen},
		{"握拳", 0.15, OpennessFist},
		{"中性", 0.30, OpennessNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := Frame{Hands: []Hand{makeHand(0.5, tt.tipDist, false)}}
			r := Classify(frame, testThresholds())
			if r.Openness != tt.expected {
				t.Errorf("Openness = %v, 期望 %v", r.Openness, tt.expected)
			}
			if r.HandCount != 1 {
				t.Errorf("HandCount = %d, 期望 1", r.HandCount)
			}
		})
	}
}

// TestClassifyPinch 测试捏合判定
func TestClassifyPinch(t *testing.T) {
	pinched := Frame{Hands: []Hand{makeHand(0.5, 0.3, true)}}
	if r := Classify(pinched, testThresholds()); !r.Pinch {
		t.Error("拇指尖贴合食指尖时应判定为捏合")
	}

	open := Frame{Hands: []Hand{makeHand(0.5, 0.45, false)}}
	if r := Classify(open, testThresholds()); r.Pinch {
		t.Error("指尖分开时不应判定为捏合")
	}
}

// TestClassifyEmptyFrame 空手列表按"无手势"处理而非报错
func TestClassifyEmptyFrame(t *testing.T) {
	r := Classify(Frame{}, testThresholds())
	if r.HandCount != 0 {
		t.Errorf("HandCount = %d, 期望 0", r.HandCount)
	}
	if r.Pinch || r.Openness != OpennessNeutral {
		t.Errorf("空帧读数应为零值: %+v", r)
	}
}

// TestClassifyInvalidHandIgnored 关键点数量不足的手被忽略
func TestClassifyInvalidHandIgnored(t *testing.T) {
	broken := Hand{Landmarks: make([]Point, 5)}
	frame := Frame{Hands: []Hand{broken}}

	r := Classify(frame, testThresholds())
	if r.HandCount != 0 {
		t.Errorf("残缺手不应计入: HandCount = %d", r.HandCount)
	}
}

// TestClassifyWristAverage 两只手时手腕位置取均值
func TestClassifyWristAverage(t *testing.T) {
	frame := Frame{Hands: []Hand{
		makeHand(0.2, 0.3, false),
		makeHand(0.8, 0.3, false),
	}}

	r := Classify(frame, testThresholds())
	if r.HandCount != 2 {
		t.Fatalf("HandCount = %d, 期望 2", r.HandCount)
	}
	if math.Abs(r.WristX-0.5) > 0.001 {
		t.Errorf("WristX = %v, 期望 0.5", r.WristX)
	}
}
