package gesture

import "math"

func sqrt(v float64) float64 { return math.Sqrt(v) }

// Openness 手的张开度分类
type Openness int

const (
	// OpennessNeutral 介于握拳和张开之间，不触发模式切换
	OpennessNeutral Openness = iota
	// OpennessFist 握拳
	OpennessFist
	// OpennessOpen 张开
	OpennessOpen
)

// String 返回张开度的字符串表示
func (o Openness) String() string {
	switch o {
	case OpennessFist:
		return "Fist"
	case OpennessOpen:
		return "Open"
	default:
		return "Neutral"
	}
}

// Thresholds 分类阈值（归一化图像空间距离）
type Thresholds struct {
	// Pinch 拇指尖-食指尖距离小于该值判定为捏合
	Pinch float64
	// Open 指尖到手腕平均距离大于该值判定为张开
	Open float64
	// Fist 指尖到手腕平均距离小于该值判定为握拳
	Fist float64
}

// Reading 一帧关键点的分类结果
type Reading struct {
	// HandCount 有效手数（0 表示按"无手势"处理）
	HandCount int
	// Pinch 任意一只手处于捏合状态
	Pinch bool
	// Openness 张开度（多只手时取最先判定非中性的手）
	Openness Openness
	// WristX 所有有效手的手腕水平位置均值（0~1）
	WristX float64
}

// Classify 把一帧关键点分类为离散手势读数
//
// 空手列表或全部无效的手返回 HandCount=0 的零值读数，
// 调用方应将其视为"无手势"并让控制信号向中性衰减，而不是报错。
func Classify(frame Frame, th Thresholds) Reading {
	var r Reading
	wristSum := 0.0

	for _, hand := range frame.Hands {
		if !hand.Valid() {
			continue
		}
		r.HandCount++

		wrist := hand.Landmarks[LandmarkWrist]
		wristSum += wrist.X

		// 捏合：拇指尖到食指尖
		pinchDist := hand.Landmarks[LandmarkThumbTip].Dist(hand.Landmarks[LandmarkIndexTip])
		if pinchDist < th.Pinch {
			r.Pinch = true
		}

		// 张开度：五个指尖到手腕的平均距离
		if r.Openness == OpennessNeutral {
			sum := 0.0
			for _, tip := range fingertips {
				sum += hand.Landmarks[tip].Dist(wrist)
			}
			avg := sum / float64(len(fingertips))
			switch {
			case avg > th.Open:
				r.Openness = OpennessOpen
			case avg < th.Fist:
				r.Openness = OpennessFist
			}
		}
	}

	if r.HandCount > 0 {
		r.WristX = wristSum / float64(r.HandCount)
	}
	return r
}
