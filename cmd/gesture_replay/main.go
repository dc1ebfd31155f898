// gesture_replay 离线回放关键点录制并打印分类结果
//
// 不启动渲染窗口：逐帧跑手势分类和控制信号平滑，
// 打印每帧的手数、捏合/张开度判定与缩放/偏置信号轨迹。
// 用于调参 data/gestures.yaml 和验证新的关键点录制。
//
// 用法:
//
//	go run ./cmd/gesture_replay -recording data/landmarks_sample.yaml -gestures data/gestures.yaml -loops 2
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/startree/internal/gesture"
	"github.com/gonewx/startree/pkg/config"
)

func main() {
	recordingPath := flag.String("recording", "data/landmarks_sample.yaml", "关键点录制路径")
	gesturePath := flag.String("gestures", "data/gestures.yaml", "手势配置路径")
	loops := flag.Int("loops", 1, "回放遍数")
	flag.Parse()

	gestureData, err := os.ReadFile(*gesturePath)
	if err != nil {
		log.Fatalf("手势配置读取失败: %v", err)
	}
	cfg, err := config.ParseGestureConfig(gestureData)
	if err != nil {
		log.Fatalf("手势配置解析失败: %v", err)
	}

	recordingData, err := os.ReadFile(*recordingPath)
	if err != nil {
		log.Fatalf("录制读取失败: %v", err)
	}
	provider, err := gesture.NewReplayProvider(recordingData)
	if err != nil {
		log.Fatalf("录制解析失败: %v", err)
	}
	defer provider.Close()

	th := gesture.Thresholds{
		Pinch: cfg.PinchThreshold,
		Open:  cfg.OpenThreshold,
		Fist:  cfg.FistThreshold,
	}

	frames := provider.FrameCount() * *loops
	scale := 1.0
	bias := 0.0

	fmt.Printf("%-5s %-5s %-6s %-8s %-8s %-8s\n", "帧", "手数", "捏合", "张开度", "缩放", "偏置")
	for i := 0; i < frames; i++ {
		frame, ok := provider.Poll()
		if !ok {
			break
		}
		r := gesture.Classify(frame, th)

		// 与渲染端相同的平滑规则
		if r.HandCount == 0 {
			scale += (1.0 - scale) * cfg.NeutralDecayRate
			bias *= 1 - cfg.NeutralDecayRate
		} else {
			if r.Pinch {
				scale += (cfg.ScaleMax - scale) * cfg.ScaleEngageRate
			} else {
				scale += (1.0 - scale) * cfg.ScaleReleaseRate
			}
			bias = (r.WristX - 0.5) * cfg.RotationGain
		}

		fmt.Printf("%-5d %-5d %-6v %-8s %-8.3f %+-8.3f\n",
			i, r.HandCount, r.Pinch, r.Openness, scale, bias)
	}
}
