package gesture

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Provider 关键点来源
//
// 核心每帧轮询一次；Poll 返回当前最新可用的关键点帧。
// 没有新数据时返回 (Frame{}, false)，调用方按"无手势"处理。
// Close 必须释放底层资源（摄像头流、外部进程）并停止轮询。
type Provider interface {
	Poll() (Frame, bool)
	Close() error
}

// ReplayProvider 回放录制的关键点序列
// 到达末尾后循环。用于无摄像头环境的演示与 cmd/gesture_replay 工具
type ReplayProvider struct {
	frames []Frame
	index  int
	closed bool
}

// recordingFile data/landmarks_sample.yaml 的文件结构
type recordingFile struct {
	Frames []Frame `yaml:"frames"`
}

// NewReplayProvider 从 YAML 录制数据创建回放源
func NewReplayProvider(data []byte) (*ReplayProvider, error) {
	var rec recordingFile
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse landmark recording: %w", err)
	}
	if len(rec.Frames) == 0 {
		return nil, fmt.Errorf("landmark recording contains no frames")
	}
	return &ReplayProvider{frames: rec.Frames}, nil
}

// FrameCount 返回录制的总帧数
func (p *ReplayProvider) FrameCount() int {
	return len(p.frames)
}

// Poll 返回下一帧，末尾后从头循环
func (p *ReplayProvider) Poll() (Frame, bool) {
	if p.closed {
		return Frame{}, false
	}
	frame := p.frames[p.index]
	p.index = (p.index + 1) % len(p.frames)
	return frame, true
}

// Close 停止回放
func (p *ReplayProvider) Close() error {
	p.closed = true
	return nil
}
