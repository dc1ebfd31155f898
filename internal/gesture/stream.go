package gesture

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync"
)

// StreamProvider 从外部手部跟踪进程读取关键点流
//
// 协议：跟踪进程在 stdout 上输出换行分隔的 JSON 帧，
// 每行形如 {"hands":[{"landmarks":[{"x":..,"y":..,"z":..}, ...]}]}。
// 读取在独立 goroutine 中进行，只保留最新快照；
// 渲染线程每帧 Poll 一次，晚于可用时刻的下一帧即可看到数据
// （除此之外没有顺序保证）。
// maxStalePolls 连续多少次 Poll 没有新帧后判定流失效
// 跟踪器低于渲染帧率是正常的（30fps 跟踪 / 60fps 渲染），
// 短暂没有新帧时继续返回上一帧，只有长时间静默才按无手势处理
const maxStalePolls = 30

type StreamProvider struct {
	mu         sync.Mutex
	latest     Frame
	received   bool
	stalePolls int

	reader io.ReadCloser
	cmd    *exec.Cmd
	done   chan struct{}
}

// NewStreamProvider 包装一个已打开的关键点流
func NewStreamProvider(r io.ReadCloser) *StreamProvider {
	p := &StreamProvider{
		reader: r,
		done:   make(chan struct{}),
	}
	go p.readLoop()
	return p
}

// NewTrackerProvider 启动外部手部跟踪进程并接入其输出流
//
// command 为跟踪器可执行文件（由设置项 trackerCommand 配置）。
// 启动失败即摄像头/权限获取失败：返回错误，调用方记录日志并降级为
// 手势功能不可用，不影响其余系统。
func NewTrackerProvider(command string, args ...string) (*StreamProvider, error) {
	cmd := exec.Command(command, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open tracker pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start hand tracker %q: %w", command, err)
	}

	p := &StreamProvider{
		reader: stdout,
		cmd:    cmd,
		done:   make(chan struct{}),
	}
	go p.readLoop()
	return p, nil
}

// readLoop 持续读取 NDJSON 帧并更新最新快照
func (p *StreamProvider) readLoop() {
	defer close(p.done)

	scanner := bufio.NewScanner(p.reader)
	// 两只手 21×3 坐标的 JSON 行可能较长
	scanner.Buffer(make([]byte, 0, 64*1024), 256*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var frame Frame
		if err := json.Unmarshal(line, &frame); err != nil {
			// 坏行按无手帧处理，流继续
			log.Printf("[Gesture] Malformed landmark frame dropped: %v", err)
			frame = Frame{}
		}
		p.mu.Lock()
		p.latest = frame
		p.received = true
		p.stalePolls = 0
		p.mu.Unlock()
	}
}

// Poll 返回最新快照
// 流尚无数据、或连续 maxStalePolls 次没有新帧时返回 (Frame{}, false)
func (p *StreamProvider) Poll() (Frame, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.received {
		return Frame{}, false
	}
	p.stalePolls++
	if p.stalePolls > maxStalePolls {
		return Frame{}, false
	}
	return p.latest, true
}

// Close 释放流并终止跟踪进程，等待读取 goroutine 退出
// 这是手势通道唯一需要的清理步骤
func (p *StreamProvider) Close() error {
	err := p.reader.Close()
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
		_ = p.cmd.Wait()
	}
	<-p.done
	return err
}
