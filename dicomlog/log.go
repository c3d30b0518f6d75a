// Package dicomlog 控制解码过程中的日志输出。
//
// 所有输出都经过同一个 logrus.Logger, 默认是 logrus.StandardLogger(),
// 每条记录带有 "component" 字段。verbosity 决定哪些 Vprintf 会被输出:
// -1 完全静默, 0 只有警告与 level 0 的信息, 数值越大越详细。
package dicomlog

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Component 是每条日志的 "component" 字段
const Component = "dicom"

var (
	verbosity atomic.Int32

	mu     sync.RWMutex
	logger = logrus.StandardLogger()
)

// SetLevel 设置verbosity, -1 关闭所有输出。并发安全
func SetLevel(l int) {
	verbosity.Store(int32(l))
}

// Level returns the current verbosity.
func Level() int {
	return int(verbosity.Load())
}

// SetLogger 让之后的日志写到l, nil时恢复为 logrus.StandardLogger()
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

func entry() *logrus.Entry {
	mu.RLock()
	defer mu.RUnlock()
	return logger.WithField("component", Component)
}

// Vprintf 在 Level() >= l 时以info级别输出
func Vprintf(l int, format string, args ...interface{}) {
	if Level() >= l {
		entry().Infof(format, args...)
	}
}

// Warnf 输出一条带字段的警告，level为-1时静默
func Warnf(fields logrus.Fields, format string, args ...interface{}) {
	if Level() < 0 {
		return
	}
	entry().WithFields(fields).Warnf(format, args...)
}
