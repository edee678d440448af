package hashtagview

import (
	"log"
	"os"
)

// Logger 全局日志记录器
var Logger = log.New(os.Stderr, "[hashtagview] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器
func SetLogger(logger *log.Logger) {
	Logger = logger
}

// debugf logs only when the pass runs with Debug enabled.
func debugf(cfg Config, format string, args ...any) {
	if cfg.Debug {
		Logger.Printf(format, args...)
	}
}
