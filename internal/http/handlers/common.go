package handlers

import (
	"sync"

	"barcode-api/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	logMu sync.RWMutex
	log   = zap.NewNop().Sugar()
)

// SetLogger installs the shared handler logger. Called once during router
// construction, before any request is served.
func SetLogger(l *zap.SugaredLogger) {
	logMu.Lock()
	defer logMu.Unlock()
	if l != nil {
		log = l
	}
}

func logger() *zap.SugaredLogger {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}
