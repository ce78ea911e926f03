package handler

import (
	"sync"

	"github.com/gin-gonic/gin"
)

var ginModeOnce sync.Once

func ginTestMode() {
	ginModeOnce.Do(func() { gin.SetMode(gin.TestMode) })
}

func newTestRouter(register func(*gin.RouterGroup)) *gin.Engine {
	ginTestMode()
	router := gin.New()
	register(router.Group(""))
	return router
}
