package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-question-bank/internal/interface/http"
)

type CourseModule struct {
	Handler *handlers.CourseHandler
}

func NewCourseModule(h *handlers.CourseHandler) *CourseModule {
	return &CourseModule{Handler: h}
}

func (m *CourseModule) Register(_, api *gin.RouterGroup) {
	api.GET("/courses", m.Handler.List)
}
