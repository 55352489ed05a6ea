package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-question-bank/internal/interface/http"
)

// QuestionModule wires question CRUD under /api/questions.
type QuestionModule struct {
	Handler *handlers.QuestionHandler
}

func NewQuestionModule(h *handlers.QuestionHandler) *QuestionModule {
	return &QuestionModule{Handler: h}
}

func (m *QuestionModule) Register(_, api *gin.RouterGroup) {
	g := api.Group("/questions")
	{
		g.GET("", m.Handler.List)
		g.POST("", m.Handler.Create)
		g.GET("/:id", m.Handler.Get)
		g.PUT("/:id", m.Handler.Update)
		g.DELETE("/:id", m.Handler.Delete)
	}
}
