package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-question-bank/internal/interface/http"
)

type RootModule struct{}

func NewRootModule() *RootModule { return &RootModule{} }

func (m *RootModule) Register(root, _ *gin.RouterGroup) {
	root.GET("/", handlers.Root)
}
