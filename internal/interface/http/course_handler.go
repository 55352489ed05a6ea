package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-question-bank/internal/application"
	"github.com/oksasatya/go-question-bank/pkg/response"
)

type CourseHandler struct {
	Svc *application.CatalogService
}

func NewCourseHandler(svc *application.CatalogService) *CourseHandler {
	return &CourseHandler{Svc: svc}
}

type subjectResponse struct {
	SubjectID int64  `json:"subject_id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
}

// List GET /api/courses?search=
func (h *CourseHandler) List(c *gin.Context) {
	subjects, err := h.Svc.ListSubjects(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "Error fetching courses", err.Error())
		return
	}
	out := make([]subjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, subjectResponse{SubjectID: s.ID, Name: s.Name, Status: s.Status})
	}
	c.JSON(http.StatusOK, out)
}
