package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-question-bank/internal/application"
	"github.com/oksasatya/go-question-bank/internal/domain/entity"
	"github.com/oksasatya/go-question-bank/pkg/response"
	"github.com/oksasatya/go-question-bank/pkg/validation"
)

const msgQuestionNotFound = "Question not found"

type QuestionHandler struct {
	Svc *application.QuestionService
}

func NewQuestionHandler(svc *application.QuestionService) *QuestionHandler {
	return &QuestionHandler{Svc: svc}
}

type listQuestionsQuery struct {
	SubjectID int64 `form:"subject_id" binding:"omitempty,positive"`
	Page      int   `form:"page" binding:"omitempty,positive"`
	Limit     int   `form:"limit" binding:"omitempty,positive"`
}

type questionRequest struct {
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content" binding:"required"`
	SubjectID  int64      `json:"subject_id" binding:"required,positive"`
	Difficulty *textValue `json:"difficulty"`
	Answer     *string    `json:"answer"`
	Code       *string    `json:"code"`
}

func (r questionRequest) toInput() application.QuestionInput {
	return application.QuestionInput{
		Title:      r.Title,
		Content:    r.Content,
		SubjectID:  r.SubjectID,
		Difficulty: r.Difficulty.ptr(),
		Answer:     r.Answer,
		Code:       r.Code,
	}
}

type questionResponse struct {
	QuestionID int64   `json:"question_id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Difficulty *string `json:"difficulty"`
	Answer     *string `json:"answer"`
	Code       *string `json:"code"`
	Subject    string  `json:"subject"`
}

type questionListResponse struct {
	questionResponse
	Tags *string `json:"tags"`
}

type createQuestionsResponse struct {
	Message     string  `json:"message"`
	InsertedIDs []int64 `json:"inserted_ids"`
}

func toQuestionResponse(d entity.QuestionDetail) questionResponse {
	return questionResponse{
		QuestionID: d.ID,
		Title:      d.Title,
		Content:    d.Content,
		Difficulty: d.Difficulty,
		Answer:     d.Answer,
		Code:       d.Code,
		Subject:    d.Subject,
	}
}

// questionID parses :id. Anything that is not a positive integer cannot
// name a question, so callers answer 404.
func questionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// List GET /api/questions?subject_id=&page=&limit=
func (h *QuestionHandler) List(c *gin.Context) {
	var q listQuestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Failure(c, http.StatusBadRequest, "Invalid query parameters", validation.ToDetails(err))
		return
	}

	items, err := h.Svc.List(c.Request.Context(), application.ListQuestionsInput{
		SubjectID: q.SubjectID,
		Page:      q.Page,
		Limit:     q.Limit,
	})
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "Error fetching questions", err.Error())
		return
	}

	out := make([]questionListResponse, 0, len(items))
	for _, it := range items {
		out = append(out, questionListResponse{questionResponse: toQuestionResponse(it.QuestionDetail), Tags: it.Tags})
	}
	c.JSON(http.StatusOK, out)
}

// Get GET /api/questions/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	id, ok := questionID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	q, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrQuestionNotFound) {
			response.Message(c, http.StatusNotFound, msgQuestionNotFound)
			return
		}
		response.Failure(c, http.StatusInternalServerError, "Error fetching question", err.Error())
		return
	}
	c.JSON(http.StatusOK, toQuestionResponse(*q))
}

// Create POST /api/questions [{title, content, subject_id, difficulty?, answer?, code?}, ...]
func (h *QuestionHandler) Create(c *gin.Context) {
	var reqs []questionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		if validation.IsFieldError(err) {
			response.Failure(c, http.StatusBadRequest, "Invalid question payload", validation.ToDetails(err))
			return
		}
		response.Message(c, http.StatusBadRequest, "Request body must be an array of questions")
		return
	}
	if len(reqs) == 0 {
		response.Message(c, http.StatusBadRequest, "Request body must be an array of questions")
		return
	}

	in := make([]application.QuestionInput, len(reqs))
	for i, r := range reqs {
		in[i] = r.toInput()
	}
	ids, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, application.ErrValidation) {
			response.Message(c, http.StatusBadRequest, "Request body must be an array of questions")
			return
		}
		response.Failure(c, http.StatusInternalServerError, "Error creating questions", err.Error())
		return
	}
	c.JSON(http.StatusCreated, createQuestionsResponse{
		Message:     fmt.Sprintf("%d questions created successfully", len(ids)),
		InsertedIDs: ids,
	})
}

// Update PUT /api/questions/:id replaces all six fields.
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := questionID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "Invalid question payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Update(c.Request.Context(), id, req.toInput()); err != nil {
		if errors.Is(err, application.ErrQuestionNotFound) {
			response.Message(c, http.StatusNotFound, msgQuestionNotFound)
			return
		}
		response.Failure(c, http.StatusInternalServerError, "Error updating question", err.Error())
		return
	}
	response.Message(c, http.StatusOK, "Question updated successfully")
}

// Delete DELETE /api/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := questionID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, msgQuestionNotFound)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrQuestionNotFound) {
			response.Message(c, http.StatusNotFound, msgQuestionNotFound)
			return
		}
		response.Failure(c, http.StatusInternalServerError, "Error deleting question", err.Error())
		return
	}
	response.Message(c, http.StatusOK, "Question deleted successfully")
}
