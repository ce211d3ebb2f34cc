package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portal-calma/internal/models"
	"portal-calma/internal/repository"
)

type ResponseHandler struct {
	log *zap.Logger
}

func NewResponseHandler(log *zap.Logger) *ResponseHandler {
	return &ResponseHandler{log: log}
}

type submitResponseRequest struct {
	Department string          `json:"department"`
	Answers    []models.Answer `json:"answers" binding:"required"`
	Completed  bool            `json:"completed"`
}

// Submit records one user's response to a questionnaire. Answers referencing
// a question id absent from the questionnaire are rejected rather than
// silently dropped.
func (h *ResponseHandler) Submit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	questionnaireID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid questionnaire id"})
		return
	}

	var req submitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid response payload"})
		return
	}

	questionnaire, err := repository.GetQuestionnaireByID(c.Request.Context(), user.CompanyID, questionnaireID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Questionnaire not found"})
		return
	}
	if questionnaire.Status != models.StatusActive {
		c.JSON(http.StatusConflict, gin.H{"error": "Questionnaire is not accepting responses"})
		return
	}

	answers := make(models.AnswerList, 0, len(req.Answers))
	for _, a := range req.Answers {
		question, found := questionnaire.QuestionByID(a.QuestionID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("answer references unknown question %d", a.QuestionID),
			})
			return
		}
		if a.Value < float64(question.ScaleMin) || a.Value > float64(question.ScaleMax) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("answer for question %d is outside the scale", a.QuestionID),
			})
			return
		}
		// Denormalize the question text so later edits never rewrite history.
		a.QuestionText = question.Text
		answers = append(answers, a)
	}

	response := &models.Response{
		QuestionnaireID: questionnaire.ID,
		CompanyID:       user.CompanyID,
		Department:      req.Department,
		Answers:         answers,
		Status:          models.ResponsePartial,
	}
	if !questionnaire.Anonymous {
		response.UserID = strconv.Itoa(user.ID)
	}
	if req.Completed {
		now := time.Now()
		response.Status = models.ResponseCompleted
		response.SubmittedAt = &now
	}

	if err := repository.CreateResponse(c.Request.Context(), response); err != nil {
		h.log.Error("Failed to save response",
			zap.Error(err),
			zap.Int("questionnaireID", questionnaire.ID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save response"})
		return
	}

	c.JSON(http.StatusCreated, response)
}
