package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portal-calma/internal/models"
	"portal-calma/internal/repository"
)

type QuestionnaireHandler struct {
	log       *zap.Logger
	templates *models.TemplateSet
}

func NewQuestionnaireHandler(log *zap.Logger, templates *models.TemplateSet) *QuestionnaireHandler {
	return &QuestionnaireHandler{log: log, templates: templates}
}

type createQuestionnaireRequest struct {
	Title            string            `json:"title" binding:"required"`
	Description      string            `json:"description"`
	Questions        []models.Question `json:"questions" binding:"required"`
	TargetDepartment string            `json:"target_department"`
	Anonymous        bool              `json:"anonymous"`
	StartDate        *time.Time        `json:"start_date"`
	EndDate          *time.Time        `json:"end_date"`
}

func (h *QuestionnaireHandler) List(c *gin.Context) {
	companyID := currentCompanyID(c)
	questionnaires, err := repository.GetQuestionnairesByCompany(c.Request.Context(), companyID)
	if err != nil {
		h.log.Error("Failed to list questionnaires", zap.Error(err), zap.String("companyID", companyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load questionnaires"})
		return
	}
	c.JSON(http.StatusOK, questionnaires)
}

func (h *QuestionnaireHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid questionnaire payload"})
		return
	}

	for _, q := range req.Questions {
		if err := q.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	questionnaire := &models.Questionnaire{
		CompanyID:        user.CompanyID,
		Title:            req.Title,
		Description:      req.Description,
		Questions:        req.Questions,
		TargetDepartment: req.TargetDepartment,
		Status:           models.StatusInactive,
		CreatedBy:        user.Email,
		Anonymous:        req.Anonymous,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
	if err := repository.CreateQuestionnaire(c.Request.Context(), questionnaire); err != nil {
		h.log.Error("Failed to create questionnaire", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create questionnaire"})
		return
	}

	c.JSON(http.StatusCreated, questionnaire)
}

func (h *QuestionnaireHandler) CreateFromTemplate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	name := c.Param("name")
	template, found := h.templates.ByName(name)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown template"})
		return
	}

	questionnaire := template.Instantiate(user.CompanyID, user.Email)
	if err := repository.CreateQuestionnaire(c.Request.Context(), questionnaire); err != nil {
		h.log.Error("Failed to instantiate template",
			zap.Error(err),
			zap.String("template", name),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create questionnaire"})
		return
	}

	c.JSON(http.StatusCreated, questionnaire)
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *QuestionnaireHandler) UpdateStatus(c *gin.Context) {
	companyID := currentCompanyID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid questionnaire id"})
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if err := repository.UpdateQuestionnaireStatus(c.Request.Context(), companyID, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Questionnaire not found"})
			return
		}
		h.log.Error("Failed to update questionnaire status", zap.Error(err), zap.Int("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuestionnaireHandler) Delete(c *gin.Context) {
	companyID := currentCompanyID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid questionnaire id"})
		return
	}

	if err := repository.DeleteQuestionnaire(c.Request.Context(), companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Questionnaire not found"})
			return
		}
		h.log.Error("Failed to delete questionnaire", zap.Error(err), zap.Int("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete questionnaire"})
		return
	}

	c.Status(http.StatusNoContent)
}
