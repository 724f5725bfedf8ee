package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/httperr"
	"github.com/lazy8055/psych-care/internal/middleware"
	"github.com/lazy8055/psych-care/internal/models"
)

type PracticeHandler struct {
	db *gorm.DB
}

func NewPracticeHandler(db *gorm.DB) *PracticeHandler {
	return &PracticeHandler{db: db}
}

type UpdatePracticeRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (h *PracticeHandler) GetMePractice(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	var practice models.Practice
	if err := h.db.First(&practice, practiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "practice_not_found", "Practice not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_practice", "Could not load practice data.")
		return
	}

	c.JSON(http.StatusOK, practice)
}

func (h *PracticeHandler) UpdateMePractice(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	var practice models.Practice
	if err := h.db.First(&practice, practiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "practice_not_found", "Practice not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_practice", "Could not load practice data.")
		return
	}

	var req UpdatePracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Name != nil {
		practice.Name = *req.Name
	}
	if req.Phone != nil {
		practice.Phone = *req.Phone
	}
	if req.Address != nil {
		practice.Address = *req.Address
	}
	if req.Timezone != nil {
		practice.Timezone = *req.Timezone
	}

	if err := h.db.Save(&practice).Error; err != nil {
		httperr.Internal(c, "failed_to_update_practice", "Could not update the practice.")
		return
	}

	c.JSON(http.StatusOK, practice)
}
