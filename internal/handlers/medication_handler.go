package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/httperr"
	"github.com/lazy8055/psych-care/internal/middleware"
	"github.com/lazy8055/psych-care/internal/models"
)

type MedicationHandler struct {
	db *gorm.DB
}

func NewMedicationHandler(db *gorm.DB) *MedicationHandler {
	return &MedicationHandler{db: db}
}

// --------- Requests ---------

type CreateMedicationRequest struct {
	PatientID    uint   `json:"patientId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Instructions string `json:"instructions"`
}

type UpdateMedicationRequest struct {
	Name         *string `json:"name,omitempty"`
	Dosage       *string `json:"dosage,omitempty"`
	Frequency    *string `json:"frequency,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *MedicationHandler) List(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	q := h.db.Where("practice_id = ?", practiceID)

	if patientID := c.Query("patientId"); patientID != "" {
		q = q.Where("patient_id = ?", patientID)
	}

	var meds []models.Medication
	if err := q.
		Order("created_at DESC").
		Find(&meds).Error; err != nil {

		httperr.Internal(c, "failed_to_list_medications", "Could not list medications.")
		return
	}

	c.JSON(http.StatusOK, meds)
}

// ======================================================
// CREATE
// ======================================================

func (h *MedicationHandler) Create(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	var req CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	var patient models.Patient
	if err := h.db.
		Where("id = ? AND practice_id = ?", req.PatientID, practiceID).
		First(&patient).Error; err != nil {

		httperr.BadRequest(c, "patient_not_found", "The patient does not exist.")
		return
	}

	med := models.Medication{
		PracticeID:   practiceID,
		PatientID:    req.PatientID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Instructions: req.Instructions,
		Active:       true,
	}

	if err := h.db.Create(&med).Error; err != nil {
		httperr.Internal(c, "failed_to_create_medication", "Could not create the medication.")
		return
	}

	c.JSON(http.StatusCreated, med)
}

// ======================================================
// UPDATE
// ======================================================

func (h *MedicationHandler) Update(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)
	id := c.Param("id")

	var med models.Medication
	if err := h.db.
		Where("id = ? AND practice_id = ?", id, practiceID).
		First(&med).Error; err != nil {

		httperr.NotFound(c, "medication_not_found", "Medication not found.")
		return
	}

	var req UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Name != nil {
		med.Name = *req.Name
	}
	if req.Dosage != nil {
		med.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		med.Frequency = *req.Frequency
	}
	if req.Instructions != nil {
		med.Instructions = *req.Instructions
	}
	if req.Active != nil {
		med.Active = *req.Active
	}

	if err := h.db.Save(&med).Error; err != nil {
		httperr.Internal(c, "failed_to_update_medication", "Could not update the medication.")
		return
	}

	c.JSON(http.StatusOK, med)
}

// ======================================================
// DELETE
// ======================================================

func (h *MedicationHandler) Delete(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND practice_id = ?", id, practiceID).
		Delete(&models.Medication{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_medication", "Could not delete the medication.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "medication_not_found", "Medication not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
