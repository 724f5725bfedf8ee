package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lazy8055/psych-care/internal/httperr"
	"github.com/lazy8055/psych-care/internal/middleware"
	"github.com/lazy8055/psych-care/internal/models"
	"github.com/lazy8055/psych-care/internal/storage"
)

type PatientHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStore
}

func NewPatientHandler(db *gorm.DB, avatars *storage.AvatarStore) *PatientHandler {
	return &PatientHandler{db: db, avatars: avatars}
}

// --------- Requests ---------

type CreatePatientRequest struct {
	Name   string `json:"name" binding:"required"`
	Age    int    `json:"age" binding:"required,min=0"`
	Gender string `json:"gender" binding:"required"`
	Status string `json:"status"`

	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`

	Diagnosis         string `json:"diagnosis"`
	MedicalHistory    string `json:"medicalHistory"`
	PresentingProblem string `json:"presentingProblem"`
	TreatmentPlan     string `json:"treatmentPlan"`
	Notes             string `json:"notes"`
}

type UpdatePatientRequest struct {
	Name   *string `json:"name,omitempty"`
	Age    *int    `json:"age,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Status *string `json:"status,omitempty"`

	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`

	Diagnosis         *string `json:"diagnosis,omitempty"`
	MedicalHistory    *string `json:"medicalHistory,omitempty"`
	PresentingProblem *string `json:"presentingProblem,omitempty"`
	TreatmentPlan     *string `json:"treatmentPlan,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	status := c.DefaultQuery("status", "Current")
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	q := h.db.Where("practice_id = ? AND status = ?", practiceID, status)

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(diagnosis) LIKE ?", like, like)
	}

	var patients []models.Patient
	if err := q.
		Order("created_at DESC").
		Find(&patients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_patients", "Could not list patients.")
		return
	}

	c.JSON(http.StatusOK, patients)
}

// ======================================================
// GET
// ======================================================

func (h *PatientHandler) Get(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.
		Where("id = ? AND practice_id = ?", id, practiceID).
		First(&patient).Error; err != nil {

		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	therapistID := c.MustGet(middleware.ContextUserID).(uint)
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)

	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	status := req.Status
	if status == "" {
		status = "Current"
	}

	patient := models.Patient{
		PracticeID:  practiceID,
		TherapistID: therapistID,

		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Status: status,

		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,

		Diagnosis:         req.Diagnosis,
		MedicalHistory:    req.MedicalHistory,
		PresentingProblem: req.PresentingProblem,
		TreatmentPlan:     req.TreatmentPlan,
		Notes:             req.Notes,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Could not create the patient.")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// ======================================================
// UPDATE
// ======================================================

func (h *PatientHandler) Update(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.
		Where("id = ? AND practice_id = ?", id, practiceID).
		First(&patient).Error; err != nil {

		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	applyString(&patient.Name, req.Name)
	if req.Age != nil {
		patient.Age = *req.Age
	}
	applyString(&patient.Gender, req.Gender)
	applyString(&patient.Status, req.Status)
	applyString(&patient.Phone, req.Phone)
	applyString(&patient.Email, req.Email)
	applyString(&patient.Address, req.Address)
	applyString(&patient.Diagnosis, req.Diagnosis)
	applyString(&patient.MedicalHistory, req.MedicalHistory)
	applyString(&patient.PresentingProblem, req.PresentingProblem)
	applyString(&patient.TreatmentPlan, req.TreatmentPlan)
	applyString(&patient.Notes, req.Notes)

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Could not update the patient.")
		return
	}

	c.JSON(http.StatusOK, patient)
}

// ======================================================
// AVATAR UPLOAD
// ======================================================

func (h *PatientHandler) UploadAvatar(c *gin.Context) {
	practiceID := c.MustGet(middleware.ContextPracticeID).(uint)
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.
		Where("id = ? AND practice_id = ?", id, practiceID).
		First(&patient).Error; err != nil {

		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	if !h.avatars.Enabled() {
		httperr.BadRequest(c, "avatar_storage_disabled", "Avatar storage is not configured.")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "An avatar image file is required.")
		return
	}
	defer file.Close()

	url, err := h.avatars.Upload(c.Request.Context(), patient.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Could not store the avatar.")
		return
	}

	patient.AvatarURL = url
	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Could not update the patient.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
