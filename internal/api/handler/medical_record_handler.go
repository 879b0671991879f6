package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andesalud/patient-gateway/internal/core/ports"
)

// MedicalRecordHandler handles the medical record CRU surface (no delete).
type MedicalRecordHandler struct {
	recordService ports.MedicalRecordService
}

func NewMedicalRecordHandler(recordService ports.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{recordService: recordService}
}

// Create stores a new medical record.
//
// @Summary      Create a medical record
// @Tags         medical
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecordRequest  true  "Record fields"
// @Success      201   {object}  recordResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /medical/records [post]
func (h *MedicalRecordHandler) Create(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	var req createRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	// Rejects before any backend call: user_id must be present and a UUID.
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	record, err := h.recordService.Create(c.Request().Context(), ports.CreateRecordInput{
		UserID:                req.UserID,
		BloodType:             req.BloodType,
		Height:                req.Height,
		InitialWeight:         req.InitialWeight,
		CurrentWeight:         req.CurrentWeight,
		Allergies:             req.Allergies,
		ChronicDiseases:       req.ChronicDiseases,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, recordResponse{
		Message: "medical record saved",
		Data:    record,
	})
}

// Get returns the decrypted medical record for one user.
//
// @Summary      Get a medical record
// @Tags         medical
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string  true  "User id (UUID)"
// @Success      200      {object}  domain.MedicalRecord
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /medical/records/{user_id} [get]
func (h *MedicalRecordHandler) Get(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	record, err := h.recordService.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Update applies a partial update to an existing record.
//
// @Summary      Update a medical record
// @Tags         medical
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path      string               true  "User id (UUID)"
// @Param        body     body      updateRecordRequest  true  "Fields to change"
// @Success      200      {object}  recordResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /medical/records/{user_id} [put]
func (h *MedicalRecordHandler) Update(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	var req updateRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	record, err := h.recordService.Update(c.Request().Context(), c.Param("user_id"), ports.UpdateRecordInput{
		BloodType:             req.BloodType,
		Height:                req.Height,
		InitialWeight:         req.InitialWeight,
		CurrentWeight:         req.CurrentWeight,
		Allergies:             req.Allergies,
		ChronicDiseases:       req.ChronicDiseases,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, recordResponse{
		Message: "medical record updated",
		Data:    record,
	})
}
