package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/engine"
	"github.com/pocketpilot/backend/internal/history"
	"github.com/pocketpilot/backend/internal/httputil"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/pocketpilot/backend/internal/types"
)

func RegisterPrescriptionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPrescriptions)
		r.GET("", GetPrescriptions)
		r.POST("", CreatePrescription)
	}
	{
		r.OPTIONS("/:id", OptionsPrescriptionDetail)
		r.GET("/:id", GetPrescription)
		r.PATCH("/:id/current-spending", UpdateCurrentSpending)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Prescriptions
// @Success		204
// @Router			/v1/prescriptions [options]
func OptionsPrescriptions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Prescriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the prescription"
// @Router			/v1/prescriptions/{id} [options]
func OptionsPrescriptionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	err := models.DB.First(&models.Prescription{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Generate prescription
// @Description	Runs the budget engine for a user and month and stores the result
// @Tags			Prescriptions
// @Produce		json
// @Success		201	{object}	PrescriptionResponse
// @Failure		400	{object}	PrescriptionResponse
// @Failure		500	{object}	PrescriptionResponse
// @Param			userId	query	string	true	"ID of the user"
// @Param			month	query	string	true	"Month to budget for (YYYY-MM)"
// @Param			now	query		string	false	"Reference time, RFC3339. Defaults to the current time"
// @Router			/v1/prescriptions [post]
func CreatePrescription(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		message := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, PrescriptionResponse{Error: &message})
		return
	}

	month, err := types.ParseMonth(c.Query("month"))
	if err != nil {
		message := errMonthParameter.Error()
		c.JSON(http.StatusBadRequest, PrescriptionResponse{Error: &message})
		return
	}

	now := time.Now().UTC()
	if raw := c.Query("now"); raw != "" {
		now, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			message := "the now parameter must be an RFC3339 timestamp"
			c.JSON(http.StatusBadRequest, PrescriptionResponse{Error: &message})
			return
		}
	}

	// The profile is optional, prescriptions fall back to its zero values.
	// Find returns no error when there is no row, so any error here is real.
	var profile models.Profile
	err = models.DB.Where(&models.Profile{UserID: userID}).Limit(1).Find(&profile).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionResponse{Error: &message})
		return
	}

	budgetEngine, err := engine.New(history.NewProvider(models.DB), engine.DefaultConfig())
	if err != nil {
		message := err.Error()
		c.JSON(http.StatusInternalServerError, PrescriptionResponse{Error: &message})
		return
	}

	prescription, err := budgetEngine.Prescribe(c.Request.Context(), engine.Request{
		UserID:          userID,
		Month:           month,
		Now:             now,
		Currency:        profile.Currency,
		Payday:          profile.Payday,
		FixedCategories: profile.FixedCategoryPatterns(),
	})
	if err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionResponse{Error: &message})
		return
	}

	record, err := models.NewPrescription(userID, prescription)
	if err != nil {
		message := err.Error()
		c.JSON(http.StatusInternalServerError, PrescriptionResponse{Error: &message})
		return
	}

	// Re-running a month replaces the stored record. The delete is unscoped
	// so that the deterministic ID can be inserted again.
	err = models.DB.Unscoped().Where("user_id = ? AND month = ?", userID, month).Delete(&models.Prescription{}).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionResponse{Error: &message})
		return
	}

	err = models.DB.Create(&record).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionResponse{Error: &message})
		return
	}

	apiResource, err := newPrescriptionRecord(record)
	if err != nil {
		message := err.Error()
		c.JSON(http.StatusInternalServerError, PrescriptionResponse{Error: &message})
		return
	}

	c.JSON(http.StatusCreated, PrescriptionResponse{Data: &apiResource})
}

// @Summary		Get prescriptions
// @Description	Returns a list of stored prescriptions
// @Tags			Prescriptions
// @Produce		json
// @Success		200	{object}	PrescriptionListResponse
// @Failure		400	{object}	PrescriptionListResponse
// @Failure		500	{object}	PrescriptionListResponse
// @Param			userId	query	string	false	"Filter by user"
// @Param			month	query	string	false	"Filter by month (YYYY-MM)"
// @Router			/v1/prescriptions [get]
func GetPrescriptions(c *gin.Context) {
	query := models.DB

	if userID := c.Query("userId"); userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			message := httputil.ErrInvalidUUID.Error()
			c.JSON(http.StatusBadRequest, PrescriptionListResponse{Error: &message})
			return
		}

		query = query.Where("user_id = ?", parsed)
	}

	if month := c.Query("month"); month != "" {
		parsed, err := types.ParseMonth(month)
		if err != nil {
			message := httputil.ErrInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, PrescriptionListResponse{Error: &message})
			return
		}

		query = query.Where("month = ?", parsed)
	}

	var prescriptions []models.Prescription
	err := query.Order("month ASC").Find(&prescriptions).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionListResponse{Error: &message})
		return
	}

	data := make([]PrescriptionRecord, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		apiResource, err := newPrescriptionRecord(prescription)
		if err != nil {
			message := err.Error()
			c.JSON(http.StatusInternalServerError, PrescriptionListResponse{Error: &message})
			return
		}

		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, PrescriptionListResponse{Data: data})
}

// @Summary		Get prescription
// @Description	Returns a specific prescription
// @Tags			Prescriptions
// @Produce		json
// @Success		200	{object}	PrescriptionResponse
// @Failure		400	{object}	PrescriptionResponse
// @Failure		404	{object}	PrescriptionResponse
// @Param			id	path		string	true	"ID of the prescription"
// @Router			/v1/prescriptions/{id} [get]
func GetPrescription(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		message := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, PrescriptionResponse{Error: &message})
		return
	}

	var prescription models.Prescription
	err := models.DB.First(&prescription, "id = ?", uri.ID).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionResponse{Error: &message})
		return
	}

	apiResource, err := newPrescriptionRecord(prescription)
	if err != nil {
		message := err.Error()
		c.JSON(http.StatusInternalServerError, PrescriptionResponse{Error: &message})
		return
	}

	c.JSON(http.StatusOK, PrescriptionResponse{Data: &apiResource})
}

// @Summary		Update current spending
// @Description	Replaces the tracked current month spending of a prescription. The stored document is rebuilt via copy-with-overrides, never edited in place
// @Tags			Prescriptions
// @Accept			json
// @Produce		json
// @Success		200			{object}	PrescriptionResponse
// @Failure		400			{object}	PrescriptionResponse
// @Failure		404			{object}	PrescriptionResponse
// @Failure		500			{object}	PrescriptionResponse
// @Param			id			path		string					true	"ID of the prescription"
// @Param			spending	body		CurrentSpendingEditable	true	"Current month spending"
// @Router			/v1/prescriptions/{id}/current-spending [patch]
func UpdateCurrentSpending(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		message := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, PrescriptionResponse{Error: &message})
		return
	}

	var editable CurrentSpendingEditable
	if err := httputil.BindData(c, &editable); err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionResponse{Error: &message})
		return
	}

	var record models.Prescription
	err := models.DB.First(&record, "id = ?", uri.ID).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionResponse{Error: &message})
		return
	}

	prescription, err := record.Prescription()
	if err != nil {
		message := err.Error()
		c.JSON(http.StatusInternalServerError, PrescriptionResponse{Error: &message})
		return
	}

	updated, err := models.NewPrescription(record.UserID, prescription.With(engine.Override{
		CurrentMonthSpending: editable.CurrentMonthSpending,
	}))
	if err != nil {
		message := err.Error()
		c.JSON(http.StatusInternalServerError, PrescriptionResponse{Error: &message})
		return
	}

	record.Document = updated.Document
	err = models.DB.Model(&record).Update("document", record.Document).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), PrescriptionResponse{Error: &message})
		return
	}

	apiResource, err := newPrescriptionRecord(record)
	if err != nil {
		message := err.Error()
		c.JSON(http.StatusInternalServerError, PrescriptionResponse{Error: &message})
		return
	}

	c.JSON(http.StatusOK, PrescriptionResponse{Data: &apiResource})
}
