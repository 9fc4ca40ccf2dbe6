package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/httputil"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/pocketpilot/backend/internal/types"
)

func RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", GetIncomes)
		r.POST("", CreateIncomes)
	}
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	err := models.DB.First(&models.Income{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create incomes
// @Description	Creates new monthly net income records
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeCreateResponse
// @Failure		400		{object}	IncomeCreateResponse
// @Failure		500		{object}	IncomeCreateResponse
// @Param			incomes	body		[]IncomeEditable	true	"Incomes"
// @Router			/v1/incomes [post]
func CreateIncomes(c *gin.Context) {
	var editables []IncomeEditable

	if err := httputil.BindData(c, &editables); err != nil {
		message := err.Error()
		c.JSON(status(err), IncomeCreateResponse{Error: &message})
		return
	}

	responseStatus := http.StatusCreated
	response := IncomeCreateResponse{}

	for _, editable := range editables {
		income := editable.model()

		err := models.DB.Create(&income).Error
		if err != nil {
			responseStatus = response.appendError(err, responseStatus)
			continue
		}

		apiResource := newIncome(income)
		response.Data = append(response.Data, IncomeResponse{Data: &apiResource})
	}

	c.JSON(responseStatus, response)
}

// @Summary		Get incomes
// @Description	Returns a list of incomes
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Param			userId	query	string	false	"Filter by user"
// @Param			month	query	string	false	"Filter by month (YYYY-MM)"
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	query := models.DB

	if userID := c.Query("userId"); userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			message := httputil.ErrInvalidUUID.Error()
			c.JSON(http.StatusBadRequest, IncomeListResponse{Error: &message})
			return
		}

		query = query.Where("user_id = ?", parsed)
	}

	if month := c.Query("month"); month != "" {
		parsed, err := types.ParseMonth(month)
		if err != nil {
			message := httputil.ErrInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, IncomeListResponse{Error: &message})
			return
		}

		query = query.Where("month = ?", parsed)
	}

	var incomes []models.Income
	err := query.Order("month ASC").Find(&incomes).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &message})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: data})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		message := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, IncomeResponse{Error: &message})
		return
	}

	var income models.Income
	err := models.DB.First(&income, "id = ?", uri.ID).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &message})
		return
	}

	apiResource := newIncome(income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var income models.Income
	err := models.DB.First(&income, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&income).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
