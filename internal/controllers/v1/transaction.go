package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/httputil"
	"github.com/pocketpilot/backend/internal/models"
	"github.com/pocketpilot/backend/internal/types"
)

func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(httputil.ErrInvalidUUID), httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	err := models.DB.First(&models.Transaction{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create transactions
// @Description	Creates new transactions
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	if err := httputil.BindData(c, &editables); err != nil {
		message := err.Error()
		c.JSON(status(err), TransactionCreateResponse{Error: &message})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	response := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction := editable.model()

		err := models.DB.Create(&transaction).Error
		if err != nil {
			responseStatus = response.appendError(err, responseStatus)
			continue
		}

		apiResource := newTransaction(transaction)
		response.Data = append(response.Data, TransactionResponse{Data: &apiResource})
	}

	c.JSON(responseStatus, response)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			userId	query	string	false	"Filter by user"
// @Param			month	query	string	false	"Filter by month (YYYY-MM)"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	query := models.DB

	if userID := c.Query("userId"); userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			message := httputil.ErrInvalidUUID.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &message})
			return
		}

		query = query.Where("user_id = ?", parsed)
	}

	if month := c.Query("month"); month != "" {
		parsed, err := types.ParseMonth(month)
		if err != nil {
			message := httputil.ErrInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &message})
			return
		}

		query = query.Where("date >= ? AND date < ?", parsed.FirstDay(), parsed.AddDate(0, 1).FirstDay())
	}

	var transactions []models.Transaction
	err := query.Order("date ASC").Find(&transactions).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &message})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		message := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &message})
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", uri.ID).Error
	if err != nil {
		message := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &message})
		return
	}

	apiResource := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
