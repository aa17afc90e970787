package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/balance-pilot/backend/internal/httputil"
	"github.com/balance-pilot/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource. A record
// that no rule matched is surfaced as "Uncategorized".
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	if model.Category == "" {
		model.Category = "Uncategorized"
	}

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", httputil.RequestHost(c), model.ID),
		},
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // The transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionQueryFilter struct {
	Search    string    `form:"search"`                                  // Search term matched against description and notes
	Category  string    `form:"category"`                                // Filter by category
	Source    string    `form:"source"`                                  // Filter by source
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02"`       // Transactions at and after this date
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02"`      // Transactions before and at this date
	MinAmount string    `form:"minAmount"`                               // Amount more than or equal to this
	MaxAmount string    `form:"maxAmount"`                               // Amount less than or equal to this
	Offset    uint      `form:"offset"`                                  // The offset of the first Transaction returned. Defaults to 0.
	Limit     int       `form:"limit"`                                   // Maximum number of Transactions to return. Defaults to 50.
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			search		query	string	false	"Search term matched against description and notes"
// @Param			category	query	string	false	"Filter by category"
// @Param			source		query	string	false	"Filter by source"
// @Param			fromDate	query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			untilDate	query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
// @Param			minAmount	query	string	false	"Amount more than or equal to this"
// @Param			maxAmount	query	string	false	"Amount less than or equal to this"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	query := models.DB.Model(&models.Transaction{})

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("description LIKE ? OR notes LIKE ?", like, like)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}

	if !filter.FromDate.IsZero() {
		query = query.Where("date >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		query = query.Where("date <= ?", filter.UntilDate)
	}

	if filter.MinAmount != "" {
		query = query.Where("amount >= ?", filter.MinAmount)
	}

	if filter.MaxAmount != "" {
		query = query.Where("amount <= ?", filter.MaxAmount)
	}

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	// Default to 50 transactions and allow -1 to set no limit
	limit := 50
	if filter.Limit != 0 {
		limit = filter.Limit
	}

	var transactions []models.Transaction
	err = query.
		Order("date DESC, created_at DESC").
		Limit(limit).
		Offset(int(filter.Offset)).
		Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  count,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", uri.ID.String()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// TransactionEditable are the fields of a transaction a user may change.
// The pipeline-derived fields (fingerprint, importedAt, date, amount) are
// not editable.
type TransactionEditable struct {
	Description *string `json:"description" example:"ACH DEPOSIT PAYROLL ACME"`
	Category    *string `json:"category" example:"Income"`
	Source      *string `json:"source" example:"Acme Corp"`
	Notes       *string `json:"notes" example:"reimbursed in April"`
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only the fields in the request body are updated.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", uri.ID.String()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var editable TransactionEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	updates := map[string]any{}
	if editable.Description != nil {
		updates["description"] = *editable.Description
	}
	if editable.Category != nil {
		updates["category"] = *editable.Category
	}
	if editable.Source != nil {
		updates["source"] = *editable.Source
	}
	if editable.Notes != nil {
		updates["notes"] = *editable.Notes
	}

	if len(updates) > 0 {
		err = models.DB.Model(&transaction).Updates(updates).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{Error: &s})
			return
		}
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}
