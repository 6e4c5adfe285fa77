package handlers

import (
	"net/http"
	"strconv"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateExpenseRequest is the payload of POST /expenses.
type CreateExpenseRequest struct {
	Description string `json:"description" binding:"required" example:"coffee"`
	// Amount in the smallest currency unit
	Amount   *int64 `json:"amount" binding:"required" example:"300"`
	Category string `json:"category" binding:"required" example:"Groceries" enums:"Groceries,Leisure,Electronics,Utilities,Clothing,Health,Others"`
}

// UpdateExpenseRequest is the payload of PATCH /expenses/{id}; absent fields stay unchanged.
type UpdateExpenseRequest struct {
	Description *string `json:"description,omitempty" example:"espresso"`
	Amount      *int64  `json:"amount,omitempty" example:"350"`
	Category    *string `json:"category,omitempty" example:"Leisure"`
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}

// expenseID parses the :id path parameter and writes a 400 on failure.
func expenseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, key string) (models.Date, bool) {
	qs := c.Query(key)
	if qs == "" {
		return models.Date{}, true
	}
	d, err := models.ParseDate(qs)
	if err != nil {
		badRequest(c, "invalid '"+key+"' date; use YYYY-MM-DD")
		return models.Date{}, false
	}
	return d, true
}

// @Summary      List expenses
// @Description  date_filter is mutually exclusive with start/end. Windows end today: week = 7 days, month = 30 days, 3months = 90 days.
// @Tags         expenses
// @Produce      json
// @Param        date_filter  query  string  false  "Named window"  Enums(week,month,3months)
// @Param        category     query  string  false  "Category"  Enums(Groceries,Leisure,Electronics,Utilities,Clothing,Health,Others)
// @Param        start        query  string  false  "Inclusive lower bound (YYYY-MM-DD)"  example(2026-01-01)
// @Param        end          query  string  false  "Inclusive upper bound (YYYY-MM-DD)"  example(2026-01-31)
// @Success      200  {array}   models.Expense
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /expenses [get]
// @Security     BearerAuth
func (h *Handler) listExpenses(c *gin.Context) {
	ctx := c.Request.Context()
	user := currentUser(c)

	var (
		f   service.ListFilter
		ok  bool
		err error
	)
	f.DateFilter = c.Query("date_filter")
	if qs := c.Query("category"); qs != "" {
		if f.Category, err = models.ParseCategory(qs); err != nil {
			badRequest(c, err.Error())
			return
		}
	}
	if f.Start, ok = parseDateQuery(c, "start"); !ok {
		return
	}
	if f.End, ok = parseDateQuery(c, "end"); !ok {
		return
	}

	var items []models.Expense
	if f == (service.ListFilter{}) {
		items, err = h.services.GetAll(ctx, user)
	} else {
		items, err = h.services.List(ctx, user, f)
	}
	if err != nil {
		h.writeError(c, err, "expenses_list_failed", "user_id", user.ID, "filter", f)
		return
	}
	if items == nil {
		items = []models.Expense{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Summarize expenses
// @Description  Total of all amounts, optionally restricted to one month of the year (any year).
// @Tags         expenses
// @Produce      json
// @Param        month  query     int  false  "Month 1-12"  minimum(1)  maximum(12)
// @Success      200    {object}  models.Summary
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /expenses/summary [get]
// @Security     BearerAuth
func (h *Handler) summarizeExpenses(c *gin.Context) {
	user := currentUser(c)

	var month *int
	if qs := c.Query("month"); qs != "" {
		m, err := strconv.Atoi(qs)
		if err != nil {
			badRequest(c, "month must be an integer")
			return
		}
		month = &m
	}

	sum, err := h.services.Summarize(c.Request.Context(), user, month)
	if err != nil {
		h.writeError(c, err, "expenses_summary_failed", "user_id", user.ID)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// @Summary      Create expense
// @Description  The date is set to today.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body      CreateExpenseRequest  true  "Expense"
// @Success      201   {object}  models.Expense
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /expenses [post]
// @Security     BearerAuth
func (h *Handler) createExpense(c *gin.Context) {
	user := currentUser(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody+err.Error())
		return
	}
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	e, err := h.services.Create(c.Request.Context(), user, models.NewExpense{
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    category,
	})
	if err != nil {
		h.writeError(c, err, "expense_create_failed", "user_id", user.ID)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// @Summary      Get expense
// @Tags         expenses
// @Produce      json
// @Param        id   path      int  true  "Expense ID"
// @Success      200  {object}  models.Expense
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id} [get]
// @Security     BearerAuth
func (h *Handler) getExpense(c *gin.Context) {
	user := currentUser(c)
	id, ok := expenseID(c)
	if !ok {
		return
	}

	e, err := h.services.Get(c.Request.Context(), user, id)
	if err != nil {
		h.writeError(c, err, "expense_get_failed", "user_id", user.ID, "expense_id", id)
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Update expense
// @Description  Partial update: only the fields present in the body change.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Expense ID"
// @Param        body  body      UpdateExpenseRequest  true  "Fields to change"
// @Success      200   {object}  models.Expense
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /expenses/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateExpense(c *gin.Context) {
	user := currentUser(c)
	id, ok := expenseID(c)
	if !ok {
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody+err.Error())
		return
	}

	patch := models.ExpensePatch{Description: req.Description, Amount: req.Amount}
	if req.Category != nil {
		category, err := models.ParseCategory(*req.Category)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		patch.Category = &category
	}

	e, err := h.services.Update(c.Request.Context(), user, id, patch)
	if err != nil {
		h.writeError(c, err, "expense_update_failed", "user_id", user.ID, "expense_id", id)
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Delete expense
// @Tags         expenses
// @Param        id   path  int  true  "Expense ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteExpense(c *gin.Context) {
	user := currentUser(c)
	id, ok := expenseID(c)
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), user, id); err != nil {
		h.writeError(c, err, "expense_delete_failed", "user_id", user.ID, "expense_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
