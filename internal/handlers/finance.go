package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/service"
)

type FinanceHandler struct {
	financeService service.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
	}
}

// Register mounts the finance routes on rg
func (h *FinanceHandler) Register(rg *gin.RouterGroup) {
	finance := rg.Group("/finance")
	finance.GET("/transactions", h.ListTransactions)
	finance.POST("/transactions", h.CreateTransaction)
	finance.DELETE("/transactions/:id", h.DeleteTransaction)
	finance.GET("/budgets", listHandler(h.financeService.ListBudgets, "Budget"))
	finance.PUT("/budgets", saveHandler(h.financeService.SaveBudget, "Budget", func(b *models.Budget) string { return b.ID }))
	finance.GET("/bills", listHandler(h.financeService.ListBills, "Bill"))
	finance.PUT("/bills", saveHandler(h.financeService.SaveBill, "Bill", func(b *models.Bill) string { return b.ID }))
	finance.GET("/savings", listHandler(h.financeService.ListSavingsGoals, "Savings goal"))
	finance.PUT("/savings", saveHandler(h.financeService.SaveSavingsGoal, "Savings goal", func(g *models.SavingsGoal) string { return g.ID }))
	finance.GET("/accounts", listHandler(h.financeService.ListAccounts, "Account"))
	finance.PUT("/accounts", saveHandler(h.financeService.SaveAccount, "Account", func(a *models.Account) string { return a.ID }))
}

// listHandler adapts a service listing to a GET handler
func listHandler[T any](fetch func(context.Context) ([]T, error), resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := fetch(c.Request.Context())
		if err != nil {
			writeServiceError(c, err, resource, "")
			return
		}
		if records == nil {
			records = []T{}
		}
		c.JSON(http.StatusOK, records)
	}
}

// saveHandler adapts a service upsert to a PUT handler
func saveHandler[T any](store func(context.Context, *T) (*T, error), resource string, idOf func(*T) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record T
		if err := c.ShouldBindJSON(&record); err != nil {
			writeBindError(c, err)
			return
		}

		saved, err := store(c.Request.Context(), &record)
		if err != nil {
			writeServiceError(c, err, resource, idOf(&record))
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

// ListTransactions handles GET /api/v1/finance/transactions?start=&end=
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	start, ok := parseDateParam(c, "start")
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end")
	if !ok {
		return
	}

	txs, err := h.financeService.ListTransactions(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err, "Transaction", "")
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	c.JSON(http.StatusOK, txs)
}

// CreateTransaction handles POST /api/v1/finance/transactions
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	tx, err := h.financeService.CreateTransaction(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Transaction", req.ID)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// DeleteTransaction handles DELETE /api/v1/finance/transactions/:id
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	id := c.Param("id")
	if err := h.financeService.DeleteTransaction(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Transaction", id)
		return
	}
	c.Status(http.StatusNoContent)
}
