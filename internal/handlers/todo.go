package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/service"
)

type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo list handler
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// Register mounts the todo routes on rg
func (h *TodoHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/todos", h.ListLists)
	rg.PUT("/todos", h.UpsertList)
	rg.GET("/todos/:date", h.GetList)
	rg.DELETE("/todos/:date", h.DeleteList)
	rg.PATCH("/todos/:date/items/:itemId", h.UpdateItem)
}

// ListLists handles GET /api/v1/todos?start=&end=
func (h *TodoHandler) ListLists(c *gin.Context) {
	start, ok := parseDateParam(c, "start")
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end")
	if !ok {
		return
	}

	lists, err := h.todoService.ListLists(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err, "Todo list", "")
		return
	}
	c.JSON(http.StatusOK, lists)
}

// UpsertList handles PUT /api/v1/todos
func (h *TodoHandler) UpsertList(c *gin.Context) {
	var req models.UpsertTodoListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	list, err := h.todoService.UpsertList(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Todo list", req.Date.String())
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetList handles GET /api/v1/todos/:date
func (h *TodoHandler) GetList(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}

	list, err := h.todoService.GetList(c.Request.Context(), date)
	if err != nil {
		writeServiceError(c, err, "Todo list", date.String())
		return
	}
	c.JSON(http.StatusOK, list)
}

// DeleteList handles DELETE /api/v1/todos/:date
func (h *TodoHandler) DeleteList(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}

	if err := h.todoService.DeleteList(c.Request.Context(), date); err != nil {
		writeServiceError(c, err, "Todo list", date.String())
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateItem handles PATCH /api/v1/todos/:date/items/:itemId
func (h *TodoHandler) UpdateItem(c *gin.Context) {
	date, ok := pathDate(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	var req models.UpdateTodoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	list, err := h.todoService.UpdateItemStatus(c.Request.Context(), date, itemID, req.Status)
	if err != nil {
		writeServiceError(c, err, "Todo item", itemID)
		return
	}
	c.JSON(http.StatusOK, list)
}
