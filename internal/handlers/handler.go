package handlers

import (
	"net/http"

	_ "expense_tracker/docs"
	"expense_tracker/internal/logger"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestID, h.accessLog, gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerUserRoutes(router)
	h.registerExpenseRoutes(router)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
		users.GET("/me", h.ownerMiddleware, h.me)
	}
}

func (h *Handler) registerExpenseRoutes(r *gin.Engine) {
	expenses := r.Group("/expenses", h.ownerMiddleware)
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.GET("/summary", h.summarizeExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.PATCH("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
