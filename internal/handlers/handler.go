package handlers

import (
	"net/http"

	"expense_manager/internal/logger"
	"expense_manager/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLog)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public auth endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Everything else requires a valid bearer token
	protected := router.Group("/", h.bearerAuth)
	{
		protected.GET("/users", h.listUsers)

		h.registerCategoryRoutes(protected)
		h.registerExpenseRoutes(protected)

		protected.GET("/summary", h.getSummary)

		// Live spending summary over WebSocket (HTTP upgrade) — same port
		protected.GET("/ws", h.wsSummary)
	}

	return router
}

func (h *Handler) registerCategoryRoutes(g *gin.RouterGroup) {
	g.POST("/categories", h.addCategory)
	g.GET("/categories", h.listCategories)
	g.DELETE("/categories/:id", h.deleteCategory)
}

func (h *Handler) registerExpenseRoutes(g *gin.RouterGroup) {
	g.POST("/expenses", h.addExpense)
	g.GET("/expenses", h.listExpenses)
	g.GET("/expenses/deleted", h.listDeletedExpenses)
	g.DELETE("/expenses/:id", h.deleteExpense)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
