// Package server assembles the HTTP routes of the API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"

	_ "fintrack/internal/docs" // swagger docs
)

// Deps are the collaborators the router dispatches to.
type Deps struct {
	Users    services.UserServicer
	Tokens   handlers.TokenIssuer
	Verifier middleware.Authenticator
	Expenses services.RecordServicer[models.Expense]
	Incomes  services.RecordServicer[models.Income]
	Summary  services.SummaryServicer
	// LoginLimiter is optional; nil disables login rate limiting.
	LoginLimiter middleware.Limiter
	// Swagger mounts the API docs under /swagger.
	Swagger bool
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(d Deps) *gin.Engine {
	authHandler := handlers.NewAuthHandler(d.Users, d.Tokens)
	expenseHandler := handlers.NewExpenseHandler(d.Expenses)
	incomeHandler := handlers.NewIncomeHandler(d.Incomes)
	summaryHandler := handlers.NewSummaryHandler(d.Summary)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	if d.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	authRoutes := v1.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", middleware.LoginRateLimit(d.LoginLimiter), authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.RequireAuth(d.Verifier))

	protected.GET("/me", authHandler.Me)

	expenses := protected.Group("/records/expense")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	incomes := protected.Group("/records/income")
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("", incomeHandler.ListIncomes)
	incomes.GET("/:id", incomeHandler.GetIncome)
	incomes.PUT("/:id", incomeHandler.UpdateIncome)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	protected.GET("/summary", summaryHandler.GetSummary)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Total-Count, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
