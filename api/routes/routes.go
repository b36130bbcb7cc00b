package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/luckytaka/earning-app-backend/internal/config"
	"github.com/luckytaka/earning-app-backend/internal/handlers"
	"github.com/luckytaka/earning-app-backend/internal/middleware"
)

// Handlers bundles every HTTP handler wired in main.
type Handlers struct {
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Lottery *handlers.LotteryHandler
	Spin    *handlers.SpinHandler
	Wallet  *handlers.WalletHandler
	GiftBox *handlers.GiftBoxHandler
	Invest  *handlers.InvestHandler
	Trade   *handlers.TradeHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// Catalogs need no authentication
		public.GET("/lottery/cards", h.Lottery.GetCards)
		public.GET("/spin/segments", h.Spin.GetSegments)
		public.GET("/invest/plans", h.Invest.GetPlans)
		public.GET("/games/products", h.Trade.GetProducts)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.GET("/me", h.User.GetProfile)
		protected.PUT("/me/payment-method", h.User.UpdatePaymentMethod)

		lottery := protected.Group("/lottery")
		{
			lottery.GET("/session", h.Lottery.GetSession)
			lottery.POST("/purchase", h.Lottery.Purchase)
			lottery.POST("/draw", h.Lottery.Draw)
		}

		protected.POST("/spin", h.Spin.Spin)

		wallet := protected.Group("/wallet")
		{
			wallet.POST("/deposit", h.Wallet.Deposit)
			wallet.POST("/withdraw", h.Wallet.Withdraw)
			wallet.POST("/loan", h.Wallet.Loan)
		}

		giftbox := protected.Group("/giftbox")
		{
			giftbox.POST("/sell", h.GiftBox.Sell)
			giftbox.POST("/claim", h.GiftBox.Claim)
			giftbox.POST("/delivery", h.GiftBox.Delivery)
		}

		invest := protected.Group("/invest")
		{
			invest.POST("", h.Invest.Invest)
			invest.POST("/:id/claim", h.Invest.ClaimProfit)
		}

		trade := protected.Group("/trade")
		{
			trade.GET("/quotes", h.Trade.GetQuotes)
			trade.POST("/buy", h.Trade.Buy)
			trade.POST("/sell", h.Trade.Sell)
		}

		protected.POST("/games/topup", h.Trade.Topup)
	}

	return router
}
