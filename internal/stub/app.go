// Package stub is a local double of the EthioStockLink Lite backend: every
// route the client consumes, with the same request and response shapes, close
// enough to develop and test against without the hosted service.
package stub

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewApp builds the Fiber app with every route the client consumes.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := &Handlers{DB: db}

	api := app.Group("/api")
	api.Post("/auth/login", h.Login)
	api.Post("/auth/register", h.Register)
	api.Get("/user/balance", h.auth(h.Balance))
	api.Get("/user/stocks", h.auth(h.Holdings))
	api.Get("/user/stocks/:companyId", h.auth(h.StockQuantity))
	api.Get("/transactions/history", h.auth(h.TransactionHistory))
	api.Get("/companies/ipo", h.IPOCompanies)
	api.Get("/companies/details/:id", h.CompanyDetails)
	api.Get("/stock/:id/graph", h.auth(h.Graph))
	api.Post("/companies/stock/buy", h.auth(h.Buy))
	api.Post("/payment/deposit", h.auth(h.Deposit))
	// "tread" matches the hosted API's route, typo and all.
	api.Get("/tread/orderbook/:companyId", h.auth(h.OrderBook))
	return app
}
