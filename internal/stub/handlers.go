package stub

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Handlers struct {
	DB *gorm.DB
}

var errInsufficientFunds = errors.New("insufficient funds")

// signupBonus funds new demo accounts.
var signupBonus = decimal.NewFromInt(10000)

func errJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// auth wraps a handler, resolving the bearer token to a user ID in Locals.
func (h *Handlers) auth(next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return errJSON(c, fiber.StatusUnauthorized, "Missing bearer token")
		}
		var tok AuthToken
		err := h.DB.Where("token = ? AND kind = ?", strings.TrimPrefix(header, "Bearer "), "access").First(&tok).Error
		if err != nil {
			return errJSON(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		c.Locals("user_id", tok.UserID)
		return next(c)
	}
}

func userID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

func (h *Handlers) Register(c *fiber.Ctx) error {
	var in struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		AgeRange  string `json:"ageRange"`
		Sex       string `json:"Sex"`
		Level     string `json:"Level"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Email == "" || in.Password == "" {
		return errJSON(c, fiber.StatusBadRequest, "Email and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not hash password")
	}
	u := User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		AgeRange:     in.AgeRange,
		Sex:          in.Sex,
		Level:        in.Level,
		Balance:      signupBonus,
	}
	if err := h.DB.Create(&u).Error; err != nil {
		return errJSON(c, fiber.StatusConflict, "Email already registered")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Registered"})
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	var u User
	if err := h.DB.Where("email = ?", in.Email).First(&u).Error; err != nil {
		return errJSON(c, fiber.StatusUnauthorized, "Invalid Email")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return errJSON(c, fiber.StatusUnauthorized, "Incorrect Password")
	}

	access := uuid.New().String()
	refresh := uuid.New().String()
	tokens := []AuthToken{
		{Token: access, UserID: u.ID, Kind: "access"},
		{Token: refresh, UserID: u.ID, Kind: "refresh"},
	}
	if err := h.DB.Create(&tokens).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not create session")
	}
	return c.JSON(fiber.Map{"accessToken": access, "refreshToken": refresh})
}

func (h *Handlers) Balance(c *fiber.Ctx) error {
	var u User
	if err := h.DB.First(&u, userID(c)).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(fiber.Map{"balance": u.Balance})
}

func companyBrief(co Company) fiber.Map {
	return fiber.Map{
		"id":            co.ID,
		"symbol":        co.Symbol,
		"currentPrice":  co.CurrentPrice,
		"change":        co.Change,
		"changePercent": co.ChangePercent,
	}
}

func (h *Handlers) Holdings(c *fiber.Ctx) error {
	var holdings []Holding
	if err := h.DB.Preload("Company").Where("user_id = ?", userID(c)).Find(&holdings).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not load holdings")
	}
	stocks := make([]fiber.Map, 0, len(holdings))
	for _, hld := range holdings {
		stocks = append(stocks, fiber.Map{
			"company":  companyBrief(hld.Company),
			"quantity": hld.Quantity,
		})
	}
	return c.JSON(fiber.Map{"stocks": stocks})
}

func (h *Handlers) StockQuantity(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("companyId")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid company id")
	}
	var hld Holding
	err = h.DB.Where("user_id = ? AND company_id = ?", userID(c), companyID).First(&hld).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No quantity field at all: the client defaults to zero.
		return c.JSON(fiber.Map{})
	}
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not load holding")
	}
	return c.JSON(fiber.Map{"quantity": hld.Quantity})
}

func (h *Handlers) TransactionHistory(c *fiber.Ctx) error {
	var txs []Transaction
	if err := h.DB.Preload("Company").Where("user_id = ?", userID(c)).Order("created_at DESC").Find(&txs).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not load transactions")
	}
	out := make([]fiber.Map, 0, len(txs))
	for _, t := range txs {
		out = append(out, fiber.Map{
			"type":        t.Type,
			"quantity":    t.Quantity,
			"company":     fiber.Map{"name": t.Company.Name},
			"priceAtTime": t.PriceAtTime,
		})
	}
	return c.JSON(out)
}

func companyFull(co Company) fiber.Map {
	return fiber.Map{
		"id":                 co.ID,
		"name":               co.Name,
		"symbol":             co.Symbol,
		"sector":             co.Sector,
		"stockAmount":        co.StockAmount,
		"marketCap":          co.MarketCap,
		"currentPrice":       co.CurrentPrice,
		"openingDate":        co.OpeningDate,
		"closingDate":        co.ClosingDate,
		"minimumStockAmount": co.MinimumStockAmount,
		"status":             co.Status,
		"about":              co.About,
		"volume":             co.Volume,
		"change":             co.Change,
		"changePercent":      co.ChangePercent,
	}
}

func (h *Handlers) IPOCompanies(c *fiber.Ctx) error {
	// The page parameter is accepted for wire parity; the demo data set fits
	// on one page.
	var companies []Company
	if err := h.DB.Order("id").Find(&companies).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not load companies")
	}
	out := make([]fiber.Map, 0, len(companies))
	for _, co := range companies {
		out = append(out, companyFull(co))
	}
	return c.JSON(fiber.Map{"companies": out})
}

func (h *Handlers) CompanyDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid company id")
	}
	var co Company
	if err := h.DB.First(&co, id).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Company not found")
	}
	return c.JSON(companyFull(co))
}

func (h *Handlers) Graph(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid company id")
	}
	var co Company
	if err := h.DB.First(&co, id).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Company not found")
	}
	if len(co.Graph) == 0 {
		return c.JSON([]fiber.Map{})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(co.Graph)
}

func (h *Handlers) Buy(c *fiber.Ctx) error {
	var in struct {
		CompanyID uint  `json:"companyId"`
		Quantity  int64 `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Quantity <= 0 {
		return errJSON(c, fiber.StatusBadRequest, "Quantity must be positive")
	}

	var co Company
	if err := h.DB.First(&co, in.CompanyID).Error; err != nil {
		return errJSON(c, fiber.StatusNotFound, "Company not found")
	}
	cost := co.CurrentPrice.Mul(decimal.NewFromInt(in.Quantity))

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var u User
		if err := tx.First(&u, userID(c)).Error; err != nil {
			return err
		}
		if u.Balance.LessThan(cost) {
			return errInsufficientFunds
		}
		u.Balance = u.Balance.Sub(cost)
		if err := tx.Save(&u).Error; err != nil {
			return err
		}

		var hld Holding
		err := tx.Where("user_id = ? AND company_id = ?", u.ID, co.ID).First(&hld).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			hld = Holding{UserID: u.ID, CompanyID: co.ID, Quantity: in.Quantity}
			if err := tx.Create(&hld).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			hld.Quantity += in.Quantity
			if err := tx.Save(&hld).Error; err != nil {
				return err
			}
		}

		return tx.Create(&Transaction{
			UserID:      u.ID,
			CompanyID:   co.ID,
			Type:        "BUY",
			Quantity:    in.Quantity,
			PriceAtTime: co.CurrentPrice,
			CreatedAt:   time.Now().UTC(),
		}).Error
	})
	if errors.Is(err, errInsufficientFunds) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fiber.Map{"message": "insufficient funds"},
		})
	}
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not execute purchase")
	}
	return c.JSON(fiber.Map{"message": "Purchase complete"})
}

func (h *Handlers) Deposit(c *fiber.Ctx) error {
	var in struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Amount.Sign() <= 0 {
		return errJSON(c, fiber.StatusBadRequest, "Enter a valid positive amount")
	}

	// The hosted backend credits the balance after its payment provider's
	// webhook; the stub credits immediately so the demo flow completes.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var u User
		if err := tx.First(&u, userID(c)).Error; err != nil {
			return err
		}
		u.Balance = u.Balance.Add(in.Amount)
		return tx.Save(&u).Error
	})
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not record deposit")
	}
	return c.JSON(fiber.Map{
		"checkoutUrl": "https://checkout.example/pay/" + uuid.New().String(),
	})
}

// orderLevels groups orders of one side into price levels, first-seen price
// order preserved.
func orderLevels(orders []Order) []fiber.Map {
	levels := make([]fiber.Map, 0)
	index := make(map[string]int)
	for _, o := range orders {
		entry := fiber.Map{
			"id":        o.ID,
			"quantity":  o.Quantity,
			"createdAt": o.CreatedAt.UTC().Format(time.RFC3339),
		}
		key := o.Price.String()
		if i, ok := index[key]; ok {
			levels[i]["orders"] = append(levels[i]["orders"].([]fiber.Map), entry)
			continue
		}
		index[key] = len(levels)
		levels = append(levels, fiber.Map{
			"price":  o.Price,
			"orders": []fiber.Map{entry},
		})
	}
	return levels
}

func (h *Handlers) OrderBook(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("companyId")
	if err != nil {
		return errJSON(c, fiber.StatusBadRequest, "Invalid company id")
	}
	var bids, asks []Order
	if err := h.DB.Where("company_id = ? AND side = ?", companyID, "bid").Order("created_at").Find(&bids).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not load order book")
	}
	if err := h.DB.Where("company_id = ? AND side = ?", companyID, "ask").Order("created_at").Find(&asks).Error; err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "Could not load order book")
	}
	return c.JSON(fiber.Map{
		"bids": orderLevels(bids),
		"asks": orderLevels(asks),
	})
}
