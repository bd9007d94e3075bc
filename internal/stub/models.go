package stub

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// User is a registered account. New accounts start with demo funds so the
// client can be exercised without a real deposit.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"column:first_name"`
	LastName     string `gorm:"column:last_name"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	AgeRange     string
	Sex          string
	Level        string
	Balance      decimal.Decimal `gorm:"type:decimal(18,2)"`
	CreatedAt    time.Time
}

// AuthToken maps an issued bearer token to a user.
type AuthToken struct {
	Token     string `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Kind      string `gorm:"not null"` // "access" or "refresh"
	CreatedAt time.Time
}

// Company is an IPO listing. Graph holds the price-history series the graph
// endpoint serves, as a JSON array of {date, price} points.
type Company struct {
	ID                 uint `gorm:"primaryKey"`
	Name               string
	Symbol             string
	Sector             string
	StockAmount        int64
	MarketCap          decimal.Decimal `gorm:"type:decimal(18,2)"`
	CurrentPrice       decimal.Decimal `gorm:"type:decimal(18,2)"`
	OpeningDate        string
	ClosingDate        string
	MinimumStockAmount int64
	Status             string
	About              string
	Volume             *int64
	Change             decimal.Decimal `gorm:"type:decimal(18,2)"`
	ChangePercent      float64
	Graph              datatypes.JSON
}

// Holding is one user's position in one company.
type Holding struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null"`
	CompanyID uint `gorm:"index;not null"`
	Quantity  int64
	Company   Company `gorm:"foreignKey:CompanyID"`
}

// Transaction is one executed trade, append-only.
type Transaction struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"index;not null"`
	CompanyID   uint
	Type        string
	Quantity    int64
	PriceAtTime decimal.Decimal `gorm:"type:decimal(18,2)"`
	CreatedAt   time.Time
	Company     Company `gorm:"foreignKey:CompanyID"`
}

// Order is one outstanding order-book entry.
type Order struct {
	ID        string `gorm:"primaryKey"`
	CompanyID uint   `gorm:"index;not null"`
	Side      string `gorm:"not null"` // "bid" or "ask"
	Price     decimal.Decimal `gorm:"type:decimal(18,2)"`
	Quantity  int64
	CreatedAt time.Time
}
