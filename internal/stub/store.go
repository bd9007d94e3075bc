package stub

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects the stub database: Postgres when databaseURL is set, a local
// SQLite file otherwise. Tests pass ":memory:" as the SQLite path.
func Open(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&User{}, &AuthToken{}, &Company{}, &Holding{}, &Transaction{}, &Order{}); err != nil {
		return nil, err
	}
	return db, nil
}

func vol(n int64) *int64 { return &n }

// Seed inserts demo companies and their order books when the listing table is
// empty. Idempotent across restarts.
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&Company{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	companies := []Company{
		{
			Name: "EthioTech Ltd.", Symbol: "ETL", Sector: "Technology",
			StockAmount: 500000, MarketCap: decimal.NewFromInt(60_000_000),
			CurrentPrice: decimal.NewFromFloat(120.50),
			OpeningDate:  "2025-07-01", ClosingDate: "2025-10-01",
			MinimumStockAmount: 10, Status: "open",
			About:  "Addis Ababa software and payments group.",
			Volume: vol(300), Change: decimal.NewFromFloat(1.20), ChangePercent: 1.01,
			Graph: datatypes.JSON([]byte(`[{"date":"2025-08-25","price":118.2},{"date":"2025-08-26","price":119.0},{"date":"2025-08-27","price":120.5}]`)),
		},
		{
			Name: "Awash Wine S.C.", Symbol: "AWW", Sector: "Consumer",
			StockAmount: 250000, MarketCap: decimal.NewFromInt(22_000_000),
			CurrentPrice: decimal.NewFromFloat(88.25),
			OpeningDate:  "2025-06-15", ClosingDate: "2025-09-15",
			MinimumStockAmount: 5, Status: "open",
			About:  "Winery and beverages producer.",
			Volume: vol(120), Change: decimal.NewFromFloat(-0.40), ChangePercent: -0.45,
			Graph: datatypes.JSON([]byte(`[{"date":"2025-08-25","price":89.1},{"date":"2025-08-26","price":88.6},{"date":"2025-08-27","price":88.25}]`)),
		},
		{
			Name: "Habesha Cement", Symbol: "HBC", Sector: "Industrials",
			StockAmount: 800000, MarketCap: decimal.NewFromInt(41_000_000),
			CurrentPrice: decimal.NewFromFloat(51.75),
			OpeningDate:  "2025-08-01", ClosingDate: "2025-11-01",
			MinimumStockAmount: 20, Status: "open",
			About: "Cement and construction materials.",
			// No trades yet: the dashboard watchlist must skip this one.
			Volume: nil, Change: decimal.Zero, ChangePercent: 0,
			Graph: datatypes.JSON([]byte(`[]`)),
		},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	orders := []Order{
		{ID: uuid.New().String(), CompanyID: companies[0].ID, Side: "bid", Price: decimal.NewFromFloat(120.00), Quantity: 10, CreatedAt: now.Add(-10 * time.Minute)},
		{ID: uuid.New().String(), CompanyID: companies[0].ID, Side: "bid", Price: decimal.NewFromFloat(120.00), Quantity: 4, CreatedAt: now.Add(-8 * time.Minute)},
		{ID: uuid.New().String(), CompanyID: companies[0].ID, Side: "bid", Price: decimal.NewFromFloat(119.50), Quantity: 25, CreatedAt: now.Add(-6 * time.Minute)},
		{ID: uuid.New().String(), CompanyID: companies[0].ID, Side: "ask", Price: decimal.NewFromFloat(121.00), Quantity: 7, CreatedAt: now.Add(-5 * time.Minute)},
		{ID: uuid.New().String(), CompanyID: companies[1].ID, Side: "ask", Price: decimal.NewFromFloat(89.00), Quantity: 12, CreatedAt: now.Add(-4 * time.Minute)},
	}
	return db.Create(&orders).Error
}
