package screens

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklink-lite/internal/account"
	"stocklink-lite/internal/auth"
	"stocklink-lite/internal/credentials"
	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/gateway"
	"stocklink-lite/internal/market"
	"stocklink-lite/internal/payments"
	"stocklink-lite/internal/trading"
)

type fixture struct {
	mux     *http.ServeMux
	store   credentials.Store
	account *account.Service
	market  *market.Service
	auth    *auth.Service
	trading *trading.Service
	pay     *payments.Service
}

func newFixture(t *testing.T) *fixture {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	store, err := credentials.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), domain.Session{AccessToken: "T1", RefreshToken: "R1"}))

	gw := gateway.New(srv.URL, store, time.Second)
	return &fixture{
		mux:     mux,
		store:   store,
		account: &account.Service{Gateway: gw},
		market:  &market.Service{Gateway: gw},
		auth:    &auth.Service{Gateway: gw, Credentials: store},
		trading: &trading.Service{Gateway: gw},
		pay:     &payments.Service{Gateway: gw},
	}
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func (f *fixture) serveDashboard() {
	f.mux.HandleFunc("/user/balance", respond(`{"balance": 5000}`))
	f.mux.HandleFunc("/user/stocks", respond(`{"stocks":[{"company":{"id":3,"symbol":"ETL","currentPrice":120.5},"quantity":40}]}`))
	f.mux.HandleFunc("/transactions/history", respond(`[{"type":"BUY","quantity":5,"company":{"name":"EthioTech Ltd."},"priceAtTime":118.4}]`))
	f.mux.HandleFunc("/companies/ipo", respond(`{"companies":[
		{"id":1,"symbol":"AAA","volume":50},
		{"id":2,"symbol":"BBB","volume":null},
		{"id":3,"symbol":"CCC","volume":200}
	]}`))
	f.mux.HandleFunc("/stock/3/graph", respond(`[{"date":"2025-08-01","price":118.2}]`))
}

func TestPortfolio_LoadPopulatesEverySection(t *testing.T) {
	f := newFixture(t)
	f.serveDashboard()

	p := &Portfolio{Account: f.account, Market: f.market, Auth: f.auth}
	require.NoError(t, p.Load(context.Background()))

	assert.Equal(t, "5000", p.Balance.String())
	require.Len(t, p.Holdings, 1)
	assert.Equal(t, int64(40), p.Holdings[0].Quantity)
	require.Len(t, p.Transactions, 1)
	require.Len(t, p.Watchlist, 2)
	assert.Equal(t, "CCC", p.Watchlist[0].Symbol)
	assert.Equal(t, "AAA", p.Watchlist[1].Symbol)
	require.Len(t, p.Performance, 1)
	assert.Equal(t, "118.2", p.Performance[0].Price.String())
}

func TestPortfolio_BatchFailure_ReportedOnce(t *testing.T) {
	f2 := newFixture(t)
	f2.mux.HandleFunc("/user/balance", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"balance unavailable"}`))
	})
	f2.mux.HandleFunc("/user/stocks", respond(`{"stocks":[]}`))
	f2.mux.HandleFunc("/transactions/history", respond(`[]`))
	f2.mux.HandleFunc("/companies/ipo", respond(`{"companies":[]}`))

	p := &Portfolio{Account: f2.account, Market: f2.market, Auth: f2.auth}
	err := p.Load(context.Background())

	var httpErr *gateway.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "balance unavailable", httpErr.Message)
	assert.True(t, p.Balance.IsZero())
	assert.Empty(t, p.Performance)
}

func TestPortfolio_PerformanceFailureKeepsScreenUsable(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/user/balance", respond(`{"balance": 5000}`))
	f.mux.HandleFunc("/user/stocks", respond(`{"stocks":[{"company":{"id":3,"symbol":"ETL"},"quantity":1}]}`))
	f.mux.HandleFunc("/transactions/history", respond(`[]`))
	f.mux.HandleFunc("/companies/ipo", respond(`{"companies":[]}`))
	f.mux.HandleFunc("/stock/3/graph", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"series unavailable"}`))
	})

	p := &Portfolio{Account: f.account, Market: f.market, Auth: f.auth}
	require.NoError(t, p.Load(context.Background()))
	assert.Empty(t, p.Performance)
	assert.Equal(t, "5000", p.Balance.String())
}

func TestSignupWizard_AccumulatesAndSubmitsOnce(t *testing.T) {
	f := newFixture(t)
	submits := 0
	f.mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		submits++
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Registered"}`))
	})

	w := &SignupWizard{Auth: f.auth}
	w.EnterAccount("Abebe Kebede", "abebe@example.et", "secret1")
	w.EnterProfile("18 - 24", "Male", "Beginner")

	draft := w.Draft()
	assert.Equal(t, "Abebe Kebede", draft.Name)
	assert.Equal(t, "Beginner", draft.Experience)

	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, 1, submits)
	assert.Equal(t, domain.RegistrationDraft{}, w.Draft())
}

func TestSignupWizard_FailedSubmitKeepsDraft(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Email already registered"}`))
	})

	w := &SignupWizard{Auth: f.auth}
	w.EnterAccount("Abebe Kebede", "abebe@example.et", "secret1")
	w.EnterProfile("18 - 24", "Male", "Beginner")

	require.Error(t, w.Submit(context.Background()))
	assert.Equal(t, "abebe@example.et", w.Draft().Email)
}

func TestIPOList_BuyFailureLeavesCompaniesUntouched(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/companies/ipo", respond(`{"companies":[{"id":1,"symbol":"AAA","volume":10}]}`))
	f.mux.HandleFunc("/companies/stock/buy", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"insufficient funds"}}`))
	})

	s := &IPOList{Market: f.market, Trading: f.trading}
	require.NoError(t, s.Load(context.Background(), 1))
	before := s.Companies

	err := s.Buy(context.Background(), 1, 100)
	var httpErr *gateway.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "insufficient funds", httpErr.Message)
	assert.Equal(t, before, s.Companies)
}

func TestStockDetail_Load(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/companies/details/4", respond(`{"id":4,"name":"Awash Wine","symbol":"AWW","currentPrice":88.25}`))
	f.mux.HandleFunc("/stock/4/graph", respond(`[{"date":"2025-08-01","price":87.9}]`))
	f.mux.HandleFunc("/user/stocks/4", respond(`{"quantity":12}`))

	s := &StockDetail{Market: f.market, Account: f.account}
	require.NoError(t, s.Load(context.Background(), 4, ""))
	assert.Equal(t, "AWW", s.Company.Symbol)
	require.Len(t, s.Performance, 1)
	assert.Equal(t, int64(12), s.Owned)
}

func TestTrade_Load(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/tread/orderbook/2", respond(`{
		"bids":[{"price":120,"orders":[{"id":"o1","quantity":10,"createdAt":"2025-08-30T10:00:00Z"}]}],
		"asks":[]
	}`))

	tr := &Trade{Market: f.market}
	require.NoError(t, tr.Load(context.Background(), 2))
	require.Len(t, tr.Orders, 1)
	assert.Equal(t, domain.OrderSideBuy, tr.Orders[0].Type)
}

func TestDeposit_OpensCheckoutURL(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/payment/deposit", respond(`{"checkoutUrl":"https://checkout.example/pay/abc"}`))

	var opened string
	d := &Deposit{
		Payments: f.pay,
		OpenURL: func(url string) error {
			opened = url
			return nil
		},
	}
	require.NoError(t, d.Submit(context.Background(), "250"))
	assert.Equal(t, "https://checkout.example/pay/abc", opened)
}

func TestDeposit_NoURLMeansNothingToOpen(t *testing.T) {
	f := newFixture(t)
	f.mux.HandleFunc("/payment/deposit", respond(`{"message":"Deposit recorded"}`))

	d := &Deposit{
		Payments: f.pay,
		OpenURL: func(url string) error {
			t.Fatal("nothing should be opened")
			return nil
		},
	}
	require.NoError(t, d.Submit(context.Background(), "250"))
}
