// Command stocklink is a terminal client for the EthioStockLink Lite backend.
// It mirrors the mobile app's screens one subcommand each: the session is
// bootstrapped from the credential store, reads render server state, and
// mutations are followed by an explicit re-fetch rather than a local update.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stocklink-lite/internal/account"
	"stocklink-lite/internal/auth"
	"stocklink-lite/internal/config"
	"stocklink-lite/internal/credentials"
	"stocklink-lite/internal/domain"
	"stocklink-lite/internal/gateway"
	"stocklink-lite/internal/market"
	"stocklink-lite/internal/payments"
	"stocklink-lite/internal/screens"
	"stocklink-lite/internal/trading"
)

const usage = `Usage: stocklink <command> [args]

  login <email> <password>      sign in and store the session
  signup                        interactive three-step registration
  logout                        clear the stored session
  portfolio                     dashboard: balance, holdings, history, watchlist
  ipo [page]                    IPO marketplace listings
  detail <companyId>            one company with performance and owned shares
  orderbook <companyId>         bids and asks for a company
  buy <companyId> <quantity>    buy shares at the current price
  deposit <amount>              start a checkout for a deposit
`

type cli struct {
	creds credentials.Store
	auth  *auth.Service

	portfolio *screens.Portfolio
	login     *screens.Login
	signup    *screens.SignupWizard
	ipo       *screens.IPOList
	detail    *screens.StockDetail
	trade     *screens.Trade
	deposit   *screens.Deposit
}

func newCLI(cfg *config.Config) (*cli, error) {
	var (
		creds credentials.Store
		err   error
	)
	if cfg.CredentialsRedisURL != "" {
		creds, err = credentials.NewRedisStore(cfg.CredentialsRedisURL)
	} else {
		creds, err = credentials.OpenSQLite(cfg.CredentialsDBPath)
	}
	if err != nil {
		return nil, err
	}

	gw := gateway.New(cfg.APIBaseURL, creds, cfg.HTTPTimeout)
	authSvc := &auth.Service{Gateway: gw, Credentials: creds}
	acctSvc := &account.Service{Gateway: gw}
	mktSvc := &market.Service{Gateway: gw}
	tradeSvc := &trading.Service{Gateway: gw}
	paySvc := &payments.Service{Gateway: gw}

	return &cli{
		creds:     creds,
		auth:      authSvc,
		portfolio: &screens.Portfolio{Account: acctSvc, Market: mktSvc, Auth: authSvc},
		login:     &screens.Login{Auth: authSvc},
		signup:    &screens.SignupWizard{Auth: authSvc},
		ipo:       &screens.IPOList{Market: mktSvc, Trading: tradeSvc},
		detail:    &screens.StockDetail{Market: mktSvc, Account: acctSvc},
		trade:     &screens.Trade{Market: mktSvc},
		deposit:   &screens.Deposit{Payments: paySvc},
	}, nil
}

// requireSession mirrors the app's startup routing: commands behind the
// authenticated area refuse to run without a stored session.
func (c *cli) requireSession(ctx context.Context) error {
	if auth.Bootstrap(ctx, c.creds) != auth.Authenticated {
		return fmt.Errorf("not logged in; run `stocklink login` first")
	}
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Config load failed")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	c, err := newCLI(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Startup failed")
	}

	if err := c.run(context.Background(), args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (c *cli) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: stocklink login <email> <password>")
		}
		if err := c.login.Submit(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Logged in.")
		return nil

	case "signup":
		return c.runSignup(ctx)

	case "logout":
		if err := c.portfolio.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil

	case "portfolio":
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		return c.runPortfolio(ctx)

	case "ipo":
		page := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("page must be a number")
			}
			page = n
		}
		if err := c.ipo.Load(ctx, page); err != nil {
			return err
		}
		printCompanies(c.ipo.Companies)
		return nil

	case "detail":
		if len(args) != 1 {
			return fmt.Errorf("usage: stocklink detail <companyId>")
		}
		id, err := parseCompanyID(args[0])
		if err != nil {
			return err
		}
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		if err := c.detail.Load(ctx, id, market.DefaultTimeframe); err != nil {
			return err
		}
		printDetail(c.detail)
		return nil

	case "orderbook":
		if len(args) != 1 {
			return fmt.Errorf("usage: stocklink orderbook <companyId>")
		}
		id, err := parseCompanyID(args[0])
		if err != nil {
			return err
		}
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		if err := c.trade.Load(ctx, id); err != nil {
			return err
		}
		printOrderBook(c.trade.Orders)
		return nil

	case "buy":
		if len(args) != 2 {
			return fmt.Errorf("usage: stocklink buy <companyId> <quantity>")
		}
		id, err := parseCompanyID(args[0])
		if err != nil {
			return err
		}
		qty, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("quantity must be a number")
		}
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		if err := c.ipo.Buy(ctx, id, qty); err != nil {
			return err
		}
		fmt.Println("Purchase complete. Run `stocklink portfolio` to see the new state.")
		return nil

	case "deposit":
		if len(args) != 1 {
			return fmt.Errorf("usage: stocklink deposit <amount>")
		}
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		if err := c.deposit.Submit(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Checkout opened in your browser. The balance updates after the payment settles; re-run `stocklink portfolio` to see it.")
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (c *cli) runSignup(ctx context.Context) error {
	in := bufio.NewScanner(os.Stdin)
	prompt := func(label string) string {
		fmt.Print(label + ": ")
		if !in.Scan() {
			return ""
		}
		return strings.TrimSpace(in.Text())
	}

	fmt.Println("Step 1 of 3 - account")
	name := prompt("Full name")
	email := prompt("Email")
	password := prompt("Password")
	c.signup.EnterAccount(name, email, password)

	fmt.Println("Step 2 of 3 - profile")
	age := prompt("Age range (e.g. 18 - 24)")
	gender := prompt("Gender")
	experience := prompt("Trading experience (Beginner/Intermediate/Advanced)")
	c.signup.EnterProfile(age, gender, experience)

	fmt.Println("Step 3 of 3 - confirm")
	draft := c.signup.Draft()
	fmt.Printf("  %s <%s>, %s, %s, %s\n", draft.Name, draft.Email, draft.Age, draft.Gender, draft.Experience)
	if !strings.EqualFold(prompt("Create account? (y/n)"), "y") {
		fmt.Println("Cancelled.")
		return nil
	}
	if err := c.signup.Submit(ctx); err != nil {
		return err
	}
	fmt.Println("Account created. Run `stocklink login` to sign in.")
	return nil
}

func (c *cli) runPortfolio(ctx context.Context) error {
	if err := c.portfolio.Load(ctx); err != nil {
		return err
	}

	fmt.Printf("Balance: %s ETB\n\n", c.portfolio.Balance)

	fmt.Println("Holdings:")
	if len(c.portfolio.Holdings) == 0 {
		fmt.Println("  (none)")
	}
	for _, h := range c.portfolio.Holdings {
		fmt.Printf("  %-6s %6d shares @ %s (%+.2f%%)\n",
			h.Company.Symbol, h.Quantity, h.Company.CurrentPrice, h.Company.ChangePercent)
	}

	fmt.Println("\nWatchlist (top by volume):")
	for _, co := range c.portfolio.Watchlist {
		fmt.Printf("  %-6s %s  vol %d\n", co.Symbol, co.CurrentPrice, *co.Volume)
	}

	fmt.Println("\nRecent transactions:")
	if len(c.portfolio.Transactions) == 0 {
		fmt.Println("  (none)")
	}
	for _, tx := range c.portfolio.Transactions {
		fmt.Printf("  %-4s %6d x %s  %s\n", tx.Type, tx.Quantity, tx.Company.Name, tx.PriceAtTime)
	}

	if len(c.portfolio.Performance) > 0 {
		fmt.Printf("\nTop holding performance (%d points, latest %s)\n",
			len(c.portfolio.Performance),
			c.portfolio.Performance[len(c.portfolio.Performance)-1].Price)
	}
	return nil
}

func parseCompanyID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("company id must be a number")
	}
	return uint(n), nil
}

func printCompanies(companies []domain.Company) {
	if len(companies) == 0 {
		fmt.Println("No listings.")
		return
	}
	fmt.Printf("%-4s %-6s %-24s %10s %10s %8s\n", "ID", "SYM", "NAME", "PRICE", "VOLUME", "CHANGE")
	for _, co := range companies {
		vol := "-"
		if co.Volume != nil {
			vol = strconv.FormatInt(*co.Volume, 10)
		}
		fmt.Printf("%-4d %-6s %-24s %10s %10s %+7.2f%%\n",
			co.ID, co.Symbol, co.Name, co.CurrentPrice, vol, co.ChangePercent)
	}
}

func printDetail(s *screens.StockDetail) {
	co := s.Company
	fmt.Printf("%s (%s) - %s\n", co.Name, co.Symbol, co.Sector)
	fmt.Printf("Price %s ETB (%+.2f%%), market cap %s\n", co.CurrentPrice, co.ChangePercent, co.MarketCap)
	fmt.Printf("IPO window %s to %s, status %s, minimum %d shares\n",
		co.OpeningDate, co.ClosingDate, co.Status, co.MinimumStockAmount)
	if co.About != "" {
		fmt.Println(co.About)
	}
	fmt.Printf("You own %d shares\n", s.Owned)
	if len(s.Performance) > 0 {
		first, last := s.Performance[0], s.Performance[len(s.Performance)-1]
		fmt.Printf("Performance: %s @ %s -> %s @ %s (%d points)\n",
			first.Date, first.Price, last.Date, last.Price, len(s.Performance))
	}
}

func printOrderBook(entries []domain.OrderBookEntry) {
	if len(entries) == 0 {
		fmt.Println("Order book is empty.")
		return
	}
	fmt.Printf("%-4s %10s %8s  %s\n", "SIDE", "PRICE", "SHARES", "PLACED")
	for _, e := range entries {
		fmt.Printf("%-4s %10s %8d  %s\n", e.Type, e.Price, e.Shares, e.CreatedAt)
	}
}
