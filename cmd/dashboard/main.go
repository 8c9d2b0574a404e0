package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"marketadmin/internal/api"
	"marketadmin/internal/auth"
	"marketadmin/internal/category"
	"marketadmin/internal/commons"
	"marketadmin/internal/config"
	"marketadmin/internal/dashboard"
	"marketadmin/internal/domain"
	"marketadmin/internal/infrastructure/logger"
	"marketadmin/internal/notify"
	"marketadmin/internal/order"
	"marketadmin/internal/product"
	"marketadmin/internal/session"
)

type app struct {
	account    *auth.Controller
	categories *category.Controller
	products   *product.Controller
	orders     *order.Controller
	counters   *dashboard.Counters
}

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	sess, err := session.Load(cfg.Session.TokenFile)
	if err != nil {
		zapLogger.Fatal("loading session", zap.Error(err))
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sess, zapLogger)
	notifier := notify.NewConsole(os.Stdout)

	categoryStore := category.NewStore()
	productStore := product.NewStore()
	orderStore := order.NewStore()

	a := &app{
		account:    auth.NewController(client, sess, notifier, zapLogger),
		categories: category.NewController(client, categoryStore, notifier, zapLogger),
		products:   product.NewController(client, productStore, notifier, zapLogger),
		orders:     order.NewController(client, orderStore, notifier, zapLogger),
		counters:   dashboard.New(productStore, categoryStore, orderStore),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx, os.Args[1:]); err != nil {
		zapLogger.Debug("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// loadConfig prefers an explicit YAML file, falling back to environment
// variables.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("DASHBOARD_CONFIG"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: dashboard login <email> <password>")
		}
		return a.account.SignIn(ctx, args[1], args[2])
	case "logout":
		return a.account.Logout()
	case "summary":
		return a.summary(ctx)
	case "categories":
		return a.runCategories(ctx, args[1:])
	case "products":
		return a.runProducts(ctx, args[1:])
	case "orders":
		return a.runOrders(ctx, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) summary(ctx context.Context) error {
	// failures are already surfaced per screen; show whatever loaded
	_ = a.categories.Load(ctx)
	_ = a.products.Load(ctx)
	_ = a.orders.Load(ctx)

	counts := a.counters.Snapshot()
	fmt.Printf("Total Products:   %d\n", counts.Products)
	fmt.Printf("Total Categories: %d\n", counts.Categories)
	fmt.Printf("Total Orders:     %d (server reports %d)\n", counts.Orders, a.orders.TotalOrders())
	return nil
}

func (a *app) runCategories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.categories.Load(ctx); err != nil {
			return err
		}
		rows := a.categories.Categories()
		if len(args) > 1 {
			rows = a.categories.FilterBySubstring(args[1])
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tIMAGE")
		for _, c := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Image)
		}
		return w.Flush()
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: dashboard categories add <name> [image-url]")
		}
		draft := domain.CategoryDraft{Name: args[1]}
		if len(args) > 2 {
			draft.Image = args[2]
		}
		_, err := a.categories.Create(ctx, draft)
		return err
	case "update":
		if len(args) < 3 {
			return fmt.Errorf("usage: dashboard categories update <id> <name> [image-url]")
		}
		draft := domain.CategoryDraft{Name: args[2]}
		if len(args) > 3 {
			draft.Image = args[3]
		}
		_, err := a.categories.Update(ctx, args[1], draft)
		return err
	case "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: dashboard categories rm <id>")
		}
		return a.categories.Delete(ctx, args[1])
	default:
		return fmt.Errorf("unknown categories subcommand %q", args[0])
	}
}

func (a *app) runProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.products.Load(ctx); err != nil {
			return err
		}
		rows := a.products.Products()
		if len(args) > 1 {
			rows = a.products.FilterBySubstring(args[1])
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tBRAND\tPRICE\tSTOCK")
		for _, p := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%d\n", p.ID, p.Name, p.CategoryName, p.Brand, p.Price, p.Stock)
		}
		return w.Flush()
	case "add":
		if len(args) < 4 {
			return fmt.Errorf("usage: dashboard products add <name> <category> <price> [brand]")
		}
		price, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("parsing price: %w", err)
		}
		draft := domain.ProductDraft{Name: args[1], CategoryName: args[2], Price: price}
		if len(args) > 4 {
			draft.Brand = args[4]
		}
		_, err = a.products.Create(ctx, draft)
		return err
	case "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: dashboard products rm <id>")
		}
		return a.products.Delete(ctx, args[1])
	default:
		return fmt.Errorf("unknown products subcommand %q", args[0])
	}
}

func (a *app) runOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		if err := a.orders.Load(ctx); err != nil {
			return err
		}
		rows := a.orders.Orders()
		if len(args) > 1 {
			rows = a.orders.FilterBySubstring(args[1])
		}
		w := newTable()
		fmt.Fprintln(w, "ORDER\tCUSTOMER\tDATE\tTOTAL\tSTATUS")
		for _, o := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n",
				o.OrderID, o.Customer.Name, o.CreatedAt.Format("2006-01-02"), o.TotalAmount, o.DisplayStatus())
		}
		return w.Flush()
	case "show":
		if len(args) != 2 {
			return fmt.Errorf("usage: dashboard orders show <id>")
		}
		o, err := a.orders.Show(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Order:    %s\n", o.OrderID)
		fmt.Printf("Customer: %s <%s>\n", o.Customer.Name, o.Customer.Email)
		fmt.Printf("Address:  %s\n", o.Customer.Address)
		fmt.Printf("Date:     %s\n", o.CreatedAt.Format("2006-01-02"))
		fmt.Printf("Status:   %s\n", o.DisplayStatus())
		fmt.Printf("Total:    %.2f\n", o.TotalAmount)
		for _, item := range o.Items {
			fmt.Printf("  - %s x%d @ %.2f = %.2f\n", item.ProductName, item.Quantity, item.Price, item.Total)
		}
		return nil
	case "status":
		if len(args) < 3 {
			return fmt.Errorf("usage: dashboard orders status <id> <status>")
		}
		status, err := domain.ParseStatus(strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		return a.orders.SetStatus(ctx, args[1], status)
	case "statuses":
		for _, s := range domain.Statuses() {
			fmt.Println(s)
		}
		return nil
	default:
		return fmt.Errorf("unknown orders subcommand %q", args[0])
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: dashboard <command>

commands:
  login <email> <password>
  logout
  summary
  categories [list [term] | add <name> [image-url] | update <id> <name> [image-url] | rm <id>]
  products   [list [term] | add <name> <category> <price> [brand] | rm <id>]
  orders     [list [term] | show <id> | status <id> <status> | statuses]`)
}
