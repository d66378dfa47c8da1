package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/erazemk/gildedrose/internal/api"
	"github.com/erazemk/gildedrose/internal/config"
	"github.com/erazemk/gildedrose/internal/db"
	"github.com/erazemk/gildedrose/internal/imaging"
	"github.com/erazemk/gildedrose/internal/model"
	"github.com/erazemk/gildedrose/internal/rose"
	"github.com/erazemk/gildedrose/internal/store"
)

const usage = `Usage: gildedrose [command] [flags]

Commands:
  serve      run the HTTP API (default)
  init       create the database and admin account
  advance    age the stored inventory by -days days
  simulate   print the sample inventory for -days days (no database)

Flags:
  -d, -db <path>          SQLite database path (default: gildedrose.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -u, -user <name>        admin username on first run (default: Admin)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -n, -days <n>           days to advance or simulate (default: 1)
  -h, -help               show this help and exit

Flags default to GILDEDROSE_DB, GILDEDROSE_ADDR, GILDEDROSE_ADMIN and
GILDEDROSE_LOG when set.
`

type options struct {
	config.Config
	days int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cmd := "serve"
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	opts, err := parseFlags(cmd, args, cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	closeLog, err := setupLogger(opts.LogPath, slog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer closeLog()

	switch cmd {
	case "serve":
		err = cmdServe(opts, stdout)
	case "init":
		err = cmdInit(opts, stdout)
	case "advance":
		err = cmdAdvance(opts, stdout)
	case "simulate":
		cmdSimulate(opts.days, stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", cmd, usage)
		return 1
	}
	if err != nil {
		slog.Error(cmd+" failed", "error", err)
		return 1
	}
	return 0
}

func parseFlags(cmd string, args []string, cfg config.Config) (options, error) {
	opts := options{Config: cfg}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { fmt.Fprint(os.Stdout, usage) }

	fs.StringVar(&opts.DBPath, "db", cfg.DBPath, "")
	fs.StringVar(&opts.DBPath, "d", cfg.DBPath, "")
	fs.StringVar(&opts.Addr, "addr", cfg.Addr, "")
	fs.StringVar(&opts.Addr, "a", cfg.Addr, "")
	fs.StringVar(&opts.AdminUser, "user", cfg.AdminUser, "")
	fs.StringVar(&opts.AdminUser, "u", cfg.AdminUser, "")
	fs.StringVar(&opts.LogPath, "log", cfg.LogPath, "")
	fs.StringVar(&opts.LogPath, "l", cfg.LogPath, "")
	fs.IntVar(&opts.days, "days", 1, "")
	fs.IntVar(&opts.days, "n", 1, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
		}
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if opts.days < 0 {
		return opts, fmt.Errorf("days must not be negative, got %d", opts.days)
	}
	return opts, nil
}

func cmdInit(opts options, stdout io.Writer) error {
	if _, err := os.Stat(opts.DBPath); err == nil {
		return fmt.Errorf("database file %s already exists", opts.DBPath)
	}

	database, password, err := initDatabase(opts.DBPath, opts.AdminUser)
	if err != nil {
		return err
	}
	database.Close()

	printInitResult(stdout, opts.DBPath, opts.AdminUser, password)
	return nil
}

func cmdServe(opts options, stdout io.Writer) error {
	// Check if DB exists, auto-init if not.
	if _, err := os.Stat(opts.DBPath); os.IsNotExist(err) {
		database, password, err := initDatabase(opts.DBPath, opts.AdminUser)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		database.Close()

		printInitResult(stdout, opts.DBPath, opts.AdminUser, password)
		fmt.Fprintln(stdout)
	}

	database, err := openDatabase(opts.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	// Load JWT secret from database (auto-generated on first run).
	jwtSecret, err := store.GetJWTSecret(context.Background(), database)
	if err != nil {
		return fmt.Errorf("getting JWT secret: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(database, jwtSecret, imaging.NewProcessor(opts.ImageMaxDimension)))

	server := &http.Server{
		Addr:              opts.Addr,
		Handler:           api.LoggingMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", opts.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving: %w", err)
	}

	slog.Info("server stopped, closing database")
	return nil
}

func cmdAdvance(opts options, stdout io.Writer) error {
	if _, err := os.Stat(opts.DBPath); err != nil {
		return fmt.Errorf("database %s not found, run init first", opts.DBPath)
	}

	database, err := openDatabase(opts.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	report, err := store.AdvanceDays(context.Background(), database, opts.days, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "-------- day %d --------\n", report.ToDay)
	printStoredItems(stdout, report.Items)
	return nil
}

// cmdSimulate prints the sample inventory for day 0 through days, using
// only the in-memory rules.
func cmdSimulate(days int, stdout io.Writer) {
	items := rose.SampleInventory()
	for day := 0; day <= days; day++ {
		fmt.Fprintf(stdout, "-------- day %d --------\n", day)
		tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "name\tsellIn\tquality")
		for _, item := range items {
			fmt.Fprintf(tw, "%s\t%d\t%d\n", item.Name(), item.SellIn(), item.Quality())
		}
		tw.Flush()
		fmt.Fprintln(stdout)
		rose.AdvanceOneDay(items)
	}
}

func printStoredItems(stdout io.Writer, items []model.Item) {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tname\tcategory\tsellIn\tquality")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", item.ID, item.Name, item.Category, item.SellIn, item.Quality)
	}
	tw.Flush()
}

func openDatabase(path string) (*sql.DB, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	slog.Info("database ready", "path", path)
	return database, nil
}

// initDatabase creates a new database, runs migrations, and creates the admin user.
func initDatabase(path, adminUsername string) (*sql.DB, string, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening database: %w", err)
	}

	fail := func(step string, err error) (*sql.DB, string, error) {
		database.Close()
		os.Remove(path)
		return nil, "", fmt.Errorf("%s: %w", step, err)
	}

	if err := db.Migrate(database); err != nil {
		return fail("running migrations", err)
	}

	password, err := generatePassword(16)
	if err != nil {
		return fail("generating password", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fail("hashing password", err)
	}

	if _, err := store.CreateUser(context.Background(), database, adminUsername, string(hash), model.RoleAdmin); err != nil {
		return fail("creating admin user", err)
	}

	return database, password, nil
}

// printInitResult prints the database initialization result.
func printInitResult(w io.Writer, dbPath, username, password string) {
	fmt.Fprintf(w, "Database created: %s\n", dbPath)
	fmt.Fprintln(w, "Schema initialized.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Admin account created:")
	fmt.Fprintf(w, "  Username: %s\n", username)
	fmt.Fprintf(w, "  Password: %s\n", password)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Save this password, it cannot be recovered.")
	fmt.Fprintln(w, "The admin can change it after logging in.")
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
