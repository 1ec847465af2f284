package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/habitkeeper/internal/client/config"
	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/services"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

type App struct {
	config *config.Config
	store  kvstore.Store
	log    logging.Logger

	accountService  services.AccountService
	profileService  services.ProfileService
	progressService services.ProgressService
	quoteService    services.QuoteService
	habitService    services.HabitService
	backupService   services.BackupService

	session services.Session
	reader  *bufio.Reader
	out     io.Writer
	colors  palette
}

// NewApp opens the configured store and builds an App reading from stdin
// and writing to stdout. Logs go to stderr.
func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	log, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	store, err := kvstore.Open(ctx, c.StoreDriver, c.StoreDSN)
	if err != nil {
		log.Error(ctx, "error opening store", "driver", c.StoreDriver, "error", err)
		return nil, err
	}

	return newApp(c, store, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, store kvstore.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		store:  store,
		log:    log,

		accountService:  services.NewAccountService(store, log, services.PasswordMode(c.PasswordMode)),
		profileService:  services.NewProfileService(store, log),
		progressService: services.NewProgressService(store, log),
		quoteService:    services.NewQuoteService(store, log),
		habitService:    services.NewHabitService(store, log),
		backupService:   services.NewBackupService(store, log),

		reader: bufio.NewReader(in),
		out:    out,
		colors: newPalette(c.NoColor),
	}
}

// Run restores the saved session, runs the REPL until exit or EOF and
// closes the store.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Warn(ctx, "error closing store", "error", err)
		}
	}()

	s, err := a.accountService.Current(ctx)
	if err != nil {
		return err
	}
	a.session = s

	fmt.Fprintln(a.out, a.colors.title.Sprint("Welcome to English with Tim"), "(type 'help' for commands)")
	if a.isLoggedIn() {
		a.log.Info(ctx, "session restored", "email", s.Email)
		if err := a.Dashboard(ctx); err != nil {
			printlnFn(errorMessage(err))
		}
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return !a.session.Anonymous()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Email)
}

func (a *App) today() string {
	return a.quoteService.Today()
}
