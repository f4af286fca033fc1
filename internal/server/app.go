// Package server initializes and runs the users service: it opens the
// database, applies migrations, bootstraps the admin account, wires the
// services and serves them over gRPC until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/usersvc/internal/logging"
	"github.com/dmitrijs2005/usersvc/internal/server/auth"
	"github.com/dmitrijs2005/usersvc/internal/server/config"
	"github.com/dmitrijs2005/usersvc/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/usersvc/internal/server/services"

	gs "github.com/dmitrijs2005/usersvc/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService *services.AuthService
	userService *services.UserService
}

// NewApp opens the store and builds the services. The returned App owns the
// database handle and closes it when Run returns.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel)

	db, err := sql.Open(repomanager.DriverName, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	app, err := newApp(ctx, c, logger, db, repomanager.NewPostgresRepositoryManager())
	if err != nil {
		db.Close()
		return nil, err
	}

	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, m repomanager.RepositoryManager) (*App, error) {
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	logger.Info(ctx, "Connected to the database, schema is up to date")

	hasher := auth.NewBcryptHasher(c.BcryptCost)
	tokens := auth.NewTokenCodec([]byte(c.SecretKey), c.AccessTokenValidityDuration)

	as := services.NewAuthService(db, m, tokens, hasher, logger.With("module", "auth_service"))
	us := services.NewUserService(db, m, hasher, logger.With("module", "user_service"))

	app := &App{config: c, logger: logger, db: db, authService: as, userService: us}

	if err := app.bootstrapAdmin(ctx); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *App) bootstrapAdmin(ctx context.Context) error {
	c := app.config
	if c.BootstrapAdminUsername == "" {
		return nil
	}

	u, err := app.userService.Bootstrap(ctx, c.BootstrapAdminUsername, c.BootstrapAdminEmail, c.BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin error: %w", err)
	}
	if u != nil && c.BootstrapAdminPassword == "" {
		app.logger.Warn(ctx, "bootstrap admin created with a temporary password", "username", u.Username, "password", u.Password)
	}

	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.userService, app.config.DefaultPageLimit)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal is received.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
