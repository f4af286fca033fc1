package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/usersvc/internal/client/client"
	"github.com/dmitrijs2005/usersvc/internal/client/config"
	"github.com/dmitrijs2005/usersvc/internal/client/services"
	"github.com/dmitrijs2005/usersvc/internal/filex"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	userService services.UserService
	user        *models.UserProfile
	Mode        Mode
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	sessionFile, err := filex.EnsureParentDir(c.SessionFile)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, sessionFile)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewUsersClientService(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, db)
	us := services.NewUserService(apiClient)

	return &App{
		config:      c,
		authService: as,
		userService: us,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// track updates the connectivity mode from the outcome of a server call.
func (a *App) track(err error) error {
	switch {
	case err == nil:
		a.setMode(ModeOnline)
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
	}
	return err
}

// call bounds ctx by the configured request timeout.
func (a *App) call(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) isAdmin() bool {
	return a.user != nil && models.HasRoles(a.user.Roles, models.RoleAdmin)
}
