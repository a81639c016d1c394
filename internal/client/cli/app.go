// Package cli implements the interactive command line client for the
// authentication service. It provides a small REPL with commands for
// logging in, changing the password and administrative maintenance tasks.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/univerp/authd/internal/client/client"
	"github.com/univerp/authd/internal/client/config"
)

// Service is the command surface the CLI needs from the API client.
// The real GRPCClient satisfies this interface; tests provide fakes.
type Service interface {
	Login(ctx context.Context, username, password string) (*client.Identity, error)
	Logout()
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	RegisterUser(ctx context.Context, username, password, role string) (string, error)
	SetMaintenanceMode(ctx context.Context, on bool) error
	MaintenanceOn(ctx context.Context) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config   *config.Config
	service  Service
	identity *client.Identity
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerAddr)
	if err != nil {
		return nil, err
	}
	return &App{config: c, service: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.service.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}
