package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/univerp/authd/internal/shared"
)

// Register prompts for a username, password and role and creates a new
// account via the service. The server accepts this call only from an
// administrator session.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Enter role (ADMIN, STUDENT, INSTRUCTOR)", os.Stdout)
	if err != nil {
		return err
	}

	userID, err := a.service.RegisterUser(ctx, userName, string(password), role)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Created user %s (%s)\n", userName, userID)
	return nil
}

// Maintenance handles the "maintenance" command. Without arguments it
// prints the current maintenance state; with "on" or "off" it updates it.
func (a *App) Maintenance(ctx context.Context, args []string) error {
	if len(args) == 0 {
		on, err := a.service.MaintenanceOn(ctx)
		if err != nil {
			log.Printf("Request unsuccessful: %s", err.Error())
			return err
		}
		if on {
			fmt.Println("Maintenance mode is ON")
		} else {
			fmt.Println("Maintenance mode is OFF")
		}
		return nil
	}

	var on bool
	switch args[0] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		fmt.Println("Usage: maintenance [on|off]")
		return errors.New("invalid maintenance argument")
	}

	if err := a.service.SetMaintenanceMode(ctx, on); err != nil {
		log.Printf("Request unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Done!")
	return nil
}
