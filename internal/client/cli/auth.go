package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/univerp/authd/internal/client/client"
	"github.com/univerp/authd/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for a username and password and tries to
// authenticate against the server.
//
// On success the returned identity is stored on the App and the session
// token is kept by the underlying client for subsequent calls. Failed
// attempts are reported to the user with the message from the server,
// which includes the attempt counter or the remaining lockout time.
// If the server is unreachable (errors.Is(err, client.ErrUnavailable)),
// a short hint is printed instead of the raw transport error.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	ident, err := a.service.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
			return err
		}
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.identity = ident
	log.Printf("Logged in as %s (%s)", ident.Username, ident.Role)
	return nil
}

// Logout drops the current session token and clears the cached identity.
func (a *App) Logout(ctx context.Context) error {
	a.service.Logout()
	a.identity = nil
	return nil
}

// ChangePassword prompts for the current and a new password (with
// confirmation) and submits the change for the logged-in user.
//
// Both password byte slices are securely wiped before returning.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword("Enter current password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(oldPassword)

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(newPassword)

	confirm, err := getPassword("Repeat new password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(confirm)

	if string(newPassword) != string(confirm) {
		log.Printf("Passwords do not match")
		return errors.New("passwords do not match")
	}

	if err := a.service.ChangePassword(ctx, string(oldPassword), string(newPassword)); err != nil {
		log.Printf("Password change unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Password changed!")
	return nil
}
