package cli

import (
	"context"
	"os"
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/dmitrijs2005/gophwallet/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, name and password and creates the account.
// The new session is kept, so the user is logged in afterwards.
func (a *App) Register(ctx context.Context) error {
	var in services.RegisterInput
	var err error

	if in.Username, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if in.FirstName, err = getSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if in.LastName, err = getSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Choose a password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	in.Password = string(password)

	s, err := a.authService.Register(ctx, in)
	if err != nil {
		return err
	}

	a.session = s
	printlnFn("Success! Your user id is", s.UserID)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		return err
	}

	a.session = s
	printlnFn("Login successful")
	return nil
}

// Logout forgets the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	printlnFn("Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	printlnFn(a.session.Username, "id:", a.session.UserID)
	return nil
}

// Profile prompts for new names and password. Empty answers keep the
// current value; changing the password ends the session.
func (a *App) Profile(ctx context.Context) error {
	var update models.ProfileUpdate

	first, err := getSimpleText(a.reader, "New first name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if first = strings.TrimSpace(first); first != "" {
		update.FirstName = &first
	}

	last, err := getSimpleText(a.reader, "New last name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if last = strings.TrimSpace(last); last != "" {
		update.LastName = &last
	}

	password, err := getPassword(os.Stdout, "New password (empty to keep)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) > 0 {
		pw := string(password)
		update.Password = &pw
	}

	if update.Empty() {
		printlnFn("Nothing to update")
		return nil
	}

	if err := a.authService.UpdateProfile(ctx, update); err != nil {
		return a.dropSessionOn(ctx, err)
	}

	if update.Password != nil {
		a.session = nil
		printlnFn("Password changed, please login again")
		return nil
	}
	printlnFn("Updated successfully")
	return nil
}
