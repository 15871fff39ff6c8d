package cli

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"

	"cybermem/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// An existing username is reported as a warning and leaves the credential
// store unchanged. Registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, common.ErrorUserExists):
			printlnFn("Username already exists")
		case errors.Is(err, common.ErrorInvalidLoginFormat):
			printlnFn("Username cannot be empty")
		default:
			printlnFn("Error:", err.Error())
			a.logger.Error(ctx, "registering user", "error", err.Error())
		}
		return err
	}

	printlnFn("User registered! Please log in now.")
	return nil
}

// Login prompts for credentials and, on success, opens a session carrying
// a fresh session ID and the username.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Authenticate(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Invalid username or password")
		} else {
			printlnFn("Error:", err.Error())
			a.logger.Error(ctx, "login failed", "error", err.Error())
		}
		return err
	}

	a.session = &Session{ID: uuid.NewString(), Username: username}
	a.logger.Info(ctx, "login", "session", a.session.ID, "user", username)
	printlnFn("Login successful!")
	return nil
}

// Logout closes the current session.
func (a *App) Logout(ctx context.Context) error {
	if a.session != nil {
		a.logger.Info(ctx, "logout", "session", a.session.ID)
	}
	a.session = nil
	return nil
}
