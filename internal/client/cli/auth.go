package cli

import (
	"context"
	"fmt"
	"log"
)

// getSimpleText, getPassword and getList are indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getList       = GetList
)

// Resume restores the session saved by a previous run.
func (a *App) Resume(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.authService.Resume(ctx)
	if err := a.track(err); err != nil {
		return err
	}

	a.user = user
	log.Printf("Resumed session of %s", user.Username)
	return nil
}

// Login prompts for credentials and authenticates against the server.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.authService.Login(ctx, username, password)
	if err := a.track(err); err != nil {
		return err
	}

	a.user = user
	log.Printf("Login successful")
	return nil
}

// Verify re-checks the current token and prints the authenticated user.
func (a *App) Verify(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.authService.Verify(ctx)
	if err := a.track(err); err != nil {
		return err
	}

	a.user = user
	printUser(a.out, user)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()

	if err := a.track(a.authService.Ping(ctx)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}
