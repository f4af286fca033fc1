package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

var errNotLoggedIn = errors.New("not logged in, use 'login' first")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

// Create prompts for a new user. An empty password lets the server
// generate a temporary one, which is printed once.
func (a *App) Create(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password (empty to generate)", a.out)
	if err != nil {
		return err
	}
	roles, err := getList(a.reader, "Roles, comma separated (empty for user)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	created, err := a.userService.Create(ctx, username, email, password, roles)
	if err := a.track(err); err != nil {
		return err
	}

	printUser(a.out, &created.UserProfile)
	if password == "" {
		fmt.Fprintf(a.out, "Temporary password: %s\n", created.Password)
	}
	return nil
}

// List prints one page of users. Optional args are page and limit.
func (a *App) List(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var page, limit int
	var err error
	if len(args) > 0 {
		if page, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid page %q", args[0])
		}
	}
	if len(args) > 1 {
		if limit, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid limit %q", args[1])
		}
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	list, err := a.userService.List(ctx, page, limit)
	if err := a.track(err); err != nil {
		return err
	}

	printUsers(a.out, list, a.isAdmin())
	return nil
}

func (a *App) Get(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.userService.Get(ctx, id)
	if err := a.track(err); err != nil {
		return err
	}
	printUser(a.out, user)
	return nil
}

// Meta prints the user together with the users it created.
func (a *App) Meta(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.userService.Meta(ctx, id)
	if err := a.track(err); err != nil {
		return err
	}
	printUser(a.out, user)
	printCreated(a.out, user.CreatorOf)
	return nil
}

func (a *App) Find(ctx context.Context, key string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.userService.Find(ctx, key)
	if err := a.track(err); err != nil {
		return err
	}
	printUser(a.out, user)
	return nil
}

func (a *App) Summary(ctx context.Context, ids []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	summaries, err := a.userService.Summaries(ctx, ids)
	if err := a.track(err); err != nil {
		return err
	}
	printSummaries(a.out, summaries)
	return nil
}

// Update prompts for the fields to change. Empty answers keep the current value.
func (a *App) Update(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var patch models.UserPatch

	username, err := getSimpleText(a.reader, "New username (empty to keep)", a.out)
	if err != nil {
		return err
	}
	patch.Username = optional(username)

	email, err := getSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}
	patch.Email = optional(email)

	password, err := getPassword("New password (empty to keep)", a.out)
	if err != nil {
		return err
	}
	patch.Password = optional(password)

	roles, err := getList(a.reader, "New roles, comma separated (empty to keep)", a.out)
	if err != nil {
		return err
	}
	for _, r := range roles {
		patch.Roles = append(patch.Roles, models.Role(r))
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.userService.Update(ctx, id, patch)
	if err := a.track(err); err != nil {
		return err
	}
	printUser(a.out, user)
	return nil
}

func (a *App) Remove(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.userService.Remove(ctx, id)
	if err := a.track(err); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s disabled\n", user.Username)
	return nil
}

func (a *App) Restore(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.userService.Restore(ctx, id)
	if err := a.track(err); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s enabled\n", user.Username)
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
