package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Username + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root resumes the saved session or asks for credentials, then runs the
// REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the users CLI (type 'help' for commands)")

	if err := a.Resume(ctx); err != nil {
		if err := a.Login(ctx); err != nil {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
