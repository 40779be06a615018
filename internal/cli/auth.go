package cli

import (
	"context"
	"fmt"
)

const maxLoginAttempts = 3

// login runs the gate: up to maxLoginAttempts tries, no session beyond the
// in-memory username.
func (a *App) login(ctx context.Context) bool {
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		username, err := GetSimpleText(a.reader, "Username", a.out)
		if err != nil {
			return false
		}
		pw, err := GetPassword(a.out)
		if err != nil {
			return false
		}

		ok, err := a.auth.Authenticate(ctx, username, string(pw))
		if err != nil {
			a.log.Error(ctx, "authentication failed", "error", err)
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
			continue
		}
		if ok {
			a.userName = username
			fmt.Fprintf(a.out, "Welcome, %s.\n", username)
			return true
		}
		fmt.Fprintln(a.out, "Invalid username or password.")
	}
	fmt.Fprintln(a.out, "Too many failed attempts.")
	return false
}

// addUser registers another login credential.
func (a *App) addUser(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return
	}
	pw, err := GetPassword(a.out)
	if err != nil {
		return
	}

	if _, err := a.auth.Register(ctx, username, string(pw)); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "User '%s' added.\n", username)
}
