package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdb/internal/common"
)

// Register prompts for username, email and password and creates the account.
// The password buffer is zeroed before returning, whatever the outcome.
func (a *App) Register(ctx context.Context) error {
	userName, err := askLine(a.reader, a.out, "User name")
	if err != nil {
		return err
	}

	email, err := askLine(a.reader, a.out, "Email")
	if err != nil {
		return err
	}

	password, err := askPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.client.Register(ctx, userName, email, password)
	a.track(err)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// Login prompts for credentials and checks them against the server. On
// success the user name is shown in the prompt.
func (a *App) Login(ctx context.Context) error {
	userName, err := askLine(a.reader, a.out, "User name")
	if err != nil {
		return err
	}

	password, err := askPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.client.Login(ctx, userName, password)
	a.track(err)
	if err != nil {
		a.report(err)
		return err
	}

	a.userName = userName
	fmt.Fprintln(a.out, msg)
	return nil
}
