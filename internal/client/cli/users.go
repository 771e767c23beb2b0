package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/userdb/internal/client/client"
	"github.com/dmitrijs2005/userdb/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	users, err := a.client.ListUsers(ctx)
	a.track(err)
	if err != nil {
		a.report(err)
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users")
		return nil
	}

	a.printUsers(users...)
	return nil
}

func (a *App) Get(ctx context.Context, id string) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid id %q\n", id)
		return err
	}

	user, err := a.client.GetUser(ctx, n)
	a.track(err)
	if err != nil {
		a.report(err)
		return err
	}

	a.printUsers(*user)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	err := a.client.Ping(ctx)
	a.track(err)
	if err != nil {
		a.report(err)
		return err
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}

func (a *App) printUsers(users ...models.User) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.CreatedAt.Local().Format(time.DateTime))
	}
	_ = tw.Flush()
}

// report prints err in a form suitable for the terminal.
func (a *App) report(err error) {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Detail != "":
		fmt.Fprintln(a.out, "Error:", apiErr.Detail)
	case isUnavailable(err):
		fmt.Fprintln(a.out, "Server unavailable")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}

func isUnavailable(err error) bool {
	return errors.Is(err, client.ErrUnavailable)
}
