package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) Balance(ctx context.Context) error {
	b, err := a.walletService.Balance(ctx)
	if err != nil {
		return a.dropSessionOn(ctx, err)
	}
	printlnFn("Balance:", b)
	return nil
}

// Find lists users whose name or email contains the given text.
func (a *App) Find(ctx context.Context, args []string) error {
	filter := strings.Join(args, " ")
	if filter == "" {
		var err error
		if filter, err = getSimpleText(a.reader, "Search (name or email, empty for all)", os.Stdout); err != nil {
			return err
		}
	}

	users, err := a.walletService.FindUsers(ctx, filter)
	if err != nil {
		return a.dropSessionOn(ctx, err)
	}
	if len(users) == 0 {
		printlnFn("No users found")
		return nil
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%s  %s <%s>", u.Id, u.DisplayName(), u.Username))
	}
	return nil
}

// Transfer sends money: "transfer <userId> <amount>", prompting for
// whatever is missing.
func (a *App) Transfer(ctx context.Context, args []string) error {
	var to, amount string
	var err error

	if len(args) > 0 {
		to = args[0]
	} else if to, err = getSimpleText(a.reader, "Recipient user id", os.Stdout); err != nil {
		return err
	}

	if len(args) > 1 {
		amount = args[1]
	} else if amount, err = getSimpleText(a.reader, "Amount", os.Stdout); err != nil {
		return err
	}

	if err := a.walletService.Transfer(ctx, to, amount); err != nil {
		return a.dropSessionOn(ctx, err)
	}
	printlnFn("Transfer successful")
	return nil
}
