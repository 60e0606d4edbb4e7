package cmd

import (
	"fmt"

	"github.com/theirongolddev/eatsplit/internal/cli"
	"github.com/theirongolddev/eatsplit/internal/config"
	"github.com/theirongolddev/eatsplit/internal/roster"

	"github.com/spf13/cobra"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List the starting roster and balances",
	RunE:  runFriends,
}

func init() {
	rootCmd.AddCommand(friendsCmd)
}

func runFriends(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	friends, err := config.SeedFriends(cfg)
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}

	if len(friends) == 0 {
		fmt.Println("\n  No friends configured. Run `eatsplit` and press a to add one.")
		return nil
	}

	store := roster.NewStore(friends)
	owed, owing := store.Totals()

	t := cli.Table{
		Title:     "Friends",
		Headers:   []string{"Name", "Balance", "Status"},
		LeftAlign: map[int]bool{0: true, 2: true},
	}
	for _, f := range store.Friends() {
		t.Rows = append(t.Rows, []string{f.Name, cli.FormatBalance(f.Balance), cli.BalanceMessage(f)})
		t.RowStyles = append(t.RowStyles, cli.StandingStyle(f.Standing()))
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	fmt.Printf("\n  %s · owed $%s · owing $%s\n\n",
		cli.Plural(store.Len(), "friend"),
		cli.FormatAmount(owed),
		cli.FormatAmount(owing),
	)
	return nil
}
