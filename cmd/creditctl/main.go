// creditctl builds call payloads for the offset registry contract and quotes
// purchase costs offline, sharing the exact fee math the contract runs.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"offset_registry/contract/registry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "creditctl",
		Short:         "payload builder and fee calculator for the offset registry contract",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to creditctl.toml (default ~/.creditctl.toml)")

	root.AddCommand(
		newPayloadCmd(),
		newQuoteCmd(&cfgPath),
	)
	return root
}

func newPayloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "print the pipe-delimited payload for a contract call",
	}

	var name string
	var total, price int64
	register := &cobra.Command{
		Use:   "register",
		Short: "payload for project_register",
		RunE: func(c *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			fmt.Printf("%s|%d|%d\n", name, total, price)
			return nil
		},
	}
	register.Flags().StringVar(&name, "name", "", "project display name")
	register.Flags().Int64Var(&total, "total", 0, "total credits to issue")
	register.Flags().Int64Var(&price, "price", 0, "price per credit in base units")

	var updID uint64
	update := &cobra.Command{
		Use:   "update",
		Short: "payload for project_update",
		RunE: func(c *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			fmt.Printf("%d|%s|%d|%d\n", updID, name, total, price)
			return nil
		},
	}
	update.Flags().Uint64Var(&updID, "id", 0, "project id")
	update.Flags().StringVar(&name, "name", "", "project display name")
	update.Flags().Int64Var(&total, "total", 0, "total credits to issue")
	update.Flags().Int64Var(&price, "price", 0, "price per credit in base units")

	var projectID uint64
	var amount int64
	purchase := &cobra.Command{
		Use:   "purchase",
		Short: "payload for credits_purchase",
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Printf("%d|%d\n", projectID, amount)
			return nil
		},
	}
	purchase.Flags().Uint64Var(&projectID, "project", 0, "project id")
	purchase.Flags().Int64Var(&amount, "amount", 0, "credit amount")

	retire := &cobra.Command{
		Use:   "retire",
		Short: "payload for credits_retire",
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Printf("%d|%d\n", projectID, amount)
			return nil
		},
	}
	retire.Flags().Uint64Var(&projectID, "project", 0, "project id")
	retire.Flags().Int64Var(&amount, "amount", 0, "credit amount")

	var recipient string
	transfer := &cobra.Command{
		Use:   "transfer",
		Short: "payload for credits_transfer",
		RunE: func(c *cobra.Command, args []string) error {
			if recipient == "" {
				return fmt.Errorf("--to is required")
			}
			fmt.Printf("%s|%d|%d\n", recipient, projectID, amount)
			return nil
		},
	}
	transfer.Flags().StringVar(&recipient, "to", "", "recipient address (like hive:alice)")
	transfer.Flags().Uint64Var(&projectID, "project", 0, "project id")
	transfer.Flags().Int64Var(&amount, "amount", 0, "credit amount")

	var description string
	proposal := &cobra.Command{
		Use:   "proposal",
		Short: "payload for proposal_create",
		RunE: func(c *cobra.Command, args []string) error {
			description = strings.TrimSpace(description)
			if description == "" {
				return fmt.Errorf("--description is required")
			}
			fmt.Println(description)
			return nil
		},
	}
	proposal.Flags().StringVar(&description, "description", "", "proposal description")

	var proposalID uint64
	var support bool
	vote := &cobra.Command{
		Use:   "vote",
		Short: "payload for proposal_vote",
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Printf("%d|%t\n", proposalID, support)
			return nil
		},
	}
	vote.Flags().Uint64Var(&proposalID, "proposal", 0, "proposal id")
	vote.Flags().BoolVar(&support, "support", true, "vote in favor")

	var badge string
	var threshold uint64
	badgeCmd := &cobra.Command{
		Use:   "badge-threshold",
		Short: "payload for config_set_badge_threshold",
		RunE: func(c *cobra.Command, args []string) error {
			if badge != registry.BadgeContributor && badge != registry.BadgeChampion {
				return fmt.Errorf("badge must be %s or %s", registry.BadgeContributor, registry.BadgeChampion)
			}
			fmt.Printf("%s|%d\n", badge, threshold)
			return nil
		},
	}
	badgeCmd.Flags().StringVar(&badge, "badge", "", "badge tier name")
	badgeCmd.Flags().Uint64Var(&threshold, "threshold", 0, "point threshold")

	cmd.AddCommand(register, update, purchase, retire, transfer, proposal, vote, badgeCmd)
	return cmd
}

func newQuoteCmd(cfgPath *string) *cobra.Command {
	var amount, price int64
	var feeBps uint64

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "compute total price and fee split for a purchase",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if !c.Flags().Changed("fee-bps") {
				feeBps = cfg.FeeBps
			}
			if feeBps > registry.BpsDenominator {
				return fmt.Errorf("fee bps must not exceed %d", registry.BpsDenominator)
			}

			total, err := registry.TotalPrice(registry.Amount(amount), registry.Amount(price))
			if err != nil {
				return fmt.Errorf("quote: %w", err)
			}
			fee, toOwner := registry.SplitFee(total, feeBps)
			fmt.Printf("total:    %d %s\n", total, cfg.Asset)
			fmt.Printf("fee:      %d (%d bps)\n", fee, feeBps)
			fmt.Printf("to owner: %d\n", toOwner)
			return nil
		},
	}
	cmd.Flags().Int64Var(&amount, "amount", 0, "credit amount")
	cmd.Flags().Int64Var(&price, "price", 0, "price per credit in base units")
	cmd.Flags().Uint64Var(&feeBps, "fee-bps", 0, "override the configured fee bps")
	return cmd
}
