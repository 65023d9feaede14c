package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

// GetTxCmd returns the transaction commands for the reward vault module
func GetTxCmd() *cobra.Command {
	vaultTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Reward vault transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	vaultTxCmd.AddCommand(
		CmdDonateCollectible(),
		CmdDonateCollectibleBatch(),
	)

	return vaultTxCmd
}

// CmdDonateCollectible returns a CLI command handler for donating a collectible
func CmdDonateCollectible() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donate [class-id] [nft-id]",
		Short: "Donate a collectible into the reward vault",
		Long: `Donate a collectible you own into the reward vault's prize pool.

The collectible is transferred into vault custody and becomes eligible for
random selection as a migration reward. Donations are irrevocable.

Example:
  $ burrowd tx rewardvault donate burrow.heroes hero-42 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgDonateCollectible(
				clientCtx.GetFromAddress().String(),
				args[0],
				args[1],
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDonateCollectibleBatch returns a CLI command handler for donating several
// collectibles at once
func CmdDonateCollectibleBatch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donate-batch [class-ids] [nft-ids]",
		Short: "Donate several collectibles into the reward vault",
		Long: `Donate several collectibles in one transaction. Class and nft ids are
given as comma-separated lists of equal length; the batch is all-or-nothing.

Example:
  $ burrowd tx rewardvault donate-batch burrow.heroes,burrow.heroes hero-1,hero-2 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			classIDs := splitList(args[0])
			nftIDs := splitList(args[1])
			if len(classIDs) != len(nftIDs) {
				return fmt.Errorf("got %d class ids but %d nft ids", len(classIDs), len(nftIDs))
			}

			msg := types.NewMsgDonateCollectibleBatch(
				clientCtx.GetFromAddress().String(),
				classIDs,
				nftIDs,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
