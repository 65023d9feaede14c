package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

// GetQueryCmd returns the cli query commands for the reward vault module
func GetQueryCmd() *cobra.Command {
	vaultQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the reward vault module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	vaultQueryCmd.AddCommand(
		GetCmdQueryCollectibles(),
		GetCmdQueryUnclaimedCount(),
	)

	return vaultQueryCmd
}

func printJSON(clientCtx client.Context, res interface{}) error {
	bz, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

// GetCmdQueryCollectibles returns the command to query vault collectibles
func GetCmdQueryCollectibles() *cobra.Command {
	var unclaimedOnly bool

	cmd := &cobra.Command{
		Use:   "collectibles",
		Short: "Query the collectibles held by the reward vault",
		Long: `Query all collectibles donated to the reward vault.

Example:
  $ burrowd query rewardvault collectibles
  $ burrowd query rewardvault collectibles --unclaimed-only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Collectibles(context.Background(), &types.QueryCollectiblesRequest{
				UnclaimedOnly: unclaimedOnly,
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	cmd.Flags().BoolVar(&unclaimedOnly, "unclaimed-only", false, "Only list collectibles still available for selection")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryUnclaimedCount returns the command to query vault counters
func GetCmdQueryUnclaimedCount() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unclaimed-count",
		Short: "Query the number of unclaimed collectibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.UnclaimedCount(context.Background(), &types.QueryUnclaimedCountRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
