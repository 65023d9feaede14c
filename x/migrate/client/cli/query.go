package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// GetQueryCmd returns the cli query commands for the migrate module
func GetQueryCmd() *cobra.Command {
	migrateQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the migrate module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	migrateQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPosition(),
		GetCmdQueryPositions(),
		GetCmdQueryMinimumDeposit(),
		GetCmdQueryMinimumDeposits(),
		GetCmdQueryRequestRoute(),
	)

	return migrateQueryCmd
}

// printJSON renders a query response as indented JSON.
func printJSON(clientCtx client.Context, res interface{}) error {
	bz, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current migrate module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPosition returns the command to query a single position
func GetCmdQueryPosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position [account] [denom]",
		Short: "Query a yield position by account and denom",
		Long: `Query a single yield position.

Example:
  $ burrowd query migrate position burrow1abc... uatom`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return fmt.Errorf("invalid account address %s: %w", args[0], err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Position(context.Background(), &types.QueryPositionRequest{
				Account: args[0],
				Denom:   args[1],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPositions returns the command to query all positions of an account
func GetCmdQueryPositions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "positions [account]",
		Short: "Query all yield positions of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return fmt.Errorf("invalid account address %s: %w", args[0], err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Positions(context.Background(), &types.QueryPositionsRequest{
				Account: args[0],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryMinimumDeposit returns the command to query a denom's minimum deposit
func GetCmdQueryMinimumDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minimum-deposit [denom]",
		Short: "Query the minimum deposit configured for a denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.MinimumDeposit(context.Background(), &types.QueryMinimumDepositRequest{
				Denom: args[0],
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryMinimumDeposits returns the command to query all configured minimums
func GetCmdQueryMinimumDeposits() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minimum-deposits",
		Short: "Query all configured minimum deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.MinimumDeposits(context.Background(), &types.QueryMinimumDepositsRequest{})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequestRoute returns the command to query an outstanding randomness request
func GetCmdQueryRequestRoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-route [request-id]",
		Short: "Query an outstanding randomness request route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			requestID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid request id %s: %w", args[0], err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.RequestRoute(context.Background(), &types.QueryRequestRouteRequest{
				RequestId: requestID,
			})
			if err != nil {
				return err
			}

			return printJSON(clientCtx, res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
