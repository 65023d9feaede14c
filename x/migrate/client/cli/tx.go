package cli

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// GetTxCmd returns the transaction commands for the migrate module
func GetTxCmd() *cobra.Command {
	migrateTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Migrate transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	migrateTxCmd.AddCommand(
		CmdMigratePosition(),
		CmdClaimPosition(),
		CmdFulfillRandomness(),
		CmdSetMinimumDeposit(),
	)

	return migrateTxCmd
}

// CmdMigratePosition returns a CLI command handler for opening a yield position
func CmdMigratePosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate-position [denom] [amount]",
		Short: "Commit an asset into a yield-bearing position",
		Long: `Commit an amount of a supported asset into a custodial yield position.

The asset is deposited with the lending pool and the position is credited with
the observed receipt balance. The deposit also enters you into a random
collectible reward draw. The position unlocks after the cooldown period.

Example:
  $ burrowd tx migrate migrate-position uatom 5000000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			denom := args[0]
			if denom == "" {
				return fmt.Errorf("denom cannot be empty")
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount %s: must be a positive integer", args[1])
			}

			msg := types.NewMsgMigratePosition(
				clientCtx.GetFromAddress().String(),
				denom,
				amount,
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

// CmdClaimPosition returns a CLI command handler for withdrawing a matured position
func CmdClaimPosition() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-position [denom]",
		Short: "Withdraw a matured yield position",
		Long: `Withdraw the receipt balance of a position after its cooldown has elapsed.

Example:
  $ burrowd tx migrate claim-position uatom --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgClaimPosition(
				clientCtx.GetFromAddress().String(),
				args[0],
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

// CmdFulfillRandomness returns a CLI command handler for delivering a
// randomness fulfillment (oracle operators only)
func CmdFulfillRandomness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill-randomness [request-id] [random-words]",
		Short: "Deliver random words for an outstanding request (oracle only)",
		Long: `Deliver the random words answering an outstanding randomness request.

Only the configured oracle account is authorized. Random words are given as a
comma-separated list of unsigned integers.

Example:
  $ burrowd tx migrate fulfill-randomness 42 17446744073709551615,123456789 --from oracle-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			requestID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid request id %s: %w", args[0], err)
			}

			parts := strings.Split(args[1], ",")
			randomWords := make([]uint64, 0, len(parts))
			for _, part := range parts {
				word, err := cast.ToUint64E(strings.TrimSpace(part))
				if err != nil {
					return fmt.Errorf("invalid random word %s: %w", part, err)
				}
				randomWords = append(randomWords, word)
			}

			msg := types.NewMsgFulfillRandomness(
				clientCtx.GetFromAddress().String(),
				requestID,
				randomWords,
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

// CmdSetMinimumDeposit returns a CLI command handler for configuring a
// supported denom (authority only)
func CmdSetMinimumDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-minimum-deposit [denom] [minimum]",
		Short: "Configure the minimum deposit for a denom (authority only)",
		Long: `Configure the minimum deposit for a denom, enabling it for migration.

A minimum of zero disables the denom.

Example:
  $ burrowd tx migrate set-minimum-deposit uatom 1000000 --from authority-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			minimum, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid minimum %s: must be a non-negative integer", args[1])
			}

			msg := types.NewMsgSetMinimumDeposit(
				clientCtx.GetFromAddress().String(),
				args[0],
				minimum,
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
