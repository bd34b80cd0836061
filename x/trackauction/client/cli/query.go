package cli

import (
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

const (
	flagFinished   = "finished"
	flagStartAfter = "start-after"
	flagLimit      = "limit"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd() *cobra.Command {
	// Group track auction queries under a subcommand
	// nolint: exhaustruct
	auctionQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	auctionQueryCmd.AddCommand([]*cobra.Command{
		GetCmdConfig(),
		GetCmdAuction(),
		GetCmdAuctions(),
	}...)

	return auctionQueryCmd
}

// GetCmdConfig fetches the module configuration
func GetCmdConfig() *cobra.Command {
	// nolint: exhaustruct
	cmd := &cobra.Command{
		Use:   "config",
		Args:  cobra.NoArgs,
		Short: "Fetch the track auction module configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryConfigRoute)
			res, _, err := clientCtx.QueryWithData(route, nil)
			if err != nil {
				return err
			}

			var response types.QueryConfigResponse
			if err := types.ModuleCdc.UnmarshalJSON(res, &response); err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(response)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdAuction fetches an auction with the given id, active or finished
func GetCmdAuction() *cobra.Command {
	// nolint: exhaustruct
	cmd := &cobra.Command{
		Use:   "auction [id]",
		Args:  cobra.ExactArgs(1),
		Short: "Fetch the auction with the given id",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errorsmod.Wrap(err, "Invalid query id")
			}

			params := types.QueryAuctionRequest{AuctionId: id}
			bz, err := types.ModuleCdc.MarshalJSON(params)
			if err != nil {
				return err
			}

			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryAuctionRoute)
			res, _, err := clientCtx.QueryWithData(route, bz)
			if err != nil {
				return err
			}

			var response types.QueryAuctionResponse
			if err := types.ModuleCdc.UnmarshalJSON(res, &response); err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(response)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdAuctions lists a page of auctions, active by default
func GetCmdAuctions() *cobra.Command {
	// nolint: exhaustruct
	cmd := &cobra.Command{
		Use:   "auctions",
		Args:  cobra.NoArgs,
		Short: "List auctions in ascending id order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			finished, err := cmd.Flags().GetBool(flagFinished)
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetUint64(flagLimit)
			if err != nil {
				return err
			}

			var startAfter *uint64
			if cmd.Flags().Changed(flagStartAfter) {
				after, err := cmd.Flags().GetUint64(flagStartAfter)
				if err != nil {
					return err
				}
				startAfter = &after
			}

			params := types.QueryAuctionsRequest{
				Active:     !finished,
				StartAfter: startAfter,
				Limit:      limit,
			}
			bz, err := types.ModuleCdc.MarshalJSON(params)
			if err != nil {
				return err
			}

			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryAuctionsRoute)
			res, _, err := clientCtx.QueryWithData(route, bz)
			if err != nil {
				return err
			}

			var response types.QueryAuctionsResponse
			if err := types.ModuleCdc.UnmarshalJSON(res, &response); err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(response)
		},
	}

	cmd.Flags().Bool(flagFinished, false, "List finished auctions instead of active ones")
	cmd.Flags().Uint64(flagStartAfter, 0, "Exclusive auction id cursor to page from")
	cmd.Flags().Uint64(flagLimit, 0, "Page size, capped by the module maximum")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
