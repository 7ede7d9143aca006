package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// GetQueryCmd returns the cli query commands for the agentpay module
func GetQueryCmd() *cobra.Command {
	agentpayQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the agentpay module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	agentpayQueryCmd.AddCommand(
		CmdQueryParams(),
		CmdQueryListing(),
		CmdQueryTask(),
		CmdQueryTasks(),
		CmdQueryListings(),
		CmdSearchServices(),
		CmdQueryStats(),
	)

	return agentpayQueryCmd
}

// CmdQueryParams returns the command to query module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show the agentpay parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(cmd.Context(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryListing returns the command to query a service listing by address
func CmdQueryListing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing [address]",
		Short: "Show a service listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.ServiceListing(cmd.Context(), &types.QueryServiceListingRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTask returns the command to query a task request by address
func CmdQueryTask() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task [address]",
		Short: "Show a task request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TaskRequest(cmd.Context(), &types.QueryTaskRequestRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryTasks returns the command to list tasks by requester, provider or status
func CmdQueryTasks() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks by requester, provider or status",
		Long: `List task requests. Exactly one filter is used: --requester, then
--provider, then --status (open, submitted, completed, disputed, expired).

Example:
  $ agentpay query agentpay tasks --status submitted --limit 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}
			requester, _ := cmd.Flags().GetString(FlagRequester)
			provider, _ := cmd.Flags().GetString(FlagProvider)
			status, _ := cmd.Flags().GetString(FlagStatus)

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Tasks(cmd.Context(), &types.QueryTasksRequest{
				Requester:  requester,
				Provider:   provider,
				Status:     status,
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().String(FlagRequester, "", "Only tasks created by this address")
	cmd.Flags().String(FlagProvider, "", "Only tasks served by this provider")
	cmd.Flags().String(FlagStatus, "", "Only tasks in this status")
	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "tasks")
	return cmd
}

// CmdQueryListings returns the command to list a provider's service listings
func CmdQueryListings() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings [provider]",
		Short: "List the service listings registered by a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.ListingsByProvider(cmd.Context(), &types.QueryListingsByProviderRequest{
				Provider:   args[0],
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "listings")
	return cmd
}

// CmdSearchServices returns the command to search active listings
func CmdSearchServices() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search active listings, most completed tasks first",
		Long: `Search active service listings.

Example:
  $ agentpay query agentpay search --keyword translate --max-price 500 --min-completed 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			keyword, _ := cmd.Flags().GetString(FlagKeyword)
			maxPrice, _ := cmd.Flags().GetUint64(FlagMaxPrice)
			minCompleted, _ := cmd.Flags().GetUint64(FlagMinCompleted)
			limit, _ := cmd.Flags().GetUint32(FlagMaxResults)

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.SearchServices(cmd.Context(), &types.QuerySearchServicesRequest{
				Keyword:           keyword,
				MaxPrice:          maxPrice,
				MinTasksCompleted: minCompleted,
				Limit:             limit,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().String(FlagKeyword, "", "Case-insensitive substring of the description")
	cmd.Flags().Uint64(FlagMaxPrice, 0, "Highest price; 0 for any")
	cmd.Flags().Uint64(FlagMinCompleted, 0, "Minimum completed tasks")
	cmd.Flags().Uint32(FlagMaxResults, 0, "Maximum listings returned; 0 for the server cap")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryStats returns the command to show protocol statistics
func CmdQueryStats() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show listing, task and escrow totals and the top providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.ProtocolStats(cmd.Context(), &types.QueryProtocolStatsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
