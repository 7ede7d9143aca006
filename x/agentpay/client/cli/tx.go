package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// GetTxCmd returns the transaction commands for the agentpay module
func GetTxCmd() *cobra.Command {
	agentpayTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Agentpay transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	agentpayTxCmd.AddCommand(
		CmdRegisterService(),
		CmdDeactivateService(),
		CmdCreateTask(),
		CmdSubmitResult(),
		CmdSubmitResultZK(),
		CmdAcceptResult(),
		CmdDisputeTask(),
		CmdExpireTask(),
		CmdVerifyReputation(),
	)

	return agentpayTxCmd
}

// txCommand resolves the signer from --from, builds the message and hands it
// to the tx factory, which signs and broadcasts it or prints it with
// --generate-only.
func txCommand(cmd *cobra.Command, build func(cmd *cobra.Command, signer string, args []string) (sdk.Msg, error)) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		clientCtx, err := client.GetClientTxContext(cmd)
		if err != nil {
			return err
		}
		msg, err := build(cmd, clientCtx.GetFromAddress().String(), args)
		if err != nil {
			return err
		}
		return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRegisterService returns a CLI command for registering a service listing.
func CmdRegisterService() *cobra.Command {
	cmd := txCommand(&cobra.Command{
		Use:   "register-service [service-id-hex] [price]",
		Short: "Register a service listing",
		Long: `Register a service listing at the address derived from the signer and service id.

Example:
  $ agentpay tx agentpay register-service 00112233445566778899aabbccddeeff 1000 \
    --description "text summarization" --from provider`,
		Args: cobra.ExactArgs(2),
	}, func(cmd *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		serviceID, err := hex.DecodeString(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid service id: %w", err)
		}
		price, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price: %w", err)
		}
		desc, err := cmd.Flags().GetString(FlagDescription)
		if err != nil {
			return nil, err
		}
		minRep, err := cmd.Flags().GetUint64(FlagMinReputation)
		if err != nil {
			return nil, err
		}
		return &types.MsgRegisterService{
			Provider:      signer,
			ServiceID:     serviceID,
			Description:   desc,
			PriceLamports: price,
			MinReputation: minRep,
		}, nil
	})
	cmd.Flags().String(FlagDescription, "", "Listing description (at most 128 bytes)")
	cmd.Flags().Uint64(FlagMinReputation, 0, "Advertised minimum reputation")
	return cmd
}

// CmdDeactivateService returns a CLI command for deactivating a listing.
func CmdDeactivateService() *cobra.Command {
	return txCommand(&cobra.Command{
		Use:   "deactivate-service [listing]",
		Short: "Close a listing to new tasks",
		Args:  cobra.ExactArgs(1),
	}, func(_ *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		return &types.MsgDeactivateService{Provider: signer, ServiceListing: args[0]}, nil
	})
}

// CmdCreateTask returns a CLI command for creating an escrowed task.
func CmdCreateTask() *cobra.Command {
	cmd := txCommand(&cobra.Command{
		Use:   "create-task [listing] [task-id-hex] [deadline-unix]",
		Short: "Create a task and lock the listing price in escrow",
		Args:  cobra.ExactArgs(3),
	}, func(cmd *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		taskID, err := hex.DecodeString(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid task id: %w", err)
		}
		deadline, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline: %w", err)
		}
		desc, err := cmd.Flags().GetString(FlagDescription)
		if err != nil {
			return nil, err
		}
		maxPayment, err := cmd.Flags().GetUint64(FlagMaxPayment)
		if err != nil {
			return nil, err
		}
		return &types.MsgCreateTask{
			Requester:      signer,
			ServiceListing: args[0],
			TaskID:         taskID,
			Description:    desc,
			Deadline:       deadline,
			MaxPayment:     maxPayment,
		}, nil
	})
	cmd.Flags().String(FlagDescription, "", "Task description (at most 256 bytes)")
	cmd.Flags().Uint64(FlagMaxPayment, 0, "Highest acceptable price; 0 accepts the current price")
	return cmd
}

// CmdSubmitResult returns a CLI command for submitting an unverified result hash.
func CmdSubmitResult() *cobra.Command {
	return txCommand(&cobra.Command{
		Use:   "submit-result [task] [result-hash-hex]",
		Short: "Submit a result hash without a proof",
		Args:  cobra.ExactArgs(2),
	}, func(_ *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		hash, err := hex.DecodeString(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid result hash: %w", err)
		}
		return &types.MsgSubmitResult{Provider: signer, Task: args[0], ResultHash: hash}, nil
	})
}

// CmdSubmitResultZK returns a CLI command for submitting a proven result hash.
func CmdSubmitResultZK() *cobra.Command {
	return txCommand(&cobra.Command{
		Use:   "submit-result-zk [task] [proof-file]",
		Short: "Submit a result hash with a proof from 'zk prove-result'",
		Args:  cobra.ExactArgs(2),
	}, func(_ *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		f, err := ReadProofFile(args[1])
		if err != nil {
			return nil, err
		}
		if len(f.PublicInputs) != 1 {
			return nil, fmt.Errorf("result proof needs 1 public input, file has %d", len(f.PublicInputs))
		}
		return &types.MsgSubmitResultZK{
			Provider:   signer,
			Task:       args[0],
			ResultHash: f.PublicInputs[0],
			ProofA:     f.A,
			ProofB:     f.B,
			ProofC:     f.C,
		}, nil
	})
}

// CmdAcceptResult returns a CLI command for accepting a submitted result.
func CmdAcceptResult() *cobra.Command {
	return txCommand(&cobra.Command{
		Use:   "accept-result [task] [listing]",
		Short: "Accept a submitted result and pay the provider",
		Args:  cobra.ExactArgs(2),
	}, func(_ *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		return &types.MsgAcceptResult{Requester: signer, Task: args[0], ServiceListing: args[1]}, nil
	})
}

// CmdDisputeTask returns a CLI command for disputing a submitted result.
func CmdDisputeTask() *cobra.Command {
	return txCommand(&cobra.Command{
		Use:   "dispute-task [task]",
		Short: "Reject a submitted result and refund the escrow",
		Args:  cobra.ExactArgs(1),
	}, func(_ *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		return &types.MsgDisputeTask{Requester: signer, Task: args[0]}, nil
	})
}

// CmdExpireTask returns a CLI command for expiring an overdue task.
func CmdExpireTask() *cobra.Command {
	return txCommand(&cobra.Command{
		Use:   "expire-task [task]",
		Short: "Refund an open task whose deadline has passed",
		Args:  cobra.ExactArgs(1),
	}, func(_ *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		return &types.MsgExpireTask{Caller: signer, Task: args[0]}, nil
	})
}

// CmdVerifyReputation returns a CLI command for checking a reputation proof.
func CmdVerifyReputation() *cobra.Command {
	return txCommand(&cobra.Command{
		Use:   "verify-reputation [listing] [proof-file]",
		Short: "Check a proof from 'zk prove-reputation' against a listing",
		Args:  cobra.ExactArgs(2),
	}, func(_ *cobra.Command, signer string, args []string) (sdk.Msg, error) {
		f, err := ReadProofFile(args[1])
		if err != nil {
			return nil, err
		}
		if len(f.PublicInputs) != 2 {
			return nil, fmt.Errorf("reputation proof needs 2 public inputs, file has %d", len(f.PublicInputs))
		}
		return &types.MsgVerifyReputation{
			Caller:             signer,
			ServiceListing:     args[0],
			Threshold:          f.Threshold,
			ProviderCommitment: f.PublicInputs[1],
			ProofA:             f.A,
			ProofB:             f.B,
			ProofC:             f.C,
		}, nil
	})
}
