package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/circuits"
	"github.com/agentpay-chain/agentpay/x/agentpay/setup"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// GetZKCmd returns the offline proving tools: key setup, proof generation,
// local verification and hashing.
func GetZKCmd() *cobra.Command {
	zkCmd := &cobra.Command{
		Use:   "zk",
		Short: "Groth16 key setup, proving and verification",
	}
	zkCmd.PersistentFlags().String(FlagKeysDir, "keys", "Directory holding circuit keys")
	zkCmd.PersistentFlags().String(FlagKeyPassword, "", "Password sealing proving keys at rest; empty stores them in the clear")

	zkCmd.AddCommand(
		CmdZKSetup(),
		CmdZKProveResult(),
		CmdZKProveReputation(),
		CmdZKVerify(),
		CmdZKHashResult(),
	)
	return zkCmd
}

func keyGenerator(cmd *cobra.Command) (*setup.KeyGenerator, error) {
	dir, err := cmd.Flags().GetString(FlagKeysDir)
	if err != nil {
		return nil, err
	}
	password, err := cmd.Flags().GetString(FlagKeyPassword)
	if err != nil {
		return nil, err
	}
	storage, err := setup.NewFileKeyStorage(dir)
	if err != nil {
		return nil, err
	}
	var pw []byte
	if password != "" {
		pw = []byte(password)
	}
	return setup.NewKeyGenerator(storage, pw), nil
}

// CmdZKSetup generates key pairs for one or all circuits.
func CmdZKSetup() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run a single-party Groth16 setup (development networks only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kg, err := keyGenerator(cmd)
			if err != nil {
				return err
			}
			circuit, err := cmd.Flags().GetString(FlagCircuit)
			if err != nil {
				return err
			}
			names := setup.CircuitNames
			if circuit != "" {
				names = []string{circuit}
			}

			var all []*setup.KeyMetadata
			for _, name := range names {
				meta, err := kg.GenerateKeys(cmd.Context(), name)
				if err != nil {
					return err
				}
				all = append(all, meta)
			}
			return writeJSONOut(cmd, all)
		},
	}
	cmd.Flags().String(FlagCircuit, "", "Circuit to set up; empty sets up every circuit")
	return cmd
}

// CmdZKProveResult proves knowledge of a result's preimage.
func CmdZKProveResult() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prove-result [result-file]",
		Short: "Prove knowledge of the preimage of a result hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			kg, err := keyGenerator(cmd)
			if err != nil {
				return err
			}
			prover, err := kg.LoadProver(cmd.Context(), circuits.ResultCircuitName)
			if err != nil {
				return err
			}
			proof, hash, err := setup.ProveResult(prover, result)
			if err != nil {
				return err
			}
			return emitProof(cmd, NewProofFile(circuits.ResultCircuitName, proof, hash))
		},
	}
	cmd.Flags().String(FlagOutput, "", "Write the proof file here instead of stdout")
	return cmd
}

// CmdZKProveReputation proves a committed score meets a threshold.
func CmdZKProveReputation() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prove-reputation",
		Short: "Prove a committed reputation score meets a threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			threshold, err := cmd.Flags().GetUint64(FlagThreshold)
			if err != nil {
				return err
			}
			score, err := cmd.Flags().GetUint64(FlagScore)
			if err != nil {
				return err
			}
			saltHex, err := cmd.Flags().GetString(FlagSalt)
			if err != nil {
				return err
			}
			salt, err := hex.DecodeString(saltHex)
			if err != nil || len(salt) == 0 {
				return fmt.Errorf("salt must be non-empty hex")
			}

			kg, err := keyGenerator(cmd)
			if err != nil {
				return err
			}
			prover, err := kg.LoadProver(cmd.Context(), circuits.ReputationCircuitName)
			if err != nil {
				return err
			}
			proof, commitment, err := setup.ProveReputation(prover, threshold, score, circuits.SaltFromBytes(salt))
			if err != nil {
				return err
			}
			f := NewProofFile(circuits.ReputationCircuitName, proof, types.PublicInputFromUint64(threshold), commitment)
			f.Threshold = threshold
			return emitProof(cmd, f)
		},
	}
	cmd.Flags().Uint64(FlagThreshold, 0, "Public threshold the score must meet")
	cmd.Flags().Uint64(FlagScore, 0, "Private reputation score")
	cmd.Flags().String(FlagSalt, "", "Private hex salt of the provider commitment")
	cmd.Flags().String(FlagOutput, "", "Write the proof file here instead of stdout")
	return cmd
}

// CmdZKVerify checks a proof file against the stored verifying key.
func CmdZKVerify() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [proof-file]",
		Short: "Verify a proof file locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ReadProofFile(args[0])
			if err != nil {
				return err
			}
			kg, err := keyGenerator(cmd)
			if err != nil {
				return err
			}
			v, err := kg.LoadVerifier(cmd.Context(), f.Circuit)
			if err != nil {
				return err
			}
			inputs, err := f.Inputs()
			if err != nil {
				return err
			}
			if err := v.Check(f.A, f.B, f.C, inputs); err != nil {
				return fmt.Errorf("proof rejected: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "proof valid")
			return nil
		},
	}
}

// CmdZKHashResult prints the result hash a provider submits for a result.
func CmdZKHashResult() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-result [result-file]",
		Short: "Print the MiMC result hash of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			_, hash := circuits.HashResult(result)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(hash[:]))
			return nil
		},
	}
}

// GetAddressCmd returns commands deriving listing and task addresses.
func GetAddressCmd() *cobra.Command {
	addrCmd := &cobra.Command{
		Use:   "address",
		Short: "Derive listing and task addresses",
	}
	derive := func(use, short string, fn func(sdk.AccAddress, [types.IDLength]byte) sdk.AccAddress) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				owner, err := types.ParseAddress("owner", args[0])
				if err != nil {
					return err
				}
				raw, err := hex.DecodeString(args[1])
				if err != nil {
					return fmt.Errorf("invalid id: %w", err)
				}
				id, err := types.ParseID(raw)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fn(owner, id).String())
				return nil
			},
		}
	}
	addrCmd.AddCommand(
		derive("service [provider] [service-id-hex]", "Derive a service listing address", types.ServiceListingAddress),
		derive("task [requester] [task-id-hex]", "Derive a task (escrow) address", types.TaskRequestAddress),
	)
	return addrCmd
}

func emitProof(cmd *cobra.Command, f ProofFile) error {
	out, err := cmd.Flags().GetString(FlagOutput)
	if err != nil {
		return err
	}
	if out != "" {
		return WriteProofFile(out, f)
	}
	return writeJSONOut(cmd, f)
}

func writeJSONOut(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return nil
}
