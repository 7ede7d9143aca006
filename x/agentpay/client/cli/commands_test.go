package cli

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/circuits"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// Construct every command tree without running handlers that need a node.
func TestCommandConstruction(t *testing.T) {
	for name, build := range map[string]func() *cobra.Command{
		"query":   GetQueryCmd,
		"tx":      GetTxCmd,
		"zk":      GetZKCmd,
		"address": GetAddressCmd,
	} {
		t.Run(name, func(t *testing.T) {
			cmd := build()
			require.NotNil(t, cmd)
			require.NotEmpty(t, cmd.Use)
			require.NotEmpty(t, cmd.Commands())
			for _, c := range cmd.Commands() {
				require.NotEmpty(t, c.Use)
				require.NotEmpty(t, c.Short)
			}
		})
	}
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAddressCommands(t *testing.T) {
	owner := sdk.AccAddress(bytes.Repeat([]byte{7}, 20))
	var id [types.IDLength]byte
	id[0] = 9

	out, err := run(t, GetAddressCmd(), "service", owner.String(), hex.EncodeToString(id[:]))
	require.NoError(t, err)
	require.Equal(t, types.ServiceListingAddress(owner, id).String(), strings.TrimSpace(out))

	out, err = run(t, GetAddressCmd(), "task", owner.String(), hex.EncodeToString(id[:]))
	require.NoError(t, err)
	require.Equal(t, types.TaskRequestAddress(owner, id).String(), strings.TrimSpace(out))

	_, err = run(t, GetAddressCmd(), "task", owner.String(), "abcd")
	require.ErrorIs(t, err, types.ErrInvalidID)
}

func TestHashResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	require.NoError(t, os.WriteFile(path, []byte("bonjour"), 0o600))

	out, err := run(t, GetZKCmd(), "hash-result", path)
	require.NoError(t, err)
	_, want := circuits.HashResult([]byte("bonjour"))
	require.Equal(t, hex.EncodeToString(want[:]), strings.TrimSpace(out))
}

func TestZKProveAndVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("circuit setup is slow")
	}
	dir := t.TempDir()
	keys := filepath.Join(dir, "keys")

	_, err := run(t, GetZKCmd(), "setup", "--keys-dir", keys)
	require.NoError(t, err)

	resultPath := filepath.Join(dir, "result.txt")
	require.NoError(t, os.WriteFile(resultPath, []byte("bonjour"), 0o600))
	proofPath := filepath.Join(dir, "result-proof.json")
	_, err = run(t, GetZKCmd(), "prove-result", resultPath, "--keys-dir", keys, "--output", proofPath)
	require.NoError(t, err)

	f, err := ReadProofFile(proofPath)
	require.NoError(t, err)
	require.Equal(t, circuits.ResultCircuitName, f.Circuit)
	_, want := circuits.HashResult([]byte("bonjour"))
	require.Equal(t, want[:], []byte(f.PublicInputs[0]))

	out, err := run(t, GetZKCmd(), "verify", proofPath, "--keys-dir", keys)
	require.NoError(t, err)
	require.Contains(t, out, "proof valid")

	// tampering with the public input breaks verification
	f.PublicInputs[0][31] ^= 1
	require.NoError(t, WriteProofFile(proofPath, f))
	_, err = run(t, GetZKCmd(), "verify", proofPath, "--keys-dir", keys)
	require.Error(t, err)

	repPath := filepath.Join(dir, "reputation-proof.json")
	_, err = run(t, GetZKCmd(), "prove-reputation", "--keys-dir", keys,
		"--threshold", "70", "--score", "85", "--salt", "0badc0de", "--output", repPath)
	require.NoError(t, err)
	out, err = run(t, GetZKCmd(), "verify", repPath, "--keys-dir", keys)
	require.NoError(t, err)
	require.Contains(t, out, "proof valid")

	rep, err := ReadProofFile(repPath)
	require.NoError(t, err)
	require.Equal(t, uint64(70), rep.Threshold)
	salt, _ := hex.DecodeString("0badc0de")
	commitment := circuits.ProviderCommitment(85, circuits.SaltFromBytes(salt))
	require.Equal(t, commitment[:], []byte(rep.PublicInputs[1]))

	// a score below the threshold cannot be proven
	_, err = run(t, GetZKCmd(), "prove-reputation", "--keys-dir", keys,
		"--threshold", "90", "--score", "85", "--salt", "0badc0de")
	require.Error(t, err)
}

func TestProofFileInputs(t *testing.T) {
	f := NewProofFile(circuits.ResultCircuitName, types.Groth16Proof{}, [32]byte{1})
	in, err := f.Inputs()
	require.NoError(t, err)
	require.Equal(t, []types.PublicInput{{1}}, in)

	f.PublicInputs[0] = f.PublicInputs[0][:31]
	_, err = f.Inputs()
	require.Error(t, err)
}
