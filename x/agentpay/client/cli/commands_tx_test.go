package cli

import (
	"bytes"
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/codec/address"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/app"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func testClientCtx(t *testing.T) (client.Context, *bytes.Buffer) {
	t.Helper()
	enc, err := app.MakeEncodingConfig()
	require.NoError(t, err)

	cfg := sdk.GetConfig()
	out := new(bytes.Buffer)
	clientCtx := client.Context{}.
		WithCodec(enc.Codec).
		WithInterfaceRegistry(enc.InterfaceRegistry).
		WithTxConfig(enc.TxConfig).
		WithLegacyAmino(enc.Amino).
		WithAddressCodec(address.NewBech32Codec(cfg.GetBech32AccountAddrPrefix())).
		WithValidatorAddressCodec(address.NewBech32Codec(cfg.GetBech32ValidatorAddrPrefix())).
		WithOutput(out)
	return clientCtx, out
}

func execute(clientCtx client.Context, cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	cmd.SetOut(clientCtx.Output)
	cmd.SetErr(clientCtx.Output)
	cmd.SetContext(context.WithValue(context.Background(), client.ClientContextKey, &clientCtx))
	return cmd.Execute()
}

// Every tx command builds a signable transaction carrying its message when
// run with --generate-only.
func TestTxCommandsGenerateOnly(t *testing.T) {
	clientCtx, out := testClientCtx(t)

	from := sdk.AccAddress(bytes.Repeat([]byte{5}, 20))
	var id [types.IDLength]byte
	id[0] = 4
	listing := types.ServiceListingAddress(from, id).String()
	task := types.TaskRequestAddress(from, id).String()
	hash := strings.Repeat("ab", types.ResultHashLength)

	common := []string{
		"--" + flags.FlagGenerateOnly,
		"--" + flags.FlagFrom, from.String(),
		"--" + flags.FlagChainID, "agentpay-test-1",
		"--" + flags.FlagKeyringBackend, "test",
		"--" + flags.FlagKeyringDir, t.TempDir(),
	}

	tests := []struct {
		name    string
		cmd     *cobra.Command
		args    []string
		typeURL string
		field   string
	}{
		{
			name:    "register-service",
			cmd:     CmdRegisterService(),
			args:    []string{hex.EncodeToString(id[:]), "1000", "--" + FlagDescription, "summarize pdfs"},
			typeURL: "/agentpay.v1.MsgRegisterService",
			field:   `"price_lamports":"1000"`,
		},
		{
			name:    "deactivate-service",
			cmd:     CmdDeactivateService(),
			args:    []string{listing},
			typeURL: "/agentpay.v1.MsgDeactivateService",
			field:   listing,
		},
		{
			name:    "create-task",
			cmd:     CmdCreateTask(),
			args:    []string{listing, hex.EncodeToString(id[:]), "1900000000", "--" + FlagMaxPayment, "1000"},
			typeURL: "/agentpay.v1.MsgCreateTask",
			field:   `"deadline":"1900000000"`,
		},
		{
			name:    "submit-result",
			cmd:     CmdSubmitResult(),
			args:    []string{task, hash},
			typeURL: "/agentpay.v1.MsgSubmitResult",
			field:   task,
		},
		{
			name:    "accept-result",
			cmd:     CmdAcceptResult(),
			args:    []string{task, listing},
			typeURL: "/agentpay.v1.MsgAcceptResult",
			field:   listing,
		},
		{
			name:    "dispute-task",
			cmd:     CmdDisputeTask(),
			args:    []string{task},
			typeURL: "/agentpay.v1.MsgDisputeTask",
			field:   task,
		},
		{
			name:    "expire-task",
			cmd:     CmdExpireTask(),
			args:    []string{task},
			typeURL: "/agentpay.v1.MsgExpireTask",
			field:   `"caller":"` + from.String() + `"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out.Reset()
			require.NoError(t, execute(clientCtx, tc.cmd, append(tc.args, common...)...))
			require.Contains(t, out.String(), `"@type":"`+tc.typeURL+`"`)
			require.Contains(t, out.String(), from.String())
			require.Contains(t, out.String(), tc.field)
		})
	}
}

func TestTxCommandsRejectInvalidMessages(t *testing.T) {
	clientCtx, out := testClientCtx(t)
	from := sdk.AccAddress(bytes.Repeat([]byte{5}, 20)).String()
	task := types.TaskRequestAddress(sdk.AccAddress(bytes.Repeat([]byte{5}, 20)), [types.IDLength]byte{1}).String()
	common := []string{
		"--" + flags.FlagGenerateOnly,
		"--" + flags.FlagFrom, from,
		"--" + flags.FlagChainID, "agentpay-test-1",
		"--" + flags.FlagKeyringBackend, "test",
		"--" + flags.FlagKeyringDir, t.TempDir(),
	}

	err := execute(clientCtx, CmdSubmitResult(), append([]string{task, "abcd"}, common...)...)
	require.ErrorIs(t, err, types.ErrInvalidResultHash)

	err = execute(clientCtx, CmdRegisterService(), append([]string{"zz", "10"}, common...)...)
	require.ErrorContains(t, err, "invalid service id")

	err = execute(clientCtx, CmdExpireTask(), append([]string{"not-an-address"}, common...)...)
	require.Error(t, err)
	require.NotContains(t, out.String(), "/agentpay.v1.MsgExpireTask")
}
