package cmd

import (
	"bytes"
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"query", "params"},
		{"query", "listing"},
		{"query", "task"},
		{"query", "tasks"},
		{"query", "listings"},
		{"query", "search"},
		{"query", "stats"},
		{"tx", "register-service"},
		{"tx", "create-task"},
		{"tx", "submit-result-zk"},
		{"tx", "verify-reputation"},
		{"zk", "setup"},
		{"zk", "prove-reputation"},
		{"address", "task"},
		{"gateway"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		require.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestAddressUsesAgentpayPrefix(t *testing.T) {
	root := NewRootCmd()
	requester := sdk.AccAddress(bytes.Repeat([]byte{3}, 20)).String()
	require.True(t, strings.HasPrefix(requester, Bech32PrefixAccAddr+"1"))

	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"address", "task", requester, strings.Repeat("ab", 16)})
	require.NoError(t, root.Execute())
	require.True(t, strings.HasPrefix(out.String(), Bech32PrefixAccAddr+"1"), out.String())
}

func TestGenerateOnlyTx(t *testing.T) {
	root := NewRootCmd()
	from := sdk.AccAddress(bytes.Repeat([]byte{3}, 20))
	task := types.TaskRequestAddress(from, [types.IDLength]byte{1}).String()

	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{
		"tx", "expire-task", task,
		"--generate-only",
		"--from", from.String(),
		"--chain-id", "agentpay-1",
		"--keyring-backend", "test",
		"--home", t.TempDir(),
	})
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), `"@type":"/agentpay.v1.MsgExpireTask"`)
	require.Contains(t, out.String(), `"caller":"`+from.String()+`"`)
	require.Contains(t, out.String(), `"task":"`+task+`"`)
}

func TestEnvironmentFillsUnsetFlags(t *testing.T) {
	t.Setenv("AGENTPAY_LOG_LEVEL", "debug")

	root := NewRootCmd()
	root.SetArgs([]string{"address", "task", sdk.AccAddress(bytes.Repeat([]byte{3}, 20)).String(), strings.Repeat("00", 16)})
	root.SetOut(new(bytes.Buffer))
	require.NoError(t, root.Execute())

	level, err := root.PersistentFlags().GetString(flagLogLevel)
	require.NoError(t, err)
	require.Equal(t, "debug", level)
}

func TestGatewayFlagsOverrideConfig(t *testing.T) {
	v := viper.New()
	cmd := GatewayCmd(v)
	require.NoError(t, cmd.Flags().Set(flagListen, "0.0.0.0:9000"))
	require.NoError(t, cmd.Flags().Set(flagRateBurst, "7"))
	require.NoError(t, v.BindPFlags(cmd.Flags()))

	require.Equal(t, "0.0.0.0:9000", v.GetString(flagListen))
	require.Equal(t, 7, v.GetInt(flagRateBurst))
}
