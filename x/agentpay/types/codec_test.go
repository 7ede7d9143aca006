package types

import (
	"testing"

	"cosmossdk.io/x/tx/signing"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) cdctypes.InterfaceRegistry {
	t.Helper()
	cfg := sdk.GetConfig()
	registry, err := cdctypes.NewInterfaceRegistryWithOptions(cdctypes.InterfaceRegistryOptions{
		ProtoFiles: proto.HybridResolver,
		SigningOptions: signing.Options{
			AddressCodec:          address.NewBech32Codec(cfg.GetBech32AccountAddrPrefix()),
			ValidatorAddressCodec: address.NewBech32Codec(cfg.GetBech32ValidatorAddrPrefix()),
		},
	})
	require.NoError(t, err)
	RegisterInterfaces(registry)
	return registry
}

func TestRegisterInterfaces(t *testing.T) {
	registry := testRegistry(t)

	msgTypes := []string{
		"/agentpay.v1.MsgRegisterService",
		"/agentpay.v1.MsgDeactivateService",
		"/agentpay.v1.MsgCreateTask",
		"/agentpay.v1.MsgSubmitResult",
		"/agentpay.v1.MsgSubmitResultZK",
		"/agentpay.v1.MsgAcceptResult",
		"/agentpay.v1.MsgDisputeTask",
		"/agentpay.v1.MsgExpireTask",
		"/agentpay.v1.MsgVerifyReputation",
		"/agentpay.v1.MsgUpdateParams",
	}
	for _, typeURL := range msgTypes {
		t.Run(typeURL, func(t *testing.T) {
			msg, err := registry.Resolve(typeURL)
			require.NoError(t, err)
			require.Implements(t, (*sdk.Msg)(nil), msg)
		})
	}
}

func TestMsgSigners(t *testing.T) {
	cdc := codec.NewProtoCodec(testRegistry(t))
	provider := testAddr(1, 20)
	requester := testAddr(2, 20)
	task := testAddr(4, 32).String()

	tests := []struct {
		name   string
		msg    sdk.Msg
		signer sdk.AccAddress
	}{
		{"register", &MsgRegisterService{Provider: provider.String()}, provider},
		{"submit zk", &MsgSubmitResultZK{Provider: provider.String(), Task: task}, provider},
		{"create", &MsgCreateTask{Requester: requester.String()}, requester},
		{"expire", &MsgExpireTask{Caller: requester.String(), Task: task}, requester},
		{"update params", &MsgUpdateParams{Authority: requester.String(), Params: DefaultParams()}, requester},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signers, _, err := cdc.GetMsgV1Signers(tc.msg)
			require.NoError(t, err)
			require.Equal(t, [][]byte{tc.signer}, signers)
		})
	}
}

func TestAminoJSONNames(t *testing.T) {
	bz, err := amino.MarshalJSON(&MsgExpireTask{Caller: "caller", Task: "task"})
	require.NoError(t, err)
	require.Contains(t, string(bz), `"type":"agentpay/MsgExpireTask"`)
}

func TestParamsProtoRoundTrip(t *testing.T) {
	p := DefaultParams()
	p.ExpiryBatchSize = 64
	bz, err := MarshalParams(p)
	require.NoError(t, err)
	got, err := UnmarshalParams(bz)
	require.NoError(t, err)
	require.Equal(t, p, got)

	_, err = UnmarshalParams([]byte{0x0a, 0x05})
	require.ErrorIs(t, err, ErrInvalidParams)
}
