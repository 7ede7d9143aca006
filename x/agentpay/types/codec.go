package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the agentpay message types on the
// LegacyAmino codec for amino JSON signing.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterService{}, "agentpay/MsgRegisterService", nil)
	cdc.RegisterConcrete(&MsgDeactivateService{}, "agentpay/MsgDeactivateService", nil)
	cdc.RegisterConcrete(&MsgCreateTask{}, "agentpay/MsgCreateTask", nil)
	cdc.RegisterConcrete(&MsgSubmitResult{}, "agentpay/MsgSubmitResult", nil)
	cdc.RegisterConcrete(&MsgSubmitResultZK{}, "agentpay/MsgSubmitResultZK", nil)
	cdc.RegisterConcrete(&MsgAcceptResult{}, "agentpay/MsgAcceptResult", nil)
	cdc.RegisterConcrete(&MsgDisputeTask{}, "agentpay/MsgDisputeTask", nil)
	cdc.RegisterConcrete(&MsgExpireTask{}, "agentpay/MsgExpireTask", nil)
	cdc.RegisterConcrete(&MsgVerifyReputation{}, "agentpay/MsgVerifyReputation", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "agentpay/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the agentpay messages with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterService{},
		&MsgDeactivateService{},
		&MsgCreateTask{},
		&MsgSubmitResult{},
		&MsgSubmitResultZK{},
		&MsgAcceptResult{},
		&MsgDisputeTask{},
		&MsgExpireTask{},
		&MsgVerifyReputation{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgRegisterServiceResponse{},
		&MsgDeactivateServiceResponse{},
		&MsgCreateTaskResponse{},
		&MsgSubmitResultResponse{},
		&MsgSubmitResultZKResponse{},
		&MsgAcceptResultResponse{},
		&MsgDisputeTaskResponse{},
		&MsgExpireTaskResponse{},
		&MsgVerifyReputationResponse{},
		&MsgUpdateParamsResponse{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

var (
	amino = codec.NewLegacyAmino()
)

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
