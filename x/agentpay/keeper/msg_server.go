package keeper

import (
	"context"

	"github.com/cosmos/cosmos-sdk/telemetry"
	gometrics "github.com/hashicorp/go-metrics"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// observe counts a handled message by type and outcome.
func observe(msgType string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "msg", msgType},
		1,
		[]gometrics.Label{telemetry.NewLabel("outcome", outcome)},
	)
}

// RegisterService registers a new service listing.
func (ms msgServer) RegisterService(goCtx context.Context, msg *types.MsgRegisterService) (resp *types.MsgRegisterServiceResponse, err error) {
	defer func() { observe(types.TypeMsgRegisterService, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := types.ParseAddress("provider", msg.Provider)
	if err != nil {
		return nil, err
	}
	serviceID, err := types.ParseID(msg.ServiceID)
	if err != nil {
		return nil, err
	}

	addr, err := ms.Keeper.RegisterService(goCtx, provider, serviceID, []byte(msg.Description), msg.PriceLamports, msg.MinReputation)
	if err != nil {
		return nil, err
	}
	return &types.MsgRegisterServiceResponse{ServiceListing: addr.String()}, nil
}

// DeactivateService deactivates a listing owned by the signer.
func (ms msgServer) DeactivateService(goCtx context.Context, msg *types.MsgDeactivateService) (resp *types.MsgDeactivateServiceResponse, err error) {
	defer func() { observe(types.TypeMsgDeactivateService, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := types.ParseAddress("provider", msg.Provider)
	if err != nil {
		return nil, err
	}
	listing, err := types.ParseAddress("service listing", msg.ServiceListing)
	if err != nil {
		return nil, err
	}

	if err := ms.Keeper.DeactivateService(goCtx, provider, listing); err != nil {
		return nil, err
	}
	return &types.MsgDeactivateServiceResponse{}, nil
}

// CreateTask creates a task and locks its escrow.
func (ms msgServer) CreateTask(goCtx context.Context, msg *types.MsgCreateTask) (resp *types.MsgCreateTaskResponse, err error) {
	defer func() { observe(types.TypeMsgCreateTask, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requester, err := types.ParseAddress("requester", msg.Requester)
	if err != nil {
		return nil, err
	}
	listing, err := types.ParseAddress("service listing", msg.ServiceListing)
	if err != nil {
		return nil, err
	}
	taskID, err := types.ParseID(msg.TaskID)
	if err != nil {
		return nil, err
	}

	addr, err := ms.Keeper.CreateTask(goCtx, requester, listing, taskID, []byte(msg.Description), msg.Deadline, msg.MaxPayment)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateTaskResponse{Task: addr.String()}, nil
}

// SubmitResult submits an unverified result hash.
func (ms msgServer) SubmitResult(goCtx context.Context, msg *types.MsgSubmitResult) (resp *types.MsgSubmitResultResponse, err error) {
	defer func() { observe(types.TypeMsgSubmitResult, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := types.ParseAddress("provider", msg.Provider)
	if err != nil {
		return nil, err
	}
	task, err := types.ParseAddress("task", msg.Task)
	if err != nil {
		return nil, err
	}
	hash, err := types.ParseResultHash(msg.ResultHash)
	if err != nil {
		return nil, err
	}

	if err := ms.Keeper.SubmitResult(goCtx, provider, task, hash); err != nil {
		return nil, err
	}
	return &types.MsgSubmitResultResponse{}, nil
}

// SubmitResultZK submits a result hash backed by a proof.
func (ms msgServer) SubmitResultZK(goCtx context.Context, msg *types.MsgSubmitResultZK) (resp *types.MsgSubmitResultZKResponse, err error) {
	defer func() { observe(types.TypeMsgSubmitResultZK, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	provider, err := types.ParseAddress("provider", msg.Provider)
	if err != nil {
		return nil, err
	}
	task, err := types.ParseAddress("task", msg.Task)
	if err != nil {
		return nil, err
	}
	hash, err := types.ParseResultHash(msg.ResultHash)
	if err != nil {
		return nil, err
	}
	proof, err := types.NewGroth16Proof(msg.ProofA, msg.ProofB, msg.ProofC)
	if err != nil {
		return nil, err
	}

	if err := ms.Keeper.SubmitResultZK(goCtx, provider, task, proof, hash); err != nil {
		return nil, err
	}
	return &types.MsgSubmitResultZKResponse{}, nil
}

// AcceptResult releases escrow to the provider.
func (ms msgServer) AcceptResult(goCtx context.Context, msg *types.MsgAcceptResult) (resp *types.MsgAcceptResultResponse, err error) {
	defer func() { observe(types.TypeMsgAcceptResult, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requester, err := types.ParseAddress("requester", msg.Requester)
	if err != nil {
		return nil, err
	}
	task, err := types.ParseAddress("task", msg.Task)
	if err != nil {
		return nil, err
	}
	listing, err := types.ParseAddress("service listing", msg.ServiceListing)
	if err != nil {
		return nil, err
	}

	if err := ms.Keeper.AcceptResult(goCtx, requester, task, listing); err != nil {
		return nil, err
	}
	return &types.MsgAcceptResultResponse{}, nil
}

// DisputeTask refunds escrow to the requester.
func (ms msgServer) DisputeTask(goCtx context.Context, msg *types.MsgDisputeTask) (resp *types.MsgDisputeTaskResponse, err error) {
	defer func() { observe(types.TypeMsgDisputeTask, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requester, err := types.ParseAddress("requester", msg.Requester)
	if err != nil {
		return nil, err
	}
	task, err := types.ParseAddress("task", msg.Task)
	if err != nil {
		return nil, err
	}

	if err := ms.Keeper.DisputeTask(goCtx, requester, task); err != nil {
		return nil, err
	}
	return &types.MsgDisputeTaskResponse{}, nil
}

// ExpireTask refunds an overdue open task.
func (ms msgServer) ExpireTask(goCtx context.Context, msg *types.MsgExpireTask) (resp *types.MsgExpireTaskResponse, err error) {
	defer func() { observe(types.TypeMsgExpireTask, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	caller, err := types.ParseAddress("caller", msg.Caller)
	if err != nil {
		return nil, err
	}
	task, err := types.ParseAddress("task", msg.Task)
	if err != nil {
		return nil, err
	}

	if err := ms.Keeper.ExpireTask(goCtx, caller, task); err != nil {
		return nil, err
	}
	return &types.MsgExpireTaskResponse{}, nil
}

// VerifyReputation checks a reputation proof against a listing.
func (ms msgServer) VerifyReputation(goCtx context.Context, msg *types.MsgVerifyReputation) (resp *types.MsgVerifyReputationResponse, err error) {
	defer func() { observe(types.TypeMsgVerifyReputation, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	listing, err := types.ParseAddress("service listing", msg.ServiceListing)
	if err != nil {
		return nil, err
	}
	proof, err := types.NewGroth16Proof(msg.ProofA, msg.ProofB, msg.ProofC)
	if err != nil {
		return nil, err
	}
	var commitment [types.PublicInputLength]byte
	copy(commitment[:], msg.ProviderCommitment)

	if err := ms.Keeper.VerifyReputation(goCtx, proof, msg.Threshold, commitment, listing); err != nil {
		return nil, err
	}
	return &types.MsgVerifyReputationResponse{}, nil
}

// UpdateParams updates the module parameters.
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (resp *types.MsgUpdateParamsResponse, err error) {
	defer func() { observe(types.TypeMsgUpdateParams, err) }()
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateParams(goCtx, msg.Authority, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
