package keeper_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestMsgServerTaskFlow(t *testing.T) {
	e := newTestEnv(t)
	srv := keeper.NewMsgServerImpl(e.Keeper)
	serviceID := id(1)
	taskID := id(1)

	reg, err := srv.RegisterService(e.Ctx, &types.MsgRegisterService{
		Provider:      provider.String(),
		ServiceID:     serviceID[:],
		Description:   "code review",
		PriceLamports: 700,
	})
	require.NoError(t, err)
	require.Equal(t, types.ServiceListingAddress(provider, serviceID).String(), reg.ServiceListing)

	e.Fund(requester, 700)
	created, err := srv.CreateTask(e.Ctx, &types.MsgCreateTask{
		Requester:      requester.String(),
		ServiceListing: reg.ServiceListing,
		TaskID:         taskID[:],
		Description:    "review pull request",
		Deadline:       100,
		MaxPayment:     700,
	})
	require.NoError(t, err)
	require.Equal(t, types.TaskRequestAddress(requester, taskID).String(), created.Task)

	h := hash(3)
	_, err = srv.SubmitResultZK(e.Ctx, &types.MsgSubmitResultZK{
		Provider:   provider.String(),
		Task:       created.Task,
		ResultHash: h[:],
		ProofA:     make([]byte, types.G1PointLength),
		ProofB:     make([]byte, types.G2PointLength),
		ProofC:     make([]byte, types.G1PointLength),
	})
	require.NoError(t, err)

	_, err = srv.AcceptResult(e.Ctx, &types.MsgAcceptResult{
		Requester:      requester.String(),
		Task:           created.Task,
		ServiceListing: reg.ServiceListing,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(700), e.Balance(provider))

	_, err = srv.DeactivateService(e.Ctx, &types.MsgDeactivateService{
		Provider:       provider.String(),
		ServiceListing: reg.ServiceListing,
	})
	require.NoError(t, err)

	require.Subset(t, e.eventTypes(), []string{
		types.EventTypeServiceRegistered,
		types.EventTypeTaskCreated,
		types.EventTypeResultSubmitted,
		types.EventTypeTaskCompleted,
		types.EventTypeServiceDeactivated,
	})
}

func TestMsgServerRefundPaths(t *testing.T) {
	e := newTestEnv(t)
	srv := keeper.NewMsgServerImpl(e.Keeper)
	listing := e.register(1, 40)
	disputed := e.openTask(listing, 1, 100)
	expired := e.openTask(listing, 2, 100)

	h := hash(1)
	_, err := srv.SubmitResult(e.Ctx, &types.MsgSubmitResult{Provider: provider.String(), Task: disputed.String(), ResultHash: h[:]})
	require.NoError(t, err)
	_, err = srv.DisputeTask(e.Ctx, &types.MsgDisputeTask{Requester: requester.String(), Task: disputed.String()})
	require.NoError(t, err)

	e.SetTime(101)
	_, err = srv.ExpireTask(e.Ctx, &types.MsgExpireTask{Caller: stranger.String(), Task: expired.String()})
	require.NoError(t, err)
	require.Equal(t, uint64(80), e.Balance(requester))
}

func TestMsgServerValidation(t *testing.T) {
	e := newTestEnv(t)
	srv := keeper.NewMsgServerImpl(e.Keeper)

	_, err := srv.RegisterService(e.Ctx, &types.MsgRegisterService{Provider: "nope", ServiceID: make([]byte, types.IDLength)})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = srv.RegisterService(e.Ctx, &types.MsgRegisterService{Provider: provider.String(), ServiceID: []byte{1}})
	require.ErrorIs(t, err, types.ErrInvalidID)

	_, err = srv.RegisterService(e.Ctx, &types.MsgRegisterService{
		Provider:    provider.String(),
		ServiceID:   make([]byte, types.IDLength),
		Description: string(bytes.Repeat([]byte("a"), types.ListingDescriptionCapacity+1)),
	})
	require.ErrorIs(t, err, types.ErrDescriptionTooLong)

	_, err = srv.SubmitResult(e.Ctx, &types.MsgSubmitResult{Provider: provider.String(), Task: stranger.String(), ResultHash: []byte{1}})
	require.ErrorIs(t, err, types.ErrInvalidResultHash)

	_, err = srv.VerifyReputation(e.Ctx, &types.MsgVerifyReputation{
		Caller:             requester.String(),
		ServiceListing:     stranger.String(),
		ProviderCommitment: []byte{1},
	})
	require.Error(t, err)
}

func TestMsgServerVerifyReputation(t *testing.T) {
	e := newTestEnv(t)
	srv := keeper.NewMsgServerImpl(e.Keeper)
	listing := e.register(1, 10)
	commitment := make([]byte, types.PublicInputLength)
	commitment[31] = 7

	msg := &types.MsgVerifyReputation{
		Caller:             requester.String(),
		ServiceListing:     listing.String(),
		Threshold:          3,
		ProviderCommitment: commitment,
		ProofA:             make([]byte, types.G1PointLength),
		ProofB:             make([]byte, types.G2PointLength),
		ProofC:             make([]byte, types.G1PointLength),
	}
	_, err := srv.VerifyReputation(e.Ctx, msg)
	require.NoError(t, err)
	require.Equal(t, types.PublicInputFromUint64(3), e.reputation.LastInputs[0])
	require.Equal(t, commitment, e.reputation.LastInputs[1][:])
}

func TestMsgServerUpdateParams(t *testing.T) {
	e := newTestEnv(t)
	srv := keeper.NewMsgServerImpl(e.Keeper)

	params := types.DefaultParams()
	params.ProofVerifyGas = 1
	_, err := srv.UpdateParams(e.Ctx, &types.MsgUpdateParams{Authority: stranger.String(), Params: params})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.UpdateParams(e.Ctx, &types.MsgUpdateParams{Authority: e.Authority, Params: params})
	require.NoError(t, err)
	require.Equal(t, uint64(1), e.Keeper.GetParams(e.Ctx).ProofVerifyGas)

	invalid := types.DefaultParams()
	invalid.EscrowDenom = ""
	_, err = srv.UpdateParams(e.Ctx, &types.MsgUpdateParams{Authority: e.Authority, Params: invalid})
	require.Error(t, err)
}

func TestUpdateParamsDenomLockedByEscrow(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 10)
	task := e.openTask(listing, 1, 100)

	params := types.DefaultParams()
	params.EscrowDenom = "uother"
	err := e.Keeper.UpdateParams(e.Ctx, e.Authority, params)
	require.ErrorIs(t, err, types.ErrInvalidParams)

	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))
	require.ErrorIs(t, e.Keeper.UpdateParams(e.Ctx, e.Authority, params), types.ErrInvalidParams)

	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, task, listing))
	require.NoError(t, e.Keeper.UpdateParams(e.Ctx, e.Authority, params))
	require.Equal(t, "uother", e.Keeper.GetParams(e.Ctx).EscrowDenom)
}

func TestMsgServerRejectsMalformedAddresses(t *testing.T) {
	e := newTestEnv(t)
	srv := keeper.NewMsgServerImpl(e.Keeper)
	listing := e.register(1, 100)
	task := e.openTask(listing, 1, 2_000_000_000)
	h := hash(1)

	for name, call := range map[string]func() error{
		"deactivate listing": func() error {
			_, err := srv.DeactivateService(e.Ctx, &types.MsgDeactivateService{Provider: provider.String(), ServiceListing: "nope"})
			return err
		},
		"create requester": func() error {
			_, err := srv.CreateTask(e.Ctx, &types.MsgCreateTask{Requester: "nope", ServiceListing: listing.String(), TaskID: make([]byte, types.IDLength), Deadline: 1})
			return err
		},
		"submit task": func() error {
			_, err := srv.SubmitResult(e.Ctx, &types.MsgSubmitResult{Provider: provider.String(), Task: "nope", ResultHash: h[:]})
			return err
		},
		"accept listing": func() error {
			_, err := srv.AcceptResult(e.Ctx, &types.MsgAcceptResult{Requester: requester.String(), Task: task.String(), ServiceListing: "nope"})
			return err
		},
		"dispute requester": func() error {
			_, err := srv.DisputeTask(e.Ctx, &types.MsgDisputeTask{Requester: "", Task: task.String()})
			return err
		},
		"expire caller": func() error {
			_, err := srv.ExpireTask(e.Ctx, &types.MsgExpireTask{Caller: "nope", Task: task.String()})
			return err
		},
	} {
		require.ErrorIs(t, call(), types.ErrInvalidAddress, name)
	}

	require.Equal(t, types.TaskStatusOpen, e.task(task).Status)
	require.True(t, e.listing(listing).IsActive)
	e.requireInvariants()
}
