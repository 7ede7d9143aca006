package keeper

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"math"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// CreateTask opens a task against an active listing and locks the listing's
// current price in the task's escrow account. maxPayment of zero accepts any
// price; otherwise the price must not exceed it.
func (k Keeper) CreateTask(
	ctx context.Context,
	requester sdk.AccAddress,
	listingAddr sdk.AccAddress,
	taskID [types.IDLength]byte,
	description []byte,
	deadline int64,
	maxPayment uint64,
) (sdk.AccAddress, error) {
	desc, err := types.NewTaskDescription(description)
	if err != nil {
		return nil, err
	}

	var task types.TaskRequest
	err = k.atomically(ctx, func(ctx sdk.Context) error {
		listing, err := k.GetServiceListing(ctx, listingAddr)
		if err != nil {
			return err
		}
		if !listing.IsActive {
			return types.WrapWithRecovery(types.ErrServiceNotActive, "listing %s", listingAddr)
		}
		blockTime := now(ctx)
		if deadline <= blockTime {
			return types.WrapWithRecovery(types.ErrDeadlineInPast, "deadline %d, block time %d", deadline, blockTime)
		}
		if maxPayment != 0 && maxPayment < listing.PriceLamports {
			return types.WrapWithRecovery(types.ErrInsufficientPayment, "max payment %d, price %d", maxPayment, listing.PriceLamports)
		}

		task = types.TaskRequest{
			Requester:      requester,
			Provider:       listing.Provider,
			ServiceListing: listingAddr,
			TaskID:         taskID,
			Description:    desc,
			AmountLamports: listing.PriceLamports,
			Status:         types.TaskStatusOpen,
			Deadline:       deadline,
			CreatedAt:      blockTime,
		}
		taskAddr := task.Address()
		if k.getStore(ctx).Has(types.TaskRequestKey(taskAddr)) {
			return types.WrapWithRecovery(types.ErrTaskAlreadyExists, "task %s", taskAddr)
		}

		if err := k.setTaskRequest(ctx, task); err != nil {
			return err
		}
		k.indexNewTask(ctx, task)
		if err := k.lockEscrow(ctx, requester, task); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTaskCreated,
				sdk.NewAttribute(types.AttributeKeyTask, taskAddr.String()),
				sdk.NewAttribute(types.AttributeKeyTaskID, hex.EncodeToString(taskID[:])),
				sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
				sdk.NewAttribute(types.AttributeKeyProvider, listing.Provider.String()),
				sdk.NewAttribute(types.AttributeKeyServiceListing, listingAddr.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, fmt.Sprintf("%d", task.AmountLamports)),
				sdk.NewAttribute(types.AttributeKeyDeadline, fmt.Sprintf("%d", deadline)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.metrics.TasksCreated.Inc()
	k.metrics.EscrowLocked.Add(float64(task.AmountLamports))
	return task.Address(), nil
}

// SubmitResult records an unverified result hash and moves the task to Submitted.
func (k Keeper) SubmitResult(ctx context.Context, provider, taskAddr sdk.AccAddress, resultHash [types.ResultHashLength]byte) error {
	return k.submit(ctx, provider, taskAddr, resultHash, nil)
}

// SubmitResultZK records a result hash after checking a proof of knowledge of
// its preimage. A rejected proof leaves the task untouched.
func (k Keeper) SubmitResultZK(
	ctx context.Context,
	provider, taskAddr sdk.AccAddress,
	proof types.Groth16Proof,
	resultHash [types.ResultHashLength]byte,
) error {
	return k.submit(ctx, provider, taskAddr, resultHash, &proof)
}

func (k Keeper) submit(
	ctx context.Context,
	provider, taskAddr sdk.AccAddress,
	resultHash [types.ResultHashLength]byte,
	proof *types.Groth16Proof,
) error {
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		task, err := k.GetTaskRequest(ctx, taskAddr)
		if err != nil {
			return err
		}
		if !task.Provider.Equals(provider) {
			return types.WrapWithRecovery(types.ErrUnauthorizedProvider, "caller %s", provider)
		}
		if task.Status != types.TaskStatusOpen {
			return types.WrapWithRecovery(types.ErrInvalidTaskStatus, "task %s is %s", taskAddr, task.Status)
		}
		if blockTime := now(ctx); blockTime > task.Deadline {
			return types.WrapWithRecovery(types.ErrDeadlinePassed, "deadline %d, block time %d", task.Deadline, blockTime)
		}

		zkVerified := false
		if proof != nil {
			inputs := []types.PublicInput{types.PublicInput(resultHash)}
			if !k.verifyProof(ctx, resultCircuit, k.verifiers.Result, *proof, inputs) {
				return types.WrapWithRecovery(types.ErrZkProofVerificationFailed, "task %s", taskAddr)
			}
			zkVerified = true
		}

		task.ResultHash = resultHash
		task.ZkVerified = zkVerified
		if err := k.transitionTask(ctx, task, types.TaskStatusSubmitted); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeResultSubmitted,
				sdk.NewAttribute(types.AttributeKeyTask, taskAddr.String()),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyResultHash, hex.EncodeToString(resultHash[:])),
				sdk.NewAttribute(types.AttributeKeyZkVerified, fmt.Sprintf("%t", zkVerified)),
			),
		)
		return nil
	})
	if err != nil {
		return err
	}

	k.metrics.TaskTransitions.WithLabelValues(types.TaskStatusSubmitted.String()).Inc()
	return nil
}

// AcceptResult completes a submitted task: escrow goes to the provider and
// the originating listing's completion counter is incremented.
func (k Keeper) AcceptResult(ctx context.Context, requester, taskAddr, listingAddr sdk.AccAddress) error {
	var paid sdk.Coin
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		task, err := k.GetTaskRequest(ctx, taskAddr)
		if err != nil {
			return err
		}
		if !task.Requester.Equals(requester) {
			return types.WrapWithRecovery(types.ErrUnauthorizedRequester, "caller %s", requester)
		}
		if !bytes.Equal(task.ServiceListing, listingAddr) {
			return types.WrapWithRecovery(types.ErrServiceListingMismatch, "task %s was created against %s", taskAddr, task.ServiceListing)
		}
		if task.Status != types.TaskStatusSubmitted {
			return types.WrapWithRecovery(types.ErrInvalidTaskStatus, "task %s is %s", taskAddr, task.Status)
		}

		listing, err := k.GetServiceListing(ctx, listingAddr)
		if err != nil {
			return err
		}
		if listing.TasksCompleted == math.MaxUint64 {
			return types.ErrCounterOverflow.Wrapf("listing %s tasks_completed", listingAddr)
		}

		if paid, err = k.disburseEscrow(ctx, task, task.Provider); err != nil {
			return err
		}
		if err := k.transitionTask(ctx, task, types.TaskStatusCompleted); err != nil {
			return err
		}
		listing.TasksCompleted++
		if err := k.setServiceListing(ctx, listing); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTaskCompleted,
				sdk.NewAttribute(types.AttributeKeyTask, taskAddr.String()),
				sdk.NewAttribute(types.AttributeKeyRecipient, task.Provider.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, paid.String()),
				sdk.NewAttribute(types.AttributeKeyServiceListing, listingAddr.String()),
				sdk.NewAttribute(types.AttributeKeyTasksCompleted, fmt.Sprintf("%d", listing.TasksCompleted)),
			),
		)
		return nil
	})
	if err != nil {
		return err
	}

	k.recordDisbursal(types.TaskStatusCompleted, paid)
	return nil
}

// DisputeTask rejects a submitted result and refunds the requester in full.
func (k Keeper) DisputeTask(ctx context.Context, requester, taskAddr sdk.AccAddress) error {
	var refunded sdk.Coin
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		task, err := k.GetTaskRequest(ctx, taskAddr)
		if err != nil {
			return err
		}
		if !task.Requester.Equals(requester) {
			return types.WrapWithRecovery(types.ErrUnauthorizedRequester, "caller %s", requester)
		}
		if task.Status != types.TaskStatusSubmitted {
			return types.WrapWithRecovery(types.ErrInvalidTaskStatus, "task %s is %s", taskAddr, task.Status)
		}

		if refunded, err = k.disburseEscrow(ctx, task, task.Requester); err != nil {
			return err
		}
		if err := k.transitionTask(ctx, task, types.TaskStatusDisputed); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTaskDisputed,
				sdk.NewAttribute(types.AttributeKeyTask, taskAddr.String()),
				sdk.NewAttribute(types.AttributeKeyRecipient, requester.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, refunded.String()),
			),
		)
		return nil
	})
	if err != nil {
		return err
	}

	k.recordDisbursal(types.TaskStatusDisputed, refunded)
	return nil
}

// ExpireTask refunds an open task whose deadline has passed. Anyone may call it.
func (k Keeper) ExpireTask(ctx context.Context, caller, taskAddr sdk.AccAddress) error {
	var refunded sdk.Coin
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		task, err := k.GetTaskRequest(ctx, taskAddr)
		if err != nil {
			return err
		}
		if task.Status != types.TaskStatusOpen {
			return types.WrapWithRecovery(types.ErrInvalidTaskStatus, "task %s is %s", taskAddr, task.Status)
		}
		if blockTime := now(ctx); blockTime <= task.Deadline {
			return types.WrapWithRecovery(types.ErrDeadlineNotReached, "deadline %d, block time %d", task.Deadline, blockTime)
		}

		if refunded, err = k.disburseEscrow(ctx, task, task.Requester); err != nil {
			return err
		}
		if err := k.transitionTask(ctx, task, types.TaskStatusExpired); err != nil {
			return err
		}

		attrs := []sdk.Attribute{
			sdk.NewAttribute(types.AttributeKeyTask, taskAddr.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, task.Requester.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, refunded.String()),
		}
		if len(caller) > 0 {
			attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyCaller, caller.String()))
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeTaskExpired, attrs...))
		return nil
	})
	if err != nil {
		return err
	}

	k.recordDisbursal(types.TaskStatusExpired, refunded)
	return nil
}

func (k Keeper) recordDisbursal(status types.TaskStatus, amount sdk.Coin) {
	k.metrics.TaskTransitions.WithLabelValues(status.String()).Inc()
	if !amount.IsNil() && amount.Amount.IsUint64() {
		k.metrics.EscrowDisbursed.WithLabelValues(status.String()).Add(float64(amount.Amount.Uint64()))
	}
}

// GetTaskRequest loads a task by its derived address.
func (k Keeper) GetTaskRequest(ctx context.Context, addr sdk.AccAddress) (types.TaskRequest, error) {
	bz := k.getStore(ctx).Get(types.TaskRequestKey(addr))
	if bz == nil {
		return types.TaskRequest{}, types.WrapWithRecovery(types.ErrTaskNotFound, "task %s", addr)
	}
	var task types.TaskRequest
	if err := task.UnmarshalBinary(bz); err != nil {
		return types.TaskRequest{}, err
	}
	return task, nil
}

func (k Keeper) setTaskRequest(ctx context.Context, task types.TaskRequest) error {
	bz, err := task.MarshalBinary()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.TaskRequestKey(task.Address()), bz)
	return nil
}

// indexNewTask writes every secondary index entry for a freshly stored task.
func (k Keeper) indexNewTask(ctx context.Context, task types.TaskRequest) {
	store := k.getStore(ctx)
	addr := task.Address()
	store.Set(types.TaskByRequesterKey(task.Requester, addr), []byte{1})
	store.Set(types.TaskByProviderKey(task.Provider, addr), []byte{1})
	store.Set(types.TaskByStatusKey(task.Status, addr), []byte{1})
	if task.Status == types.TaskStatusOpen {
		store.Set(types.OpenTaskDeadlineKey(task.Deadline, addr), []byte{1})
	}
}

// transitionTask moves a stored task to next, keeping the status and
// deadline indexes in step with the record.
func (k Keeper) transitionTask(ctx context.Context, task types.TaskRequest, next types.TaskStatus) error {
	if !task.Status.CanTransitionTo(next) {
		return types.ErrInvalidTaskStatus.Wrapf("%s -> %s", task.Status, next)
	}
	store := k.getStore(ctx)
	addr := task.Address()

	store.Delete(types.TaskByStatusKey(task.Status, addr))
	if task.Status == types.TaskStatusOpen {
		store.Delete(types.OpenTaskDeadlineKey(task.Deadline, addr))
	}

	task.Status = next
	if err := k.setTaskRequest(ctx, task); err != nil {
		return err
	}
	store.Set(types.TaskByStatusKey(next, addr), []byte{1})
	return nil
}

// IterateTaskRequests calls cb for every task until cb returns true.
func (k Keeper) IterateTaskRequests(ctx context.Context, cb func(addr sdk.AccAddress, task types.TaskRequest) (stop bool)) error {
	it := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.TaskRequestKeyPrefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		addr, ok := types.ParseLengthPrefixedAddress(it.Key()[len(types.TaskRequestKeyPrefix):])
		if !ok {
			return types.ErrCorruptRecord.Wrapf("task key %x", it.Key())
		}
		var task types.TaskRequest
		if err := task.UnmarshalBinary(it.Value()); err != nil {
			return err
		}
		if cb(addr, task) {
			break
		}
	}
	return nil
}
