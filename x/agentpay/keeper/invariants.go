package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// RegisterInvariants registers all agentpay module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-balance",
		EscrowBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "status-index",
		StatusIndexInvariant(k))
	ir.RegisterRoute(types.ModuleName, "completed-count",
		CompletedCountInvariant(k))
}

// AllInvariants runs all invariants of the agentpay module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = StatusIndexInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return CompletedCountInvariant(k)(ctx)
	}
}

// EscrowBalanceInvariant checks that every task holding escrow is funded.
// Terminal tasks are not checked: anyone can send coins to a derived
// address after its task settled.
func EscrowBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		err := k.IterateTaskRequests(ctx, func(addr sdk.AccAddress, task types.TaskRequest) bool {
			if !task.Status.HoldsEscrow() {
				return false
			}
			balance := k.EscrowBalance(ctx, addr)
			if balance.Amount.LT(math.NewIntFromUint64(task.AmountLamports)) {
				broken = true
				msg += fmt.Sprintf("\t%s task %s holds %s, records %d\n", task.Status, addr, balance, task.AmountLamports)
			}
			return false
		})
		if err != nil {
			broken = true
			msg += fmt.Sprintf("\tfailed to iterate tasks: %s\n", err)
		}
		return sdk.FormatInvariant(types.ModuleName, "escrow-balance", msg), broken
	}
}

// StatusIndexInvariant checks every task sits in exactly its own status
// bucket and that only open tasks are in the deadline index.
func StatusIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		store := k.getStore(ctx)
		tasks := 0
		err := k.IterateTaskRequests(ctx, func(addr sdk.AccAddress, task types.TaskRequest) bool {
			tasks++
			for _, s := range types.AllTaskStatuses {
				if store.Has(types.TaskByStatusKey(s, addr)) != (s == task.Status) {
					broken = true
					msg += fmt.Sprintf("\ttask %s (%s) status index wrong for %s\n", addr, task.Status, s)
				}
			}
			if store.Has(types.OpenTaskDeadlineKey(task.Deadline, addr)) != (task.Status == types.TaskStatusOpen) {
				broken = true
				msg += fmt.Sprintf("\ttask %s (%s) deadline index wrong\n", addr, task.Status)
			}
			return false
		})
		if err != nil {
			broken = true
			msg += fmt.Sprintf("\tfailed to iterate tasks: %s\n", err)
		}

		indexed := 0
		it := storetypes.KVStorePrefixIterator(store, types.TasksByStatusPrefix)
		for ; it.Valid(); it.Next() {
			indexed++
		}
		it.Close()
		if indexed != tasks {
			broken = true
			msg += fmt.Sprintf("\tstatus index holds %d entries for %d tasks\n", indexed, tasks)
		}

		return sdk.FormatInvariant(types.ModuleName, "status-index", msg), broken
	}
}

// CompletedCountInvariant checks each listing's completion counter against
// the completed tasks that reference it.
func CompletedCountInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		completed := make(map[string]uint64)
		err := k.IterateTaskRequests(ctx, func(_ sdk.AccAddress, task types.TaskRequest) bool {
			if task.Status == types.TaskStatusCompleted {
				completed[task.ServiceListing.String()]++
			}
			return false
		})
		if err == nil {
			err = k.IterateServiceListings(ctx, func(addr sdk.AccAddress, l types.ServiceListing) bool {
				if got := completed[addr.String()]; got != l.TasksCompleted {
					broken = true
					msg += fmt.Sprintf("\tlisting %s counts %d, %d tasks completed\n", addr, l.TasksCompleted, got)
				}
				return false
			})
		}
		if err != nil {
			broken = true
			msg += fmt.Sprintf("\tfailed to iterate: %s\n", err)
		}
		return sdk.FormatInvariant(types.ModuleName, "completed-count", msg), broken
	}
}
