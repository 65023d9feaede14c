package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

// WithPairLock executes fn under a non-reentrant lock scoped to an
// (account, denom) pair. Migrate and claim both run their whole flow inside
// this lock: migrate calls out to the normalizer and the custodian before the
// ledger is finalized, and claim transfers receipt tokens out, so a malicious
// collaborator must not be able to re-enter either flow for the same pair
// mid-flight. The lock lives in the KVStore so it holds across any nested
// module calls sharing the context, and a failed operation rolls the lock
// back together with the rest of its writes.
func (k Keeper) WithPairLock(ctx context.Context, account sdk.AccAddress, denom string, operation string, fn func() error) error {
	lockKey := fmt.Sprintf("%s/%s", account.String(), denom)

	if err := k.acquirePairLock(ctx, lockKey, operation); err != nil {
		return err
	}
	defer k.releasePairLock(ctx, lockKey)

	return fn()
}

// acquirePairLock attempts to acquire a pair lock from the KVStore.
func (k Keeper) acquirePairLock(ctx context.Context, lockKey, operation string) error {
	store := k.getStore(ctx)
	key := types.ReentrancyLockKey(lockKey)

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("pair %s is locked during %s", lockKey, operation)
	}

	store.Set(key, []byte{0x01})
	return nil
}

// releasePairLock releases a pair lock.
func (k Keeper) releasePairLock(ctx context.Context, lockKey string) {
	store := k.getStore(ctx)
	store.Delete(types.ReentrancyLockKey(lockKey))
}
