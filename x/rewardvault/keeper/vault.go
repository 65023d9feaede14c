package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

// GetRecord returns the arena record at index.
func (k Keeper) GetRecord(ctx context.Context, index uint64) (types.CollectibleRecord, bool) {
	store := k.getStore(ctx)

	bz := store.Get(types.RecordKey(index))
	if bz == nil {
		return types.CollectibleRecord{}, false
	}

	var record types.CollectibleRecord
	if err := json.Unmarshal(bz, &record); err != nil {
		return types.CollectibleRecord{}, false
	}
	return record, true
}

// setRecord writes the arena record at index.
func (k Keeper) setRecord(ctx context.Context, index uint64, record types.CollectibleRecord) error {
	store := k.getStore(ctx)

	bz, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal collectible record: %w", err)
	}

	store.Set(types.RecordKey(index), bz)
	return nil
}

// TotalDonated returns the arena length, counting claimed and unclaimed
// records alike.
func (k Keeper) TotalDonated(ctx context.Context) uint64 {
	store := k.getStore(ctx)

	bz := store.Get(types.RecordCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setTotalDonated(ctx context.Context, count uint64) {
	store := k.getStore(ctx)

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(types.RecordCountKey, bz)
}

// UnclaimedCount returns the number of collectibles still available for
// selection.
func (k Keeper) UnclaimedCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)

	bz := store.Get(types.UnclaimedCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setUnclaimedCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(types.UnclaimedCountKey, bz)
}

// unclaimedSlot returns the arena index stored in slot of the unclaimed set.
func (k Keeper) unclaimedSlot(ctx context.Context, slot uint64) (uint64, bool) {
	store := k.getStore(ctx)

	bz := store.Get(types.UnclaimedSlotKey(slot))
	if bz == nil {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

func (k Keeper) setUnclaimedSlot(ctx context.Context, slot, index uint64) {
	store := k.getStore(ctx)

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, index)
	store.Set(types.UnclaimedSlotKey(slot), bz)
}

func (k Keeper) deleteUnclaimedSlot(ctx context.Context, slot uint64) {
	store := k.getStore(ctx)
	store.Delete(types.UnclaimedSlotKey(slot))
}

// appendRecord appends a record to the arena and, when unclaimed, pushes its
// index onto the tail of the unclaimed set.
func (k Keeper) appendRecord(ctx context.Context, record types.CollectibleRecord) error {
	index := k.TotalDonated(ctx)
	if err := k.setRecord(ctx, index, record); err != nil {
		return err
	}
	k.setTotalDonated(ctx, index+1)

	if !record.Claimed {
		tail := k.UnclaimedCount(ctx)
		k.setUnclaimedSlot(ctx, tail, index)
		k.setUnclaimedCount(ctx, tail+1)
	}
	return nil
}

// Donate takes custody of a collectible owned by donor and registers it as an
// unclaimed reward.
func (k Keeper) Donate(ctx context.Context, donor sdk.AccAddress, classID, nftID string) error {
	owner := k.nftKeeper.GetOwner(ctx, classID, nftID)
	if !owner.Equals(donor) {
		return types.ErrNotCollectibleOwner.Wrapf("%s does not own %s/%s", donor.String(), classID, nftID)
	}

	if err := k.nftKeeper.Transfer(ctx, classID, nftID, k.GetModuleAddress()); err != nil {
		return fmt.Errorf("failed to take custody of collectible: %w", err)
	}

	if err := k.appendRecord(ctx, types.CollectibleRecord{
		ClassId: classID,
		NftId:   nftID,
		Claimed: false,
	}); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollectibleDonated,
			sdk.NewAttribute(types.AttributeKeyDonor, donor.String()),
			sdk.NewAttribute(types.AttributeKeyClassId, classID),
			sdk.NewAttribute(types.AttributeKeyNftId, nftID),
			sdk.NewAttribute(types.AttributeKeyUnclaimed, fmt.Sprintf("%d", k.UnclaimedCount(ctx))),
		),
	)

	metrics := GetVaultMetrics()
	metrics.DonationsTotal.Inc()
	metrics.UnclaimedGauge.Set(float64(k.UnclaimedCount(ctx)))

	k.Logger(ctx).Info("collectible donated",
		"donor", donor.String(),
		"class_id", classID,
		"nft_id", nftID,
	)

	return nil
}

// DonateBatch donates several collectibles atomically. Any failure aborts the
// whole batch; state changes are discarded by the caller's tx rollback.
func (k Keeper) DonateBatch(ctx context.Context, donor sdk.AccAddress, classIDs, nftIDs []string) (uint64, error) {
	if len(classIDs) != len(nftIDs) {
		return 0, types.ErrArrayLengthMismatch.Wrapf("%d class ids vs %d nft ids", len(classIDs), len(nftIDs))
	}

	for i := range classIDs {
		if err := k.Donate(ctx, donor, classIDs[i], nftIDs[i]); err != nil {
			return 0, fmt.Errorf("collectible %d: %w", i, err)
		}
	}
	return uint64(len(classIDs)), nil
}

// SelectAndRemove picks an unclaimed collectible uniformly from the random
// word, marks it claimed and removes it from the unclaimed set by swapping the
// last slot into the vacated one. Constant time regardless of vault size.
func (k Keeper) SelectAndRemove(ctx context.Context, randomWord uint64) (string, string, error) {
	count := k.UnclaimedCount(ctx)
	if count == 0 {
		return "", "", types.ErrNoRewardsAvailable
	}

	slot := randomWord % count
	index, ok := k.unclaimedSlot(ctx, slot)
	if !ok {
		return "", "", types.ErrRecordNotFound.Wrapf("unclaimed slot %d missing", slot)
	}

	record, ok := k.GetRecord(ctx, index)
	if !ok {
		return "", "", types.ErrRecordNotFound.Wrapf("arena index %d missing", index)
	}
	if record.Claimed {
		// The unclaimed set must never reference a claimed record.
		return "", "", types.ErrRewardAlreadyClaimed.Wrapf("arena index %d", index)
	}

	record.Claimed = true
	if err := k.setRecord(ctx, index, record); err != nil {
		return "", "", err
	}

	// Swap-remove: move the tail slot into the vacated one, then shrink.
	tail := count - 1
	if slot != tail {
		tailIndex, ok := k.unclaimedSlot(ctx, tail)
		if !ok {
			return "", "", types.ErrRecordNotFound.Wrapf("unclaimed slot %d missing", tail)
		}
		k.setUnclaimedSlot(ctx, slot, tailIndex)
	}
	k.deleteUnclaimedSlot(ctx, tail)
	k.setUnclaimedCount(ctx, tail)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollectibleSelected,
			sdk.NewAttribute(types.AttributeKeyClassId, record.ClassId),
			sdk.NewAttribute(types.AttributeKeyNftId, record.NftId),
			sdk.NewAttribute(types.AttributeKeyUnclaimed, fmt.Sprintf("%d", tail)),
		),
	)

	metrics := GetVaultMetrics()
	metrics.SelectionsTotal.Inc()
	metrics.UnclaimedGauge.Set(float64(tail))

	return record.ClassId, record.NftId, nil
}

// ReleaseCollectible transfers a vault-held collectible to the recipient.
func (k Keeper) ReleaseCollectible(ctx context.Context, classID, nftID string, recipient sdk.AccAddress) error {
	owner := k.nftKeeper.GetOwner(ctx, classID, nftID)
	if !owner.Equals(k.GetModuleAddress()) {
		return types.ErrNotCollectibleOwner.Wrapf("vault does not hold %s/%s", classID, nftID)
	}

	if err := k.nftKeeper.Transfer(ctx, classID, nftID, recipient); err != nil {
		return fmt.Errorf("failed to release collectible: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCollectibleReleased,
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyClassId, classID),
			sdk.NewAttribute(types.AttributeKeyNftId, nftID),
		),
	)

	GetVaultMetrics().ReleasesTotal.Inc()

	k.Logger(ctx).Info("collectible released",
		"recipient", recipient.String(),
		"class_id", classID,
		"nft_id", nftID,
	)

	return nil
}

// GetAllRecords returns the arena in index order.
func (k Keeper) GetAllRecords(ctx context.Context) []types.CollectibleRecord {
	total := k.TotalDonated(ctx)
	records := make([]types.CollectibleRecord, 0, total)
	for i := uint64(0); i < total; i++ {
		record, ok := k.GetRecord(ctx, i)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}
