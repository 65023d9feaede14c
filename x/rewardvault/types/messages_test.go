package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

var (
	validAddress   = "cosmos1zg69v7ys40x77y352eufp27daufrg4ncnjqz7q"
	invalidAddress = "invalid"
)

func TestMsgDonateCollectible_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *MsgDonateCollectible
		wantErr error
	}{
		{
			name: "valid message",
			msg:  NewMsgDonateCollectible(validAddress, "burrow.heroes", "hero-1"),
		},
		{
			name:    "invalid donor address",
			msg:     NewMsgDonateCollectible(invalidAddress, "burrow.heroes", "hero-1"),
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "empty class id",
			msg:     NewMsgDonateCollectible(validAddress, "", "hero-1"),
			wantErr: ErrInvalidCollectible,
		},
		{
			name:    "empty nft id",
			msg:     NewMsgDonateCollectible(validAddress, "burrow.heroes", ""),
			wantErr: ErrInvalidCollectible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMsgDonateCollectibleBatch_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *MsgDonateCollectibleBatch
		wantErr error
	}{
		{
			name: "valid batch",
			msg:  NewMsgDonateCollectibleBatch(validAddress, []string{"a", "b"}, []string{"1", "2"}),
		},
		{
			name:    "invalid donor address",
			msg:     NewMsgDonateCollectibleBatch(invalidAddress, []string{"a"}, []string{"1"}),
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "length mismatch",
			msg:     NewMsgDonateCollectibleBatch(validAddress, []string{"a"}, []string{"1", "2"}),
			wantErr: ErrArrayLengthMismatch,
		},
		{
			name:    "empty batch",
			msg:     NewMsgDonateCollectibleBatch(validAddress, []string{}, []string{}),
			wantErr: ErrInvalidCollectible,
		},
		{
			name:    "empty class id in batch",
			msg:     NewMsgDonateCollectibleBatch(validAddress, []string{"a", ""}, []string{"1", "2"}),
			wantErr: ErrInvalidCollectible,
		},
		{
			name:    "empty nft id in batch",
			msg:     NewMsgDonateCollectibleBatch(validAddress, []string{"a", "b"}, []string{"1", ""}),
			wantErr: ErrInvalidCollectible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDonateMsgs_GetSigners(t *testing.T) {
	donor, err := sdk.AccAddressFromBech32(validAddress)
	require.NoError(t, err)

	single := NewMsgDonateCollectible(validAddress, "burrow.heroes", "hero-1")
	require.Equal(t, []sdk.AccAddress{donor}, single.GetSigners())

	batch := NewMsgDonateCollectibleBatch(validAddress, []string{"a"}, []string{"1"})
	require.Equal(t, []sdk.AccAddress{donor}, batch.GetSigners())
}

func TestDonateMsgs_ResetClearsState(t *testing.T) {
	msg := NewMsgDonateCollectible(validAddress, "burrow.heroes", "hero-1")
	require.NotPanics(t, func() { _ = msg.String() })
	msg.Reset()
	require.Empty(t, msg.Donor)
	require.Empty(t, msg.ClassId)
}

func TestDonateMsgs_RouteAndType(t *testing.T) {
	single := NewMsgDonateCollectible(validAddress, "burrow.heroes", "hero-1")
	require.Equal(t, RouterKey, single.Route())
	require.Equal(t, "donate_collectible", single.Type())

	batch := NewMsgDonateCollectibleBatch(validAddress, []string{"a"}, []string{"1"})
	require.Equal(t, RouterKey, batch.Route())
	require.Equal(t, "donate_collectible_batch", batch.Type())
}
