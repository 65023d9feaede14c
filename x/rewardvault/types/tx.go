package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	DonateCollectible(context.Context, *MsgDonateCollectible) (*MsgDonateCollectibleResponse, error)
	DonateCollectibleBatch(context.Context, *MsgDonateCollectibleBatch) (*MsgDonateCollectibleBatchResponse, error)
}

// MsgDonateCollectibleResponse defines the response for DonateCollectible
type MsgDonateCollectibleResponse struct{}

// MsgDonateCollectibleBatchResponse defines the response for DonateCollectibleBatch
type MsgDonateCollectibleBatchResponse struct {
	Donated uint64 `json:"donated"`
}
