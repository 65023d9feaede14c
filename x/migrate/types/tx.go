package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	MigratePosition(context.Context, *MsgMigratePosition) (*MsgMigratePositionResponse, error)
	ClaimPosition(context.Context, *MsgClaimPosition) (*MsgClaimPositionResponse, error)
	FulfillRandomness(context.Context, *MsgFulfillRandomness) (*MsgFulfillRandomnessResponse, error)
	SetMinimumDeposit(context.Context, *MsgSetMinimumDeposit) (*MsgSetMinimumDepositResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Response types

// MsgMigratePositionResponse defines the response for MigratePosition
type MsgMigratePositionResponse struct {
	ReceiptDenom  string   `json:"receipt_denom"`
	ReceiptAmount math.Int `json:"receipt_amount"`
	RequestId     uint64   `json:"request_id"`
}

// MsgClaimPositionResponse defines the response for ClaimPosition
type MsgClaimPositionResponse struct {
	ReceiptDenom  string   `json:"receipt_denom"`
	ReceiptAmount math.Int `json:"receipt_amount"`
}

// MsgFulfillRandomnessResponse defines the response for FulfillRandomness
type MsgFulfillRandomnessResponse struct {
	ClassId string `json:"class_id"`
	NftId   string `json:"nft_id"`
}

// MsgSetMinimumDepositResponse defines the response for SetMinimumDeposit
type MsgSetMinimumDepositResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
