package types

// Event types for the migrate module
const (
	EventTypePositionOpened      = "position_opened"
	EventTypePositionClaimed     = "position_claimed"
	EventTypeRandomnessRequested = "randomness_requested"
	EventTypeRewardDistributed   = "reward_distributed"
	EventTypeMinimumDepositSet   = "minimum_deposit_set"
	EventTypeParamsUpdated       = "params_updated"

	AttributeKeyAccount       = "account"
	AttributeKeyDenom         = "denom"
	AttributeKeyAmount        = "amount"
	AttributeKeyReceiptDenom  = "receipt_denom"
	AttributeKeyReceiptAmount = "receipt_amount"
	AttributeKeyCooldownEnd   = "cooldown_end"
	AttributeKeyRequestId     = "request_id"
	AttributeKeyClassId       = "class_id"
	AttributeKeyNftId         = "nft_id"
	AttributeKeyMinimum       = "minimum"
)
