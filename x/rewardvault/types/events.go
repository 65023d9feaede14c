package types

// Event types for the reward vault module
const (
	EventTypeCollectibleDonated  = "collectible_donated"
	EventTypeCollectibleSelected = "collectible_selected"
	EventTypeCollectibleReleased = "collectible_released"

	AttributeKeyDonor     = "donor"
	AttributeKeyRecipient = "recipient"
	AttributeKeyClassId   = "class_id"
	AttributeKeyNftId     = "nft_id"
	AttributeKeyUnclaimed = "unclaimed"
)
