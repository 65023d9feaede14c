package types

const (
	// ModuleName defines the module name
	ModuleName = "rewardvault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// CollectibleRecord is one donated collectible in the vault's append-only
// arena. Records are never removed: a distributed collectible is only marked
// claimed and dropped from the unclaimed index set, so donation history and
// conservation checks stay intact.
type CollectibleRecord struct {
	ClassId string `json:"class_id"`
	NftId   string `json:"nft_id"`
	Claimed bool   `json:"claimed"`
}

// Validate checks a collectible record.
func (r CollectibleRecord) Validate() error {
	if r.ClassId == "" {
		return ErrInvalidCollectible.Wrap("class id cannot be empty")
	}
	if r.NftId == "" {
		return ErrInvalidCollectible.Wrap("nft id cannot be empty")
	}
	return nil
}
