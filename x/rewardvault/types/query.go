package types

import (
	"context"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Collectibles(context.Context, *QueryCollectiblesRequest) (*QueryCollectiblesResponse, error)
	UnclaimedCount(context.Context, *QueryUnclaimedCountRequest) (*QueryUnclaimedCountResponse, error)
}

// QueryCollectiblesRequest is the request for the full arena contents
type QueryCollectiblesRequest struct {
	// UnclaimedOnly filters out already-distributed collectibles.
	UnclaimedOnly bool `json:"unclaimed_only"`
}

// QueryCollectiblesResponse returns arena records
type QueryCollectiblesResponse struct {
	Records []CollectibleRecord `json:"records"`
}

// QueryUnclaimedCountRequest is the request for the unclaimed set size
type QueryUnclaimedCountRequest struct{}

// QueryUnclaimedCountResponse returns vault counters
type QueryUnclaimedCountResponse struct {
	Unclaimed    uint64 `json:"unclaimed"`
	TotalDonated uint64 `json:"total_donated"`
}
