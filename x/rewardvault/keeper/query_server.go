package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/burrow-chain/burrow/x/rewardvault/types"
)

type queryServer struct {
	*Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Collectibles returns arena records, optionally filtered to unclaimed ones.
func (q queryServer) Collectibles(ctx context.Context, req *types.QueryCollectiblesRequest) (*types.QueryCollectiblesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	records := q.GetAllRecords(ctx)
	if req.UnclaimedOnly {
		filtered := records[:0]
		for _, record := range records {
			if !record.Claimed {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	return &types.QueryCollectiblesResponse{Records: records}, nil
}

// UnclaimedCount returns the vault's counters.
func (q queryServer) UnclaimedCount(ctx context.Context, req *types.QueryUnclaimedCountRequest) (*types.QueryUnclaimedCountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	return &types.QueryUnclaimedCountResponse{
		Unclaimed:    q.Keeper.UnclaimedCount(ctx),
		TotalDonated: q.TotalDonated(ctx),
	}, nil
}
