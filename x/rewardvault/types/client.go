package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Collectibles(ctx context.Context, in *QueryCollectiblesRequest, opts ...grpc.CallOption) (*QueryCollectiblesResponse, error)
	UnclaimedCount(ctx context.Context, in *QueryUnclaimedCountRequest, opts ...grpc.CallOption) (*QueryUnclaimedCountResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Collectibles(ctx context.Context, in *QueryCollectiblesRequest, opts ...grpc.CallOption) (*QueryCollectiblesResponse, error) {
	out := new(QueryCollectiblesResponse)
	err := c.cc.Invoke(ctx, "/burrow.rewardvault.v1.Query/Collectibles", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) UnclaimedCount(ctx context.Context, in *QueryUnclaimedCountRequest, opts ...grpc.CallOption) (*QueryUnclaimedCountResponse, error) {
	out := new(QueryUnclaimedCountResponse)
	err := c.cc.Invoke(ctx, "/burrow.rewardvault.v1.Query/UnclaimedCount", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
