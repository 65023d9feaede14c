package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error)
	Positions(ctx context.Context, in *QueryPositionsRequest, opts ...grpc.CallOption) (*QueryPositionsResponse, error)
	MinimumDeposit(ctx context.Context, in *QueryMinimumDepositRequest, opts ...grpc.CallOption) (*QueryMinimumDepositResponse, error)
	MinimumDeposits(ctx context.Context, in *QueryMinimumDepositsRequest, opts ...grpc.CallOption) (*QueryMinimumDepositsResponse, error)
	RequestRoute(ctx context.Context, in *QueryRequestRouteRequest, opts ...grpc.CallOption) (*QueryRequestRouteResponse, error)
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Position(ctx context.Context, in *QueryPositionRequest, opts ...grpc.CallOption) (*QueryPositionResponse, error) {
	out := new(QueryPositionResponse)
	err := c.cc.Invoke(ctx, "/burrow.migrate.v1.Query/Position", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Positions(ctx context.Context, in *QueryPositionsRequest, opts ...grpc.CallOption) (*QueryPositionsResponse, error) {
	out := new(QueryPositionsResponse)
	err := c.cc.Invoke(ctx, "/burrow.migrate.v1.Query/Positions", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) MinimumDeposit(ctx context.Context, in *QueryMinimumDepositRequest, opts ...grpc.CallOption) (*QueryMinimumDepositResponse, error) {
	out := new(QueryMinimumDepositResponse)
	err := c.cc.Invoke(ctx, "/burrow.migrate.v1.Query/MinimumDeposit", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) MinimumDeposits(ctx context.Context, in *QueryMinimumDepositsRequest, opts ...grpc.CallOption) (*QueryMinimumDepositsResponse, error) {
	out := new(QueryMinimumDepositsResponse)
	err := c.cc.Invoke(ctx, "/burrow.migrate.v1.Query/MinimumDeposits", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) RequestRoute(ctx context.Context, in *QueryRequestRouteRequest, opts ...grpc.CallOption) (*QueryRequestRouteResponse, error) {
	out := new(QueryRequestRouteResponse)
	err := c.cc.Invoke(ctx, "/burrow.migrate.v1.Query/RequestRoute", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/burrow.migrate.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
