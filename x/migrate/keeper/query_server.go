package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/burrow-chain/burrow/x/migrate/types"
)

type queryServer struct {
	*Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Position queries a single position by account and denom
func (qs queryServer) Position(goCtx context.Context, req *types.QueryPositionRequest) (*types.QueryPositionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	account, err := sdk.AccAddressFromBech32(req.Account)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account address: %s", err)
	}

	if req.Denom == "" {
		return nil, status.Error(codes.InvalidArgument, "denom cannot be empty")
	}

	if !qs.HasPosition(goCtx, account, req.Denom) {
		return nil, status.Errorf(codes.NotFound, "no position for %s/%s", req.Account, req.Denom)
	}

	position, err := qs.GetPosition(goCtx, account, req.Denom)
	if err != nil {
		return nil, err
	}

	return &types.QueryPositionResponse{Position: position}, nil
}

// Positions queries all positions held by an account
func (qs queryServer) Positions(goCtx context.Context, req *types.QueryPositionsRequest) (*types.QueryPositionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	account, err := sdk.AccAddressFromBech32(req.Account)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account address: %s", err)
	}

	positions, err := qs.GetAccountPositions(goCtx, account)
	if err != nil {
		return nil, err
	}

	return &types.QueryPositionsResponse{Positions: positions}, nil
}

// MinimumDeposit queries a denom's configured minimum
func (qs queryServer) MinimumDeposit(goCtx context.Context, req *types.QueryMinimumDepositRequest) (*types.QueryMinimumDepositResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.Denom == "" {
		return nil, status.Error(codes.InvalidArgument, "denom cannot be empty")
	}

	minimum, configured := qs.GetMinimumDeposit(goCtx, req.Denom)
	if !configured {
		return nil, status.Errorf(codes.NotFound, "no minimum configured for %s", req.Denom)
	}

	return &types.QueryMinimumDepositResponse{
		MinimumDeposit: types.MinimumDeposit{Denom: req.Denom, Amount: minimum},
	}, nil
}

// MinimumDeposits queries all configured minimums
func (qs queryServer) MinimumDeposits(goCtx context.Context, req *types.QueryMinimumDepositsRequest) (*types.QueryMinimumDepositsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	minimums, err := qs.GetAllMinimumDeposits(goCtx)
	if err != nil {
		return nil, err
	}

	return &types.QueryMinimumDepositsResponse{MinimumDeposits: minimums}, nil
}

// RequestRoute queries a live randomness request route
func (qs queryServer) RequestRoute(goCtx context.Context, req *types.QueryRequestRouteRequest) (*types.QueryRequestRouteResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if req.RequestId == 0 {
		return nil, status.Error(codes.InvalidArgument, "request id cannot be zero")
	}

	route, found := qs.GetRequestRoute(goCtx, req.RequestId)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no live route for request %d", req.RequestId)
	}

	return &types.QueryRequestRouteResponse{Route: route}, nil
}

// Params queries the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: params}, nil
}
