package types

import (
	"context"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Position(context.Context, *QueryPositionRequest) (*QueryPositionResponse, error)
	Positions(context.Context, *QueryPositionsRequest) (*QueryPositionsResponse, error)
	MinimumDeposit(context.Context, *QueryMinimumDepositRequest) (*QueryMinimumDepositResponse, error)
	MinimumDeposits(context.Context, *QueryMinimumDepositsRequest) (*QueryMinimumDepositsResponse, error)
	RequestRoute(context.Context, *QueryRequestRouteRequest) (*QueryRequestRouteResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
}

// QueryPositionRequest is the request for a single position by pair
type QueryPositionRequest struct {
	Account string `json:"account"`
	Denom   string `json:"denom"`
}

// QueryPositionResponse returns a single position
type QueryPositionResponse struct {
	Position Position `json:"position"`
}

// QueryPositionsRequest is the request for all positions of an account
type QueryPositionsRequest struct {
	Account string `json:"account"`
}

// QueryPositionsResponse returns an account's positions
type QueryPositionsResponse struct {
	Positions []Position `json:"positions"`
}

// QueryMinimumDepositRequest is the request for a denom's minimum deposit
type QueryMinimumDepositRequest struct {
	Denom string `json:"denom"`
}

// QueryMinimumDepositResponse returns a denom's configured minimum
type QueryMinimumDepositResponse struct {
	MinimumDeposit MinimumDeposit `json:"minimum_deposit"`
}

// QueryMinimumDepositsRequest is the request for all configured minimums
type QueryMinimumDepositsRequest struct{}

// QueryMinimumDepositsResponse returns all configured minimums
type QueryMinimumDepositsResponse struct {
	MinimumDeposits []MinimumDeposit `json:"minimum_deposits"`
}

// QueryRequestRouteRequest is the request for an outstanding request route
type QueryRequestRouteRequest struct {
	RequestId uint64 `json:"request_id"`
}

// QueryRequestRouteResponse returns an outstanding request route
type QueryRequestRouteResponse struct {
	Route RequestRoute `json:"route"`
}

// QueryParamsRequest is the request for module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}
