package types

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func validPosition() Position {
	return Position{
		Account:       validAddress,
		Denom:         "uatom",
		ReceiptDenom:  "ayuatom",
		ReceiptAmount: math.NewInt(1000),
		CooldownStart: time.Unix(1700000000, 0).UTC(),
	}
}

func TestGenesisValidate(t *testing.T) {
	tests := []struct {
		name     string
		genState GenesisState
		wantErr  bool
	}{
		{
			name:     "default is valid",
			genState: *DefaultGenesis(),
		},
		{
			name: "valid populated state",
			genState: GenesisState{
				Params:    DefaultParams(),
				Positions: []Position{validPosition()},
				RequestRoutes: []RequestRoute{
					{RequestId: 1, Requester: validAddress, Denom: "uatom"},
				},
				MinimumDeposits: []MinimumDeposit{
					{Denom: "uatom", Amount: math.NewInt(1000)},
				},
				NextRequestId: 2,
			},
		},
		{
			name: "zero next request id",
			genState: GenesisState{
				Params:        DefaultParams(),
				NextRequestId: 0,
			},
			wantErr: true,
		},
		{
			name: "invalid params",
			genState: GenesisState{
				Params:        Params{CooldownSeconds: 0},
				NextRequestId: 1,
			},
			wantErr: true,
		},
		{
			name: "duplicate position pair",
			genState: GenesisState{
				Params:        DefaultParams(),
				Positions:     []Position{validPosition(), validPosition()},
				NextRequestId: 1,
			},
			wantErr: true,
		},
		{
			name: "route id exceeds counter",
			genState: GenesisState{
				Params: DefaultParams(),
				RequestRoutes: []RequestRoute{
					{RequestId: 5, Requester: validAddress, Denom: "uatom"},
				},
				NextRequestId: 3,
			},
			wantErr: true,
		},
		{
			name: "duplicate route id",
			genState: GenesisState{
				Params: DefaultParams(),
				RequestRoutes: []RequestRoute{
					{RequestId: 1, Requester: validAddress, Denom: "uatom"},
					{RequestId: 1, Requester: validAddress, Denom: "uosmo"},
				},
				NextRequestId: 2,
			},
			wantErr: true,
		},
		{
			name: "duplicate minimum deposit denom",
			genState: GenesisState{
				Params: DefaultParams(),
				MinimumDeposits: []MinimumDeposit{
					{Denom: "uatom", Amount: math.NewInt(1)},
					{Denom: "uatom", Amount: math.NewInt(2)},
				},
				NextRequestId: 1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.genState.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
