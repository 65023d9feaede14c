package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgMigratePosition{}, "migrate/MsgMigratePosition", nil)
	cdc.RegisterConcrete(&MsgClaimPosition{}, "migrate/MsgClaimPosition", nil)
	cdc.RegisterConcrete(&MsgFulfillRandomness{}, "migrate/MsgFulfillRandomness", nil)
	cdc.RegisterConcrete(&MsgSetMinimumDeposit{}, "migrate/MsgSetMinimumDeposit", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "migrate/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgMigratePosition{},
		&MsgClaimPosition{},
		&MsgFulfillRandomness{},
		&MsgSetMinimumDeposit{},
		&MsgUpdateParams{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
