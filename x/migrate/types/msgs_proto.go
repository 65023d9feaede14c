package types

import (
	proto "github.com/cosmos/gogoproto/proto"
)

// proto.Message plumbing for the hand-written messages so they satisfy
// sdk.Msg and register with the interface registry.

func (m *MsgMigratePosition) Reset()         { *m = MsgMigratePosition{} }
func (m *MsgMigratePosition) String() string { return proto.CompactTextString(m) }
func (*MsgMigratePosition) ProtoMessage()    {}

func (m *MsgClaimPosition) Reset()         { *m = MsgClaimPosition{} }
func (m *MsgClaimPosition) String() string { return proto.CompactTextString(m) }
func (*MsgClaimPosition) ProtoMessage()    {}

func (m *MsgFulfillRandomness) Reset()         { *m = MsgFulfillRandomness{} }
func (m *MsgFulfillRandomness) String() string { return proto.CompactTextString(m) }
func (*MsgFulfillRandomness) ProtoMessage()    {}

func (m *MsgSetMinimumDeposit) Reset()         { *m = MsgSetMinimumDeposit{} }
func (m *MsgSetMinimumDeposit) String() string { return proto.CompactTextString(m) }
func (*MsgSetMinimumDeposit) ProtoMessage()    {}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateParams) ProtoMessage()    {}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()    {}
