package types

import (
	proto "github.com/cosmos/gogoproto/proto"
)

// proto.Message plumbing for the hand-written messages so they satisfy
// sdk.Msg and register with the interface registry.

func (m *MsgDonateCollectible) Reset()         { *m = MsgDonateCollectible{} }
func (m *MsgDonateCollectible) String() string { return proto.CompactTextString(m) }
func (*MsgDonateCollectible) ProtoMessage()    {}

func (m *MsgDonateCollectibleBatch) Reset()         { *m = MsgDonateCollectibleBatch{} }
func (m *MsgDonateCollectibleBatch) String() string { return proto.CompactTextString(m) }
func (*MsgDonateCollectibleBatch) ProtoMessage()    {}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()    {}
