package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventVoteRoundTrip(t *testing.T) {
	ev := &EventVote{
		Proposal:  3,
		Voter:     "0x0000000000000000000000000000000000000001",
		Choice:    1,
		Weight:    30_000,
		Method:    VoteMethodCappedPercentage,
		Timestamp: 1700000000,
	}
	decoded := DecodeEventVote(EncodeEventVote(ev))
	require.NotNil(t, decoded)
	require.Equal(t, ev, decoded)
}

func TestEventSessionClosedRoundTrip(t *testing.T) {
	ev := &EventSessionClosed{
		Session:   2,
		Selected:  5,
		Rejected:  []uint64{3, 4, 6},
		StartTime: 1700000000,
		EndTime:   1700604800,
	}
	decoded := DecodeEventSessionClosed(EncodeEventSessionClosed(ev))
	require.NotNil(t, decoded)
	require.Equal(t, ev, decoded)
}

func TestEventSessionClosedNoRejected(t *testing.T) {
	ev := &EventSessionClosed{Session: 1, Selected: 1}
	decoded := DecodeEventSessionClosed(EncodeEventSessionClosed(ev))
	require.NotNil(t, decoded)
	require.Equal(t, []uint64{}, decoded.Rejected)
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	ev := Event{
		Type: EventVoteType,
		Attributes: []EventAttribute{
			{Key: "proposal", Value: "not a number"},
		},
	}
	require.Nil(t, DecodeEventVote(ev))
}
