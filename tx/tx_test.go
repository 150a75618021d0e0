package tx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalGovTxDispatch(t *testing.T) {
	gtx := &GovTx{
		Version: GovTxVersion1,
		Type:    GovTxTypeVote,
		Sender:  "0x0000000000000000000000000000000000000001",
		Tx:      &VoteTx{Proposal: 7, Choice: 1},
	}
	dat, err := MarshalGovTx(gtx)
	require.Nil(t, err)

	decoded, err := UnmarshalGovTx(dat)
	require.Nil(t, err)
	require.Equal(t, GovTxTypeVote, decoded.Type)
	require.Equal(t, gtx.Sender, decoded.Sender)
	vt, ok := decoded.Tx.(*VoteTx)
	require.True(t, ok)
	require.Equal(t, uint64(7), vt.Proposal)
	require.Equal(t, uint64(1), vt.Choice)
}

func TestUnmarshalGovTxCreateProposal(t *testing.T) {
	gtx := &GovTx{
		Version: GovTxVersion1,
		Type:    GovTxTypeCreateProposal,
		Sender:  "0x0000000000000000000000000000000000000002",
		Tx: &CreateProposalTx{
			Title:   "upgrade",
			Choices: []string{"yes", "no"},
		},
	}
	dat, err := MarshalGovTx(gtx)
	require.Nil(t, err)

	decoded, err := UnmarshalGovTx(dat)
	require.Nil(t, err)
	ct, ok := decoded.Tx.(*CreateProposalTx)
	require.True(t, ok)
	require.Equal(t, "upgrade", ct.Title)
	require.Equal(t, []string{"yes", "no"}, ct.Choices)
}

func TestUnmarshalGovTxUnknownType(t *testing.T) {
	dat, err := json.Marshal(map[string]any{"type": 99})
	require.Nil(t, err)
	_, err = UnmarshalGovTx(dat)
	require.Equal(t, ErrUnsupportedTxType, err)

	_, err = UnmarshalGovTx([]byte("not json"))
	require.Equal(t, ErrUnsupportedTxType, err)
}

func TestSigDataStable(t *testing.T) {
	gtx := &GovTx{
		Version: GovTxVersion1,
		Type:    GovTxTypeSetPause,
		Sender:  "0x0000000000000000000000000000000000000003",
		Tx:      &SetPauseTx{Paused: true},
		Sig:     [][]byte{{1, 2, 3}},
	}
	d1, err := gtx.SigData([]byte("dao-test"))
	require.Nil(t, err)
	// the carried signature does not feed its own signing payload
	gtx.Sig = nil
	d2, err := gtx.SigData([]byte("dao-test"))
	require.Nil(t, err)
	require.Equal(t, d1, d2)
}
