package tx

import (
	"encoding/json"
)

// GovTx wraps a single governance operation. Sender is the caller's address;
// authentication happens at the transport boundary, the engine trusts it.
type GovTx struct {
	Version uint8     `json:"version"`
	Type    GovTxType `json:"type"`
	Sender  string    `json:"sender"`
	Tx      any       `json:"tx"`
	Sig     [][]byte  `json:"sig"`
}

type CreateProposalTx struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []string `json:"choices"`
}

type SelectProposalTx struct {
	Proposal    uint64   `json:"proposal"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Choices     []string `json:"choices"`
}

type CancelProposalTx struct {
	Proposal uint64 `json:"proposal"`
}

type UpdateStatusTx struct {
	Proposal uint64 `json:"proposal"`
	Status   uint64 `json:"status"`
}

type VoteTx struct {
	Proposal uint64 `json:"proposal"`
	Choice   uint64 `json:"choice"`
}

type UpdateThresholdsTx struct {
	VIP    uint64 `json:"vip"`
	Gold   uint64 `json:"gold"`
	Silver uint64 `json:"silver"`
	Bronze uint64 `json:"bronze"`
}

type SetMaxPercentageTx struct {
	Percentage uint64 `json:"percentage"`
}

type SetVotingDurationTx struct {
	Days uint64 `json:"days"`
}

type SetVoteMethodTx struct {
	Method uint8 `json:"method"`
}

type SetPauseTx struct {
	Paused bool `json:"paused"`
}

type SetAdminTx struct {
	Admin string `json:"admin"`
}

type govTxTmpl[Tx any] struct {
	Version uint8     `json:"version"`
	Type    GovTxType `json:"type"`
	Sender  string    `json:"sender"`
	Tx      Tx        `json:"tx"`
	Sig     [][]byte  `json:"sig"`
}

// SigData is the byte string a caller signs; the signature is carried for
// the host transport and is not verified by the engine itself.
func (tx *GovTx) SigData(ext []byte) (dat []byte, err error) {
	ntx := *tx
	ntx.Sig = [][]byte{ext}
	dat, err = json.Marshal(ntx)
	return
}

func parseGovTxType(dat []byte) GovTxType {
	var tx struct {
		Type GovTxType `json:"type"`
	}
	err := json.Unmarshal(dat, &tx)
	if err != nil {
		return GovTxTypeUnknown
	}
	return tx.Type
}

func unmarshalGovTx[Tx any](dat []byte) (gtx *GovTx, err error) {
	var txt govTxTmpl[Tx]
	err = json.Unmarshal(dat, &txt)
	if err != nil {
		return
	}
	gtx = new(GovTx)
	gtx.Version = txt.Version
	gtx.Type = txt.Type
	gtx.Sender = txt.Sender
	gtx.Tx = &txt.Tx
	gtx.Sig = txt.Sig
	return
}

func UnmarshalGovTx(dat []byte) (gtx *GovTx, err error) {
	tp := parseGovTxType(dat)
	switch tp {
	case GovTxTypeCreateProposal:
		return unmarshalGovTx[CreateProposalTx](dat)
	case GovTxTypeSelectProposal:
		return unmarshalGovTx[SelectProposalTx](dat)
	case GovTxTypeCancelProposal:
		return unmarshalGovTx[CancelProposalTx](dat)
	case GovTxTypeUpdateStatus:
		return unmarshalGovTx[UpdateStatusTx](dat)
	case GovTxTypeVote:
		return unmarshalGovTx[VoteTx](dat)
	case GovTxTypeUpdateThresholds:
		return unmarshalGovTx[UpdateThresholdsTx](dat)
	case GovTxTypeSetMaxPercentage:
		return unmarshalGovTx[SetMaxPercentageTx](dat)
	case GovTxTypeSetVotingDuration:
		return unmarshalGovTx[SetVotingDurationTx](dat)
	case GovTxTypeSetVoteMethod:
		return unmarshalGovTx[SetVoteMethodTx](dat)
	case GovTxTypeSetPause:
		return unmarshalGovTx[SetPauseTx](dat)
	case GovTxTypeSetAdmin:
		return unmarshalGovTx[SetAdminTx](dat)
	default:
		err = ErrUnsupportedTxType
	}
	return
}

func MarshalGovTx(gtx *GovTx) (dat []byte, err error) {
	return json.Marshal(gtx)
}
