package tx

import "errors"

type GovTxType uint8

const (
	GovTxTypeUnknown           GovTxType = 0
	GovTxTypeCreateProposal    GovTxType = 1
	GovTxTypeSelectProposal    GovTxType = 2
	GovTxTypeCancelProposal    GovTxType = 3
	GovTxTypeUpdateStatus      GovTxType = 4
	GovTxTypeVote              GovTxType = 5
	GovTxTypeUpdateThresholds  GovTxType = 6
	GovTxTypeSetMaxPercentage  GovTxType = 7
	GovTxTypeSetVotingDuration GovTxType = 8
	GovTxTypeSetVoteMethod     GovTxType = 9
	GovTxTypeSetPause          GovTxType = 10
	GovTxTypeSetAdmin          GovTxType = 11
)

const (
	GovTxVersion0 uint8 = 0
	GovTxVersion1 uint8 = 1
)

var (
	ErrInvalidTx         = errors.New("invalid tx")
	ErrUnsupportedTxType = errors.New("unsupported tx type")
	ErrUnmatchedTxType   = errors.New("unmatched tx type")

	ErrUnsupportedTxVersion = errors.New("unsupported tx version")
)
