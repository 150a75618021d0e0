package handler

import (
	"context"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/state"
	"github.com/calehh/dao-app/tx"
	"github.com/calehh/dao-app/types"
)

type VoteTxHandler struct {
	logger cosmoslog.Logger
}

func NewVoteTxHandler(logger cosmoslog.Logger) (h *VoteTxHandler) {
	logger = logger.With("module", "voteTx")
	h = &VoteTxHandler{
		logger: logger,
	}
	return
}

func (h *VoteTxHandler) Check(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (err error) {
	stx := gtx.Tx.(*tx.VoteTx)
	_, err = st.Vote(stx, gtx.Sender, now, true)
	if err != nil {
		h.logger.Info("CheckTx VoteTx fail", "err", err)
	}
	return
}

func (h *VoteTxHandler) Deliver(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (res *types.Event, err error) {
	stx := gtx.Tx.(*tx.VoteTx)
	event, err := st.Vote(stx, gtx.Sender, now, false)
	if err != nil {
		return nil, err
	}
	if event != nil {
		ev := types.EncodeEventVote(event)
		res = &ev
	}
	return
}
