package handler

import (
	"context"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/state"
	"github.com/calehh/dao-app/tx"
	"github.com/calehh/dao-app/types"
)

// ParamsTxHandler covers every admin parameter operation; they all reduce
// to one field update on the governance header and a dao-status event.
type ParamsTxHandler struct {
	logger cosmoslog.Logger
}

func NewParamsTxHandler(logger cosmoslog.Logger) (h *ParamsTxHandler) {
	logger = logger.With("module", "paramsTx")
	h = &ParamsTxHandler{
		logger: logger,
	}
	return
}

func (h *ParamsTxHandler) apply(st *state.State, gtx *tx.GovTx, now int64, checkOnly bool) (event *types.EventDAOStatus, err error) {
	switch stx := gtx.Tx.(type) {
	case *tx.UpdateThresholdsTx:
		return st.UpdateThresholds(stx, gtx.Sender, now, checkOnly)
	case *tx.SetMaxPercentageTx:
		return st.SetMaxPercentage(stx, gtx.Sender, now, checkOnly)
	case *tx.SetVotingDurationTx:
		return st.SetVotingDuration(stx, gtx.Sender, now, checkOnly)
	case *tx.SetVoteMethodTx:
		return st.SetVoteMethod(stx, gtx.Sender, now, checkOnly)
	case *tx.SetPauseTx:
		return st.SetPause(stx, gtx.Sender, now, checkOnly)
	case *tx.SetAdminTx:
		return st.SetAdmin(stx, gtx.Sender, now, checkOnly)
	}
	return nil, tx.ErrUnmatchedTxType
}

func (h *ParamsTxHandler) Check(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (err error) {
	_, err = h.apply(st, gtx, now, true)
	if err != nil {
		h.logger.Info("CheckTx params tx fail", "type", gtx.Type, "err", err)
	}
	return
}

func (h *ParamsTxHandler) Deliver(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (res *types.Event, err error) {
	event, err := h.apply(st, gtx, now, false)
	if err != nil {
		return nil, err
	}
	if event != nil {
		ev := types.EncodeEventDAOStatus(event)
		res = &ev
	}
	return
}
