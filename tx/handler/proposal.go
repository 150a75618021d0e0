package handler

import (
	"context"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/state"
	"github.com/calehh/dao-app/tx"
	"github.com/calehh/dao-app/types"
)

type CreateProposalTxHandler struct {
	logger cosmoslog.Logger
}

func NewCreateProposalTxHandler(logger cosmoslog.Logger) (h *CreateProposalTxHandler) {
	logger = logger.With("module", "proposalTx")
	h = &CreateProposalTxHandler{
		logger: logger,
	}
	return
}

func (h *CreateProposalTxHandler) Check(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (err error) {
	stx := gtx.Tx.(*tx.CreateProposalTx)
	_, err = st.CreateProposal(stx, gtx.Sender, now, true)
	if err != nil {
		h.logger.Info("CheckTx CreateProposalTx fail", "err", err)
	}
	return
}

func (h *CreateProposalTxHandler) Deliver(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (res *types.Event, err error) {
	stx := gtx.Tx.(*tx.CreateProposalTx)
	event, err := st.CreateProposal(stx, gtx.Sender, now, false)
	if err != nil {
		return nil, err
	}
	if event != nil {
		ev := types.EncodeEventProposalCreated(event)
		res = &ev
	}
	return
}

type SelectProposalTxHandler struct {
	logger cosmoslog.Logger
}

func NewSelectProposalTxHandler(logger cosmoslog.Logger) (h *SelectProposalTxHandler) {
	logger = logger.With("module", "proposalTx")
	h = &SelectProposalTxHandler{
		logger: logger,
	}
	return
}

func (h *SelectProposalTxHandler) Check(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (err error) {
	stx := gtx.Tx.(*tx.SelectProposalTx)
	_, err = st.SelectProposal(stx, gtx.Sender, now, true)
	if err != nil {
		h.logger.Info("CheckTx SelectProposalTx fail", "err", err)
	}
	return
}

func (h *SelectProposalTxHandler) Deliver(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (res *types.Event, err error) {
	stx := gtx.Tx.(*tx.SelectProposalTx)
	event, err := st.SelectProposal(stx, gtx.Sender, now, false)
	if err != nil {
		return nil, err
	}
	if event != nil {
		ev := types.EncodeEventSessionClosed(event)
		res = &ev
	}
	return
}

type CancelProposalTxHandler struct {
	logger cosmoslog.Logger
}

func NewCancelProposalTxHandler(logger cosmoslog.Logger) (h *CancelProposalTxHandler) {
	logger = logger.With("module", "proposalTx")
	h = &CancelProposalTxHandler{
		logger: logger,
	}
	return
}

func (h *CancelProposalTxHandler) Check(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (err error) {
	stx := gtx.Tx.(*tx.CancelProposalTx)
	_, err = st.CancelProposal(stx, gtx.Sender, now, true)
	if err != nil {
		h.logger.Info("CheckTx CancelProposalTx fail", "err", err)
	}
	return
}

func (h *CancelProposalTxHandler) Deliver(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (res *types.Event, err error) {
	stx := gtx.Tx.(*tx.CancelProposalTx)
	event, err := st.CancelProposal(stx, gtx.Sender, now, false)
	if err != nil {
		return nil, err
	}
	if event != nil {
		ev := types.EncodeEventProposalCancelled(event)
		res = &ev
	}
	return
}

type UpdateStatusTxHandler struct {
	logger cosmoslog.Logger
}

func NewUpdateStatusTxHandler(logger cosmoslog.Logger) (h *UpdateStatusTxHandler) {
	logger = logger.With("module", "proposalTx")
	h = &UpdateStatusTxHandler{
		logger: logger,
	}
	return
}

func (h *UpdateStatusTxHandler) Check(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (err error) {
	stx := gtx.Tx.(*tx.UpdateStatusTx)
	_, err = st.UpdateProposalStatus(stx, gtx.Sender, now, true)
	if err != nil {
		h.logger.Info("CheckTx UpdateStatusTx fail", "err", err)
	}
	return
}

func (h *UpdateStatusTxHandler) Deliver(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (res *types.Event, err error) {
	stx := gtx.Tx.(*tx.UpdateStatusTx)
	event, err := st.UpdateProposalStatus(stx, gtx.Sender, now, false)
	if err != nil {
		return nil, err
	}
	if event != nil {
		ev := types.EncodeEventProposalStatus(event)
		res = &ev
	}
	return
}
