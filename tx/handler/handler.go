package handler

import (
	"context"

	"github.com/calehh/dao-app/state"
	"github.com/calehh/dao-app/tx"
	"github.com/calehh/dao-app/types"
)

// TxHandler validates and applies one governance operation kind against a
// working state. Check must leave the state untouched; Deliver mutates it
// and returns the event to publish.
type TxHandler interface {
	Check(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) error
	Deliver(ctx context.Context, st *state.State, gtx *tx.GovTx, now int64) (event *types.Event, err error)
}
