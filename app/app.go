package app

import (
	"context"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/config"
	"github.com/calehh/dao-app/observer"
	"github.com/calehh/dao-app/state"
	"github.com/calehh/dao-app/tx"
	"github.com/calehh/dao-app/tx/handler"
	"github.com/calehh/dao-app/types"
	"github.com/ethereum/go-ethereum/common"
)

type GovApp struct {
	cfg    *config.DAOAppConfig
	logger cosmoslog.Logger

	db       *state.StateDB
	txHdlrs  map[tx.GovTxType]handler.TxHandler
	queriers map[string]Querier
}

func NewGovApp(cfg *config.DAOAppConfig, logger cosmoslog.Logger) (app *GovApp, err error) {
	logger = logger.With("module", "app")

	dir := cfg.Home + "/data"
	db, err := state.NewStateDB(dir, logger)
	if err != nil {
		return nil, err
	}
	return newGovApp(cfg, logger, db)
}

// NewMemGovApp wires the app over an in-memory state store, for tests.
func NewMemGovApp(cfg *config.DAOAppConfig, logger cosmoslog.Logger) (app *GovApp, err error) {
	db, err := state.NewMemStateDB(logger)
	if err != nil {
		return nil, err
	}
	return newGovApp(cfg, logger.With("module", "app"), db)
}

func newGovApp(cfg *config.DAOAppConfig, logger cosmoslog.Logger, db *state.StateDB) (app *GovApp, err error) {
	app = &GovApp{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		txHdlrs:  make(map[tx.GovTxType]handler.TxHandler),
		queriers: make(map[string]Querier),
	}
	app.registerTxHandler()
	app.registerQuerier()
	return
}

func (app *GovApp) Stop() {
	err := app.db.Close()
	if err != nil {
		app.logger.Error("close db fail", "err", err)
	}
	app.logger.Info("DAO app stopped")
}

func (app *GovApp) DB() *state.StateDB {
	return app.db
}

// InitGenesis seeds a fresh store from the genesis document; it is a no-op
// error if the store already carries state.
func (app *GovApp) InitGenesis(doc *types.GenesisDoc) (err error) {
	if app.db.Initialized() {
		return nil
	}
	hash, err := app.db.InitGenesis(doc)
	if err != nil {
		app.logger.Error("init genesis fail", "err", err)
		return err
	}
	app.logger.Info("genesis applied", "chainId", doc.ChainID, "admin", doc.Admin, "hash", hash.Hex())
	return nil
}

func (app *GovApp) registerTxHandler() {
	paramsHdlr := handler.NewParamsTxHandler(app.logger)
	app.txHdlrs = map[tx.GovTxType]handler.TxHandler{
		tx.GovTxTypeCreateProposal:    handler.NewCreateProposalTxHandler(app.logger),
		tx.GovTxTypeSelectProposal:    handler.NewSelectProposalTxHandler(app.logger),
		tx.GovTxTypeCancelProposal:    handler.NewCancelProposalTxHandler(app.logger),
		tx.GovTxTypeUpdateStatus:      handler.NewUpdateStatusTxHandler(app.logger),
		tx.GovTxTypeVote:              handler.NewVoteTxHandler(app.logger),
		tx.GovTxTypeUpdateThresholds:  paramsHdlr,
		tx.GovTxTypeSetMaxPercentage:  paramsHdlr,
		tx.GovTxTypeSetVotingDuration: paramsHdlr,
		tx.GovTxTypeSetVoteMethod:     paramsHdlr,
		tx.GovTxTypeSetPause:          paramsHdlr,
		tx.GovTxTypeSetAdmin:          paramsHdlr,
	}
}

// CheckTx validates an operation against the current state without
// applying it.
func (app *GovApp) CheckTx(ctx context.Context, gtx *tx.GovTx) (err error) {
	h, ok := app.txHdlrs[gtx.Type]
	if !ok {
		return tx.ErrUnsupportedTxType
	}
	return app.db.Check(func(st *state.State, now int64) error {
		return h.Check(ctx, st, gtx, now)
	})
}

// ExecuteTx applies one operation atomically and publishes the resulting
// event. All mutating entry points funnel through here, which keeps the
// serialized execution model in one place.
func (app *GovApp) ExecuteTx(ctx context.Context, gtx *tx.GovTx) (event *types.Event, err error) {
	h, ok := app.txHdlrs[gtx.Type]
	if !ok {
		return nil, tx.ErrUnsupportedTxType
	}
	hash, err := app.db.Execute(func(st *state.State, now int64) error {
		event, err = h.Deliver(ctx, st, gtx, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	app.logger.Debug("tx applied", "type", gtx.Type, "sender", gtx.Sender, "hash", hash.Hex())
	if event != nil {
		observer.Publish(*event)
	}
	return
}

// Admin returns the current admin address.
func (app *GovApp) Admin() common.Address {
	return common.HexToAddress(app.db.Header().Admin)
}
