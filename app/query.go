package app

import (
	"context"
	"encoding/json"
	"strings"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/state"
	"github.com/ethereum/go-ethereum/common"
)

type QueryRequest struct {
	Path string `json:"path"`
	Data []byte `json:"data"`
}

type QueryResponse struct {
	Code   uint32 `json:"code"`
	Height uint64 `json:"height"`
	Value  []byte `json:"value"`
}

type Querier interface {
	Query(ctx context.Context, req *QueryRequest) (res *QueryResponse, err error)
}

const (
	QueryPathAccount        = "/account/"
	QueryPathProposal       = "/proposal/"
	QueryPathActiveProposal = "/activeProposal/"
	QueryPathWinner         = "/winner/"
	QueryPathTier           = "/tier/"
	QueryPathParams         = "/params/"
)

func (app *GovApp) registerQuerier() {
	app.queriers = map[string]Querier{
		QueryPathAccount:        NewAccountQuerier(app.db, app.logger),
		QueryPathProposal:       NewProposalQuerier(app.db, app.logger),
		QueryPathActiveProposal: NewActiveProposalQuerier(app.db, app.logger),
		QueryPathWinner:         NewWinnerQuerier(app.db, app.logger),
		QueryPathTier:           NewTierQuerier(app.db, app.logger),
		QueryPathParams:         NewParamsQuerier(app.db, app.logger),
	}
}

func (app *GovApp) Query(ctx context.Context, req *QueryRequest) (res *QueryResponse, err error) {
	path := req.Path
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	q, ok := app.queriers[path]
	if !ok {
		res = &QueryResponse{}
		res.Code = 404
		return
	}
	res, err = q.Query(ctx, req)
	return
}

type AccountQuerier struct {
	db     *state.StateDB
	logger cosmoslog.Logger
}

func NewAccountQuerier(db *state.StateDB, logger cosmoslog.Logger) (q *AccountQuerier) {
	q = &AccountQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *AccountQuerier) Query(ctx context.Context, req *QueryRequest) (res *QueryResponse, err error) {
	res = &QueryResponse{}
	if len(req.Data) != common.AddressLength {
		res.Code = 1
		return
	}
	a, height, _ := q.db.GetAccountByAddress(common.BytesToAddress(req.Data))
	if a != nil {
		res.Value, _ = a.MarshalJSON()
		res.Height = height
	} else {
		res.Code = 1
	}
	return
}

type ProposalQuerier struct {
	db     *state.StateDB
	logger cosmoslog.Logger
}

func NewProposalQuerier(db *state.StateDB, logger cosmoslog.Logger) (q *ProposalQuerier) {
	q = &ProposalQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *ProposalQuerier) Query(ctx context.Context, req *QueryRequest) (res *QueryResponse, err error) {
	res = &QueryResponse{}
	var idx uint64
	for _, v := range req.Data {
		idx <<= 8
		idx |= uint64(v)
	}
	p, height, err := q.db.GetProposalByIndex(idx)
	if err != nil || p == nil {
		res.Code = 1
		err = nil
		return
	}
	res.Value, _ = json.Marshal(p)
	res.Height = height
	return
}

type ActiveProposalQuerier struct {
	db     *state.StateDB
	logger cosmoslog.Logger
}

func NewActiveProposalQuerier(db *state.StateDB, logger cosmoslog.Logger) (q *ActiveProposalQuerier) {
	q = &ActiveProposalQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *ActiveProposalQuerier) Query(ctx context.Context, req *QueryRequest) (res *QueryResponse, err error) {
	res = &QueryResponse{}
	p, height, err := q.db.GetActiveProposal()
	if err != nil || p == nil {
		res.Code = 1
		err = nil
		return
	}
	res.Value, _ = json.Marshal(p)
	res.Height = height
	return
}

type WinnerResult struct {
	Proposal uint64 `json:"proposal"`
	Choice   uint64 `json:"choice"`
	Tally    uint64 `json:"tally"`
}

type WinnerQuerier struct {
	db     *state.StateDB
	logger cosmoslog.Logger
}

func NewWinnerQuerier(db *state.StateDB, logger cosmoslog.Logger) (q *WinnerQuerier) {
	q = &WinnerQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *WinnerQuerier) Query(ctx context.Context, req *QueryRequest) (res *QueryResponse, err error) {
	res = &QueryResponse{}
	var idx uint64
	for _, v := range req.Data {
		idx <<= 8
		idx |= uint64(v)
	}
	choice, tally, err := q.db.GetWinner(idx)
	if err != nil {
		q.logger.Debug("query winner fail", "proposal", idx, "err", err)
		res.Code = 1
		err = nil
		return
	}
	res.Value, _ = json.Marshal(WinnerResult{Proposal: idx, Choice: choice, Tally: tally})
	return
}

type TierResult struct {
	Address    string `json:"address"`
	Tier       uint8  `json:"tier"`
	TierName   string `json:"tierName"`
	Points     uint64 `json:"points"`
	Percentage uint64 `json:"percentage"`
	Capped     uint64 `json:"capped"`
}

type TierQuerier struct {
	db     *state.StateDB
	logger cosmoslog.Logger
}

func NewTierQuerier(db *state.StateDB, logger cosmoslog.Logger) (q *TierQuerier) {
	q = &TierQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *TierQuerier) Query(ctx context.Context, req *QueryRequest) (res *QueryResponse, err error) {
	res = &QueryResponse{}
	if len(req.Data) != common.AddressLength {
		res.Code = 1
		return
	}
	addr := common.BytesToAddress(req.Data)
	tier, err := q.db.GetTier(addr)
	if err != nil {
		res.Code = 1
		err = nil
		return
	}
	pct, _ := q.db.GetVotePercentage(addr)
	capped, _ := q.db.GetCappedPercentage(addr)
	res.Value, _ = json.Marshal(TierResult{
		Address:    addr.Hex(),
		Tier:       uint8(tier),
		TierName:   tier.String(),
		Points:     tier.Points(),
		Percentage: pct,
		Capped:     capped,
	})
	return
}

type ParamsQuerier struct {
	db     *state.StateDB
	logger cosmoslog.Logger
}

func NewParamsQuerier(db *state.StateDB, logger cosmoslog.Logger) (q *ParamsQuerier) {
	q = &ParamsQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *ParamsQuerier) Query(ctx context.Context, req *QueryRequest) (res *QueryResponse, err error) {
	res = &QueryResponse{}
	params, height := q.db.GetParams()
	res.Value, _ = json.Marshal(params)
	res.Height = height
	return
}
