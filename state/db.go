package state

import (
	"sync"
	"time"

	cosmoslog "cosmossdk.io/log"
	dao_types "github.com/calehh/dao-app/types"
	"github.com/cosmos/iavl"
	dbm "github.com/cosmos/iavl/db"
	"github.com/ethereum/go-ethereum/common"
)

// StateDB owns the tree and serializes every mutating operation behind an
// exclusive lock: an operation is applied to a working state and saved as
// one new version, or rolled back entirely. Reads share the read lock and
// never observe a half-applied operation.
type StateDB struct {
	mtx sync.RWMutex

	dir    string
	logger cosmoslog.Logger
	db     *iavl.MutableTree
	now    func() int64

	state *State
}

func NewStateDB(dir string, logger cosmoslog.Logger) (db *StateDB, err error) {
	ldb, err := dbm.NewDB("dao", "goleveldb", dir)
	if err != nil {
		return nil, err
	}
	return newStateDB(ldb, dir, logger)
}

// NewMemStateDB backs the tree with an in-memory store, for tests.
func NewMemStateDB(logger cosmoslog.Logger) (db *StateDB, err error) {
	return newStateDB(dbm.NewMemDB(), "", logger)
}

func newStateDB(ldb dbm.DB, dir string, logger cosmoslog.Logger) (db *StateDB, err error) {
	logger = logger.With("module", "daodb")
	tdb := iavl.NewMutableTree(ldb, 128, true, logger)
	version, err := tdb.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("load db success", "version", version)
	st := newState(tdb, logger)
	err = st.load()
	if err != nil {
		logger.Error("from daodb load fail", "err", err)
		return nil, err
	}
	db = &StateDB{
		dir:    dir,
		logger: logger,
		db:     tdb,
		now:    func() int64 { return time.Now().Unix() },
		state:  st,
	}
	return
}

func (db *StateDB) Close() (err error) {
	err = db.db.Close()
	return
}

// SetNow replaces the clock, for tests.
func (db *StateDB) SetNow(now func() int64) {
	db.mtx.Lock()
	defer db.mtx.Unlock()
	db.now = now
}

func (db *StateDB) Now() int64 {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.now()
}

func (db *StateDB) Header() (header *GovHeader) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	header = db.state.Header()
	return
}

func (db *StateDB) State() *State {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state
}

// Execute runs one mutating operation against a working state under the
// write lock. On error nothing is persisted; on success the working state
// is saved as the next version and becomes current.
func (db *StateDB) Execute(fn func(st *State, now int64) error) (hash common.Hash, err error) {
	db.mtx.Lock()
	defer db.mtx.Unlock()
	st := db.state.nextState()
	err = fn(st, db.now())
	if err != nil {
		db.db.Rollback()
		return
	}
	_, err = st.Update()
	if err != nil {
		return
	}
	hash, err = st.save()
	if err != nil {
		return
	}
	db.state = st
	return
}

// Check runs a read-only validation pass against the current state.
func (db *StateDB) Check(fn func(st *State, now int64) error) error {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return fn(db.state, db.now())
}

func (db *StateDB) GetAccountByAddress(addr common.Address) (acnt *Account, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	acnt, err = db.state.FindAccount(addr)
	if err != nil {
		return
	}
	if acnt != nil {
		acnt = acnt.Clone()
	}
	height = db.state.header.Height
	return
}

func (db *StateDB) GetProposalByIndex(idx uint64) (proposal *dao_types.Proposal, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	proposal, err = db.state.GetProposal(idx)
	height = db.state.header.Height
	return
}

func (db *StateDB) GetActiveProposal() (proposal *dao_types.Proposal, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	proposal, err = db.state.ActiveProposal()
	height = db.state.header.Height
	return
}

func (db *StateDB) GetVote(proposalIdx uint64, voter common.Address) (vote *dao_types.VoteDetail, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state.GetVote(proposalIdx, voter)
}

func (db *StateDB) GetTier(addr common.Address) (tier dao_types.Tier, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state.TierOf(addr)
}

func (db *StateDB) GetVotePercentage(addr common.Address) (pct uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state.VotePercentage(addr)
}

func (db *StateDB) GetCappedPercentage(addr common.Address) (pct uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state.CappedPercentage(addr)
}

func (db *StateDB) GetWinner(proposalIdx uint64) (choice uint64, tally uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state.Winner(proposalIdx)
}

func (db *StateDB) GetParams() (params dao_types.GovParams, height uint64) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state.header.Params, db.state.header.Height
}
