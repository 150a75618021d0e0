package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/tx"
	dao_types "github.com/calehh/dao-app/types"
	"github.com/cosmos/iavl"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/syndtr/goleveldb/leveldb"
)

const StartAccountIdx = 65536

var (
	ErrNotFound = errors.New("not found")
)

var (
	KeyState          = "s"
	KeyAccountIndex   = "i%s"
	KeyAccountBody    = "a%x"
	KeyProposalBody   = "p%v"
	KeyProposalIndex  = "pi"
	KeyVoteBody       = "v%v_%s"
	KeySessionCreator = "c%v_%s"
)

var (
	ErrUnauthorized               = errors.New("caller is not admin")
	ErrPaused                     = errors.New("dao is paused")
	ErrInvalidChoiceCount         = errors.New("choice count out of range")
	ErrActiveProposalConflict     = errors.New("active proposal exists")
	ErrDuplicateCreatorInSession  = errors.New("creator already proposed in session")
	ErrInvalidLifecycleTransition = errors.New("invalid lifecycle transition")
	ErrVotingClosed               = errors.New("voting closed")
	ErrInvalidChoiceIndex         = errors.New("invalid choice index")
	ErrDuplicateVote              = errors.New("duplicate vote")
	ErrInvalidThresholdOrdering   = errors.New("threshold ordering invalid")
	ErrVoteMethodLocked           = errors.New("vote method locked by active proposal")
	ErrInvalidVoteMethod          = errors.New("vote method invalid")
	ErrInvalidMaxPercentage       = errors.New("max percentage out of bound")
	ErrInvalidVotingDuration      = errors.New("voting duration below one day")
	ErrProposalNoexists           = errors.New("proposal noexists")
	ErrAccountNoexists            = errors.New("account noexists")
	ErrAccountAlreadyExists       = errors.New("account already exists")
)

// GovHeader is the versioned global configuration: every mutating operation
// produces a new saved version of the tree carrying this header.
type GovHeader struct {
	Height         uint64              `json:"height"`
	ChainId        string              `json:"chain_id"`
	Admin          string              `json:"admin"`
	Session        uint64              `json:"session"`
	ActiveProposal uint64              `json:"active_proposal"`
	Drafts         []uint64            `json:"drafts"`
	AccountIdx     uint64              `json:"account_idx"`
	TotalSupply    uint64              `json:"total_supply"`
	Params         dao_types.GovParams `json:"params"`
	Hash           []byte              `json:"hash"`
	RootHash       []byte              `json:"root_hash"`
}

func (h *GovHeader) Clone() *GovHeader {
	n := *h
	n.Drafts = append([]uint64(nil), h.Drafts...)
	n.Hash = append([]byte(nil), h.Hash...)
	n.RootHash = append([]byte(nil), h.RootHash...)
	return &n
}

type State struct {
	logger cosmoslog.Logger
	db     *iavl.MutableTree
	dbVer  int64

	header *GovHeader
	idxs   map[string]uint64
	acnts  map[uint64]*Account

	modifiedAcnts    map[uint64]bool
	proposalMaxIndex uint64
	proposalIdxDirty bool
	modProposals     map[uint64]*dao_types.Proposal
	newVotes         []*dao_types.VoteDetail
	newCreatorMarks  []string
}

func newState(db *iavl.MutableTree, logger cosmoslog.Logger) *State {
	s := &State{
		logger:           logger,
		db:               db,
		dbVer:            0,
		header:           new(GovHeader),
		idxs:             make(map[string]uint64),
		acnts:            make(map[uint64]*Account),
		modifiedAcnts:    make(map[uint64]bool),
		proposalMaxIndex: 0,
		modProposals:     make(map[uint64]*dao_types.Proposal),
	}
	s.header.AccountIdx = StartAccountIdx
	return s
}

func (s *State) nextState() *State {
	n := &State{
		logger:           s.logger,
		db:               s.db,
		dbVer:            s.dbVer,
		idxs:             make(map[string]uint64),
		acnts:            make(map[uint64]*Account),
		modifiedAcnts:    make(map[uint64]bool),
		proposalMaxIndex: s.proposalMaxIndex,
		modProposals:     make(map[uint64]*dao_types.Proposal),
	}
	n.header = s.header.Clone()
	if len(s.header.Hash) != 0 {
		n.header.Height = s.header.Height + 1
	}
	return n
}

func (s *State) load() (err error) {
	val, err := s.db.Get([]byte(KeyProposalIndex))
	if err != nil {
		if err != leveldb.ErrNotFound {
			return err
		}
	}
	s.proposalMaxIndex = new(big.Int).SetBytes(val).Uint64()
	val, err = s.db.Get([]byte(KeyState))
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil
		}
		return err
	}
	if val != nil {
		err = json.Unmarshal(val, s.header)
		if err != nil {
			return
		}
		h := s.db.Hash()
		if h != nil {
			s.calcHash(h, true)
		}
		if s.header.Params.MaxCappedPercentage > dao_types.MaxPercentageBound {
			s.logger.Warn("max capped percentage exceeds setter bound",
				"cap", s.header.Params.MaxCappedPercentage, "bound", dao_types.MaxPercentageBound)
		}
	}
	return
}

func (s *State) calcHash(rootHash []byte, update bool) (h common.Hash) {
	h = crypto.Keccak256Hash(rootHash)
	if update {
		if s.header.RootHash == nil {
			s.header.RootHash = make([]byte, len(rootHash))
		}
		copy(s.header.RootHash, rootHash)
		if s.header.Hash == nil {
			s.header.Hash = make([]byte, len(h))
		}
		copy(s.header.Hash, h[:])
	}
	return
}

func (s *State) Update() (h common.Hash, err error) {
	var hash []byte
	defer func() {
		if hash == nil {
			s.db.Rollback()
		}
	}()
	var val []byte
	val, err = json.Marshal(s.header)
	if err != nil {
		return
	}
	_, err = s.db.Set([]byte(KeyState), val)
	if err != nil {
		return
	}

	if s.proposalIdxDirty {
		_, err = s.db.Set([]byte(KeyProposalIndex), big.NewInt(int64(s.proposalMaxIndex)).Bytes())
		if err != nil {
			return
		}
	}

	if len(s.modProposals) > 0 {
		idxs := make([]uint64, 0, len(s.modProposals))
		for idx := range s.modProposals {
			idxs = append(idxs, idx)
		}
		sort.Slice(idxs, func(i, j int) bool {
			return idxs[i] < idxs[j]
		})
		for _, idx := range idxs {
			key := fmt.Sprintf(KeyProposalBody, idx)
			proposalBz, _ := json.Marshal(s.modProposals[idx])
			_, err = s.db.Set([]byte(key), proposalBz)
			if err != nil {
				return
			}
		}
	}

	for _, vote := range s.newVotes {
		key := fmt.Sprintf(KeyVoteBody, vote.Proposal, vote.Voter)
		voteBz, _ := json.Marshal(vote)
		_, err = s.db.Set([]byte(key), voteBz)
		if err != nil {
			return
		}
	}

	for _, key := range s.newCreatorMarks {
		_, err = s.db.Set([]byte(key), []byte{1})
		if err != nil {
			return
		}
	}

	n := len(s.modifiedAcnts)
	if n > 0 {
		idxs := make([]uint64, 0, n)
		for idx := range s.modifiedAcnts {
			idxs = append(idxs, idx)
		}
		sort.Slice(idxs, func(i, j int) bool {
			return idxs[i] < idxs[j]
		})
		for _, idx := range idxs {
			acnt := s.acnts[idx]
			key := fmt.Sprintf(KeyAccountBody, acnt.Index)
			val, err = json.Marshal(acnt)
			if err != nil {
				return
			}
			_, err = s.db.Set([]byte(key), val)
			if err != nil {
				return
			}
			key = fmt.Sprintf(KeyAccountIndex, acnt.Address)
			val, err = rlp.EncodeToBytes(acnt.Index)
			if err != nil {
				return
			}
			_, err = s.db.Set([]byte(key), val)
			if err != nil {
				return
			}
		}
	}
	hash = s.db.WorkingHash()
	h = s.calcHash(hash, false)
	s.modifiedAcnts = make(map[uint64]bool)
	return
}

func (s *State) save() (h common.Hash, err error) {
	hash, ver, err := s.db.SaveVersion()
	if err != nil {
		return h, err
	}
	s.dbVer = ver
	h = s.calcHash(hash, true)
	return
}

func (s *State) getProposalMax() uint64 {
	return s.proposalMaxIndex
}

func (s *State) getProposal(idx uint64) (proposal *dao_types.Proposal, err error) {
	if p, ok := s.modProposals[idx]; ok {
		return p, nil
	}
	if idx == 0 || idx > s.proposalMaxIndex {
		err = ErrProposalNoexists
		return
	}
	key := fmt.Sprintf(KeyProposalBody, idx)
	val, err := s.db.Get([]byte(key))
	if err != nil {
		return nil, err
	}
	if val == nil {
		err = ErrNotFound
		return
	}
	proposal = new(dao_types.Proposal)
	err = json.Unmarshal(val, proposal)
	return
}

// GetProposal returns a proposal by index without exposing working copies.
func (s *State) GetProposal(idx uint64) (*dao_types.Proposal, error) {
	return s.getProposal(idx)
}

func (s *State) getVote(proposal uint64, voter string) (vote *dao_types.VoteDetail, err error) {
	key := fmt.Sprintf(KeyVoteBody, proposal, voter)
	val, err := s.db.Get([]byte(key))
	if err != nil {
		return nil, err
	}
	if val == nil {
		err = ErrNotFound
		return
	}
	vote = new(dao_types.VoteDetail)
	err = json.Unmarshal(val, vote)
	return
}

func (s *State) GetVote(proposal uint64, voter common.Address) (*dao_types.VoteDetail, error) {
	return s.getVote(proposal, voter.Hex())
}

func (s *State) GetAccount(idx uint64) (acnt *Account, err error) {
	if idx >= s.header.AccountIdx {
		err = ErrAccountNoexists
		return
	}
	acnt = s.acnts[idx]
	if acnt != nil {
		return
	}
	key := fmt.Sprintf(KeyAccountBody, idx)
	val, err := s.db.Get([]byte(key))
	if err != nil {
		return nil, err
	}
	if val == nil {
		err = ErrNotFound
		return
	}
	acnt = new(Account)
	err = json.Unmarshal(val, acnt)
	if err != nil {
		acnt = nil
		return
	}
	s.acnts[idx] = acnt
	return
}

func (s *State) FindAccount(addr common.Address) (acnt *Account, err error) {
	saddr := addr.Hex()
	idx, ok := s.idxs[saddr]
	if !ok {
		key := fmt.Sprintf(KeyAccountIndex, saddr)
		val, err := s.db.Get([]byte(key))
		if err != nil {
			if err == leveldb.ErrNotFound {
				return nil, nil
			}
			return nil, err
		}
		if val == nil {
			return nil, nil
		}
		err = rlp.DecodeBytes(val, &idx)
		if err != nil {
			return nil, err
		}
		s.idxs[saddr] = idx
	}
	acnt, err = s.GetAccount(idx)
	return
}

func (s *State) AddAccount(acnt *Account) (err error) {
	a, err := s.FindAccount(common.HexToAddress(acnt.Address))
	if err != nil {
		return err
	}
	if a != nil {
		err = ErrAccountAlreadyExists
		return
	}
	acnt.Index = s.header.AccountIdx
	s.header.AccountIdx += 1
	s.acnts[acnt.Index] = acnt.Clone()
	s.modifiedAcnts[acnt.Index] = true
	return
}

func (s *State) Header() *GovHeader {
	return s.header
}

func (s *State) Hash() (h common.Hash) {
	if s.header.Hash != nil {
		copy(h[:], s.header.Hash)
	}
	return
}

func (s *State) SetChainId(chainId string) {
	s.header.ChainId = chainId
}

func (s *State) isAdmin(sender string) bool {
	return common.HexToAddress(sender) == common.HexToAddress(s.header.Admin)
}

// activeUnexpired reports whether the active proposal still accepts votes.
// An expired Chosen proposal keeps the pointer until finalized but no
// longer blocks proposal creation or method switches.
func (s *State) activeUnexpired(now int64) bool {
	if s.header.ActiveProposal == 0 {
		return false
	}
	p, err := s.getProposal(s.header.ActiveProposal)
	if err != nil || p == nil {
		return false
	}
	return p.Status == dao_types.ProposalStatusChosen && now <= p.EndTime
}

// ActiveProposal returns the currently tracked Chosen proposal, nil if none.
func (s *State) ActiveProposal() (*dao_types.Proposal, error) {
	if s.header.ActiveProposal == 0 {
		return nil, nil
	}
	return s.getProposal(s.header.ActiveProposal)
}

func (s *State) creatorMarkKey(session uint64, sender string) string {
	return fmt.Sprintf(KeySessionCreator, session, common.HexToAddress(sender).Hex())
}

func (s *State) sessionHasCreator(session uint64, sender string) (bool, error) {
	key := s.creatorMarkKey(session, sender)
	for _, mark := range s.newCreatorMarks {
		if mark == key {
			return true, nil
		}
	}
	val, err := s.db.Get([]byte(key))
	if err != nil {
		if err != leveldb.ErrNotFound {
			return false, err
		}
	}
	return val != nil, nil
}

func (s *State) CreateProposal(t *tx.CreateProposalTx, sender string, now int64, checkOnly bool) (event *dao_types.EventProposalCreated, err error) {
	s.logger.Debug("apply create proposal", "sender", sender, "height", s.header.Height)
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	if s.header.Params.Paused {
		err = ErrPaused
		return
	}
	if len(t.Choices) < dao_types.MinChoices || len(t.Choices) > dao_types.MaxChoices {
		err = ErrInvalidChoiceCount
		return
	}
	if s.activeUnexpired(now) {
		err = ErrActiveProposalConflict
		return
	}
	dup, err := s.sessionHasCreator(s.header.Session, sender)
	if err != nil {
		return
	}
	if dup {
		err = ErrDuplicateCreatorInSession
		return
	}
	if !checkOnly {
		s.proposalMaxIndex += 1
		s.proposalIdxDirty = true
		proposal := dao_types.Proposal{
			Index:       s.proposalMaxIndex,
			Session:     s.header.Session,
			Title:       t.Title,
			Description: t.Description,
			Choices:     append([]string(nil), t.Choices...),
			Creator:     common.HexToAddress(sender).Hex(),
			Status:      dao_types.ProposalStatusDraft,
			Tallies:     make([]uint64, len(t.Choices)),
			VoteCounts:  make([]uint64, len(t.Choices)),
		}
		s.modProposals[proposal.Index] = &proposal
		s.header.Drafts = append(s.header.Drafts, proposal.Index)
		s.newCreatorMarks = append(s.newCreatorMarks, s.creatorMarkKey(s.header.Session, sender))

		event = &dao_types.EventProposalCreated{
			ProposalIndex: proposal.Index,
			Session:       proposal.Session,
			Creator:       proposal.Creator,
			Title:         proposal.Title,
			Choices:       len(proposal.Choices),
			Timestamp:     now,
		}
	}
	return
}

// SelectProposal closes the current session: the target Draft becomes the
// single active Chosen proposal, every other Draft in the session is
// rejected and the session counter advances.
func (s *State) SelectProposal(t *tx.SelectProposalTx, sender string, now int64, checkOnly bool) (event *dao_types.EventSessionClosed, err error) {
	s.logger.Debug("apply select proposal", "sender", sender, "proposal", t.Proposal)
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	proposal, err := s.getProposal(t.Proposal)
	if err != nil {
		return
	}
	if proposal.Status != dao_types.ProposalStatusDraft {
		err = ErrInvalidLifecycleTransition
		return
	}
	if len(t.Choices) > 0 && (len(t.Choices) < dao_types.MinChoices || len(t.Choices) > dao_types.MaxChoices) {
		err = ErrInvalidChoiceCount
		return
	}
	if !checkOnly {
		rejected := make([]uint64, 0, len(s.header.Drafts))
		for _, idx := range s.header.Drafts {
			if idx == t.Proposal {
				continue
			}
			draft, err1 := s.getProposal(idx)
			if err1 != nil {
				err = err1
				return
			}
			draft.Status = dao_types.ProposalStatusRejected
			s.modProposals[idx] = draft
			rejected = append(rejected, idx)
		}

		if t.Title != "" {
			proposal.Title = t.Title
		}
		if t.Description != "" {
			proposal.Description = t.Description
		}
		if len(t.Choices) > 0 {
			proposal.Choices = append([]string(nil), t.Choices...)
		}
		proposal.Status = dao_types.ProposalStatusChosen
		proposal.StartTime = now
		proposal.EndTime = now + s.header.Params.VotingDuration
		proposal.Tallies = make([]uint64, len(proposal.Choices))
		proposal.VoteCounts = make([]uint64, len(proposal.Choices))
		s.modProposals[proposal.Index] = proposal

		session := s.header.Session
		s.header.ActiveProposal = proposal.Index
		s.header.Drafts = nil
		s.header.Session += 1

		event = &dao_types.EventSessionClosed{
			Session:   session,
			Selected:  proposal.Index,
			Rejected:  rejected,
			StartTime: proposal.StartTime,
			EndTime:   proposal.EndTime,
		}
	}
	return
}

func (s *State) CancelProposal(t *tx.CancelProposalTx, sender string, now int64, checkOnly bool) (event *dao_types.EventProposalCancelled, err error) {
	s.logger.Debug("apply cancel proposal", "sender", sender, "proposal", t.Proposal)
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	proposal, err := s.getProposal(t.Proposal)
	if err != nil {
		return
	}
	if proposal.Status != dao_types.ProposalStatusChosen {
		err = ErrInvalidLifecycleTransition
		return
	}
	if !checkOnly {
		proposal.Status = dao_types.ProposalStatusCancelled
		s.modProposals[proposal.Index] = proposal
		if s.header.ActiveProposal == proposal.Index {
			s.header.ActiveProposal = 0
		}
		event = &dao_types.EventProposalCancelled{
			Proposal:  proposal.Index,
			Session:   proposal.Session,
			Timestamp: now,
		}
	}
	return
}

func (s *State) UpdateProposalStatus(t *tx.UpdateStatusTx, sender string, now int64, checkOnly bool) (event *dao_types.EventProposalStatus, err error) {
	s.logger.Debug("apply update status", "sender", sender, "proposal", t.Proposal, "status", t.Status)
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	status := dao_types.ProposalStatus(t.Status)
	switch status {
	case dao_types.ProposalStatusPassed, dao_types.ProposalStatusRejected, dao_types.ProposalStatusDone:
	default:
		err = ErrInvalidLifecycleTransition
		return
	}
	proposal, err := s.getProposal(t.Proposal)
	if err != nil {
		return
	}
	if proposal.Status != dao_types.ProposalStatusChosen {
		err = ErrInvalidLifecycleTransition
		return
	}
	if !checkOnly {
		proposal.Status = status
		s.modProposals[proposal.Index] = proposal
		if s.header.ActiveProposal == proposal.Index {
			s.header.ActiveProposal = 0
		}
		event = &dao_types.EventProposalStatus{
			Proposal:  proposal.Index,
			Status:    status,
			Timestamp: now,
		}
	}
	return
}

// Vote records one weighted vote. The weight is computed with the method
// active at cast time and frozen into the VoteDetail.
func (s *State) Vote(t *tx.VoteTx, sender string, now int64, checkOnly bool) (event *dao_types.EventVote, err error) {
	s.logger.Debug("apply vote", "sender", sender, "proposal", t.Proposal, "choice", t.Choice)
	if s.header.Params.Paused {
		err = ErrPaused
		return
	}
	proposal, err := s.getProposal(t.Proposal)
	if err != nil {
		return
	}
	if proposal.Status != dao_types.ProposalStatusChosen {
		err = ErrInvalidLifecycleTransition
		return
	}
	if now > proposal.EndTime {
		err = ErrVotingClosed
		return
	}
	if t.Choice >= uint64(len(proposal.Choices)) {
		err = ErrInvalidChoiceIndex
		return
	}
	voter := common.HexToAddress(sender).Hex()
	_, err = s.getVote(proposal.Index, voter)
	if err == nil {
		err = ErrDuplicateVote
		return
	}
	if err != ErrNotFound {
		return
	}
	err = nil
	method := s.header.Params.VoteMethod
	weight, err := s.weightOf(common.HexToAddress(sender), method)
	if err != nil {
		return
	}
	if !checkOnly {
		proposal.Tallies[t.Choice] += weight
		proposal.VoteCounts[t.Choice] += 1
		s.modProposals[proposal.Index] = proposal
		detail := &dao_types.VoteDetail{
			Proposal:  proposal.Index,
			Voter:     voter,
			Choice:    t.Choice,
			Weight:    weight,
			Method:    method,
			Timestamp: now,
		}
		s.newVotes = append(s.newVotes, detail)

		event = &dao_types.EventVote{
			Proposal:  proposal.Index,
			Voter:     voter,
			Choice:    t.Choice,
			Weight:    weight,
			Method:    method,
			Timestamp: now,
		}
	}
	return
}

func (s *State) UpdateThresholds(t *tx.UpdateThresholdsTx, sender string, now int64, checkOnly bool) (event *dao_types.EventDAOStatus, err error) {
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	if !(t.VIP > t.Gold && t.Gold > t.Silver && t.Silver > t.Bronze && t.Bronze > 0) {
		err = ErrInvalidThresholdOrdering
		return
	}
	if !checkOnly {
		s.header.Params.VIPThreshold = t.VIP
		s.header.Params.GoldThreshold = t.Gold
		s.header.Params.SilverThreshold = t.Silver
		s.header.Params.BronzeThreshold = t.Bronze
		event = s.daoStatusEvent("thresholds", now)
	}
	return
}

func (s *State) SetMaxPercentage(t *tx.SetMaxPercentageTx, sender string, now int64, checkOnly bool) (event *dao_types.EventDAOStatus, err error) {
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	// The setter bound is on a different scale than the stored cap; see the
	// configuration warning logged at load time.
	if t.Percentage > dao_types.MaxPercentageBound {
		err = ErrInvalidMaxPercentage
		return
	}
	if !checkOnly {
		s.header.Params.MaxCappedPercentage = t.Percentage
		event = s.daoStatusEvent("max_percentage", now)
	}
	return
}

func (s *State) SetVotingDuration(t *tx.SetVotingDurationTx, sender string, now int64, checkOnly bool) (event *dao_types.EventDAOStatus, err error) {
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	if t.Days < 1 {
		err = ErrInvalidVotingDuration
		return
	}
	if !checkOnly {
		s.header.Params.VotingDuration = int64(t.Days) * dao_types.SecondsPerDay
		event = s.daoStatusEvent("voting_duration", now)
	}
	return
}

func (s *State) SetVoteMethod(t *tx.SetVoteMethodTx, sender string, now int64, checkOnly bool) (event *dao_types.EventDAOStatus, err error) {
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	method := dao_types.VoteMethod(t.Method)
	if !method.Valid() {
		err = ErrInvalidVoteMethod
		return
	}
	if s.activeUnexpired(now) {
		err = ErrVoteMethodLocked
		return
	}
	if !checkOnly {
		s.header.Params.VoteMethod = method
		event = s.daoStatusEvent("vote_method", now)
	}
	return
}

func (s *State) SetPause(t *tx.SetPauseTx, sender string, now int64, checkOnly bool) (event *dao_types.EventDAOStatus, err error) {
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	if !checkOnly {
		s.header.Params.Paused = t.Paused
		event = s.daoStatusEvent("pause", now)
	}
	return
}

func (s *State) SetAdmin(t *tx.SetAdminTx, sender string, now int64, checkOnly bool) (event *dao_types.EventDAOStatus, err error) {
	if !s.isAdmin(sender) {
		err = ErrUnauthorized
		return
	}
	if t.Admin == "" {
		err = fmt.Errorf("empty admin address")
		return
	}
	if !checkOnly {
		s.header.Admin = common.HexToAddress(t.Admin).Hex()
		event = s.daoStatusEvent("admin", now)
	}
	return
}

func (s *State) daoStatusEvent(change string, now int64) *dao_types.EventDAOStatus {
	return &dao_types.EventDAOStatus{
		Change:    change,
		Paused:    s.header.Params.Paused,
		Method:    s.header.Params.VoteMethod,
		Admin:     s.header.Admin,
		Timestamp: now,
	}
}

// Winner returns the first strictly greatest tally: ties keep the earlier
// choice index.
func (s *State) Winner(proposalIdx uint64) (choice uint64, tally uint64, err error) {
	proposal, err := s.getProposal(proposalIdx)
	if err != nil {
		return
	}
	for i, t := range proposal.Tallies {
		if t > tally {
			tally = t
			choice = uint64(i)
		}
	}
	return
}
