package state

import (
	"testing"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/tx"
	dao_types "github.com/calehh/dao-app/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin  = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testAdmin2 = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	testAdmin3 = common.HexToAddress("0x00000000000000000000000000000000000000a3")
	testVIP    = common.HexToAddress("0x0000000000000000000000000000000000000001")
	testGold   = common.HexToAddress("0x0000000000000000000000000000000000000002")
	testSilver = common.HexToAddress("0x0000000000000000000000000000000000000003")
	testBronze = common.HexToAddress("0x0000000000000000000000000000000000000004")
	testNone   = common.HexToAddress("0x0000000000000000000000000000000000000005")
)

func testHolders() []dao_types.GenesisHolder {
	return []dao_types.GenesisHolder{
		{Address: testVIP.Hex(), Balance: 60_000, Locked: 40_000, Name: "vip"},
		{Address: testGold.Hex(), Balance: 10_000, Name: "gold"},
		{Address: testSilver.Hex(), Balance: 500, Locked: 500, Name: "silver"},
		{Address: testBronze.Hex(), Balance: 100, Name: "bronze"},
		{Address: testNone.Hex(), Balance: 99, Name: "none"},
	}
}

func newTestDB(t *testing.T, holders []dao_types.GenesisHolder) *StateDB {
	db, err := NewMemStateDB(cosmoslog.NewNopLogger())
	require.Nil(t, err)
	doc := &dao_types.GenesisDoc{
		ChainID: "dao-test",
		Admin:   testAdmin.Hex(),
		Holders: holders,
		Params:  dao_types.DefaultGenesisParams(),
	}
	require.Nil(t, doc.ValidateAndComplete())
	_, err = db.InitGenesis(doc)
	require.Nil(t, err)
	return db
}

func createProposal(db *StateDB, sender common.Address, choices []string) (uint64, error) {
	var idx uint64
	_, err := db.Execute(func(st *State, now int64) error {
		ev, err := st.CreateProposal(&tx.CreateProposalTx{
			Title:       "t",
			Description: "d",
			Choices:     choices,
		}, sender.Hex(), now, false)
		if err != nil {
			return err
		}
		idx = ev.ProposalIndex
		return nil
	})
	return idx, err
}

func selectProposal(db *StateDB, sender common.Address, idx uint64) (*dao_types.EventSessionClosed, error) {
	var event *dao_types.EventSessionClosed
	_, err := db.Execute(func(st *State, now int64) error {
		ev, err := st.SelectProposal(&tx.SelectProposalTx{Proposal: idx}, sender.Hex(), now, false)
		event = ev
		return err
	})
	return event, err
}

func vote(db *StateDB, sender common.Address, proposal uint64, choice uint64) error {
	_, err := db.Execute(func(st *State, now int64) error {
		_, err := st.Vote(&tx.VoteTx{Proposal: proposal, Choice: choice}, sender.Hex(), now, false)
		return err
	})
	return err
}

func setAdmin(t *testing.T, db *StateDB, from, to common.Address) {
	_, err := db.Execute(func(st *State, now int64) error {
		_, err := st.SetAdmin(&tx.SetAdminTx{Admin: to.Hex()}, from.Hex(), now, false)
		return err
	})
	require.Nil(t, err)
}

func TestGenesisInit(t *testing.T) {
	db := newTestDB(t, testHolders())
	require.True(t, db.Initialized())
	header := db.Header()
	require.Equal(t, testAdmin.Hex(), header.Admin)
	require.Equal(t, uint64(1), header.Session)
	require.Equal(t, uint64(111_199), header.TotalSupply)

	acnt, _, err := db.GetAccountByAddress(testSilver)
	require.Nil(t, err)
	require.NotNil(t, acnt)
	require.Equal(t, uint64(500), acnt.Balance)
	require.Equal(t, uint64(500), acnt.Locked)
	require.Equal(t, uint64(1000), acnt.Total())

	unknown, _, err := db.GetAccountByAddress(common.HexToAddress("0xdead"))
	require.Nil(t, err)
	require.Nil(t, unknown)
}

func TestTierClassification(t *testing.T) {
	db := newTestDB(t, testHolders())
	cases := []struct {
		addr common.Address
		tier dao_types.Tier
	}{
		{testVIP, dao_types.TierVIP},
		{testGold, dao_types.TierGold},
		{testSilver, dao_types.TierSilver},
		{testBronze, dao_types.TierBronze},
		{testNone, dao_types.TierNone},
		{common.HexToAddress("0xbeef"), dao_types.TierNone},
	}
	for _, c := range cases {
		tier, err := db.GetTier(c.addr)
		require.Nil(t, err)
		require.Equal(t, c.tier, tier, "address %v", c.addr.Hex())
	}
	require.Equal(t, uint64(4), dao_types.TierVIP.Points())
	require.Equal(t, uint64(0), dao_types.TierNone.Points())
}

func TestUpdateThresholdsOrdering(t *testing.T) {
	db := newTestDB(t, testHolders())
	bad := []tx.UpdateThresholdsTx{
		{VIP: 100, Gold: 100, Silver: 10, Bronze: 1},
		{VIP: 1000, Gold: 100, Silver: 200, Bronze: 1},
		{VIP: 1000, Gold: 100, Silver: 10, Bronze: 0},
		{VIP: 10, Gold: 100, Silver: 1000, Bronze: 10000},
	}
	for _, b := range bad {
		b := b
		_, err := db.Execute(func(st *State, now int64) error {
			_, err := st.UpdateThresholds(&b, testAdmin.Hex(), now, false)
			return err
		})
		require.Equal(t, ErrInvalidThresholdOrdering, err)
	}

	_, err := db.Execute(func(st *State, now int64) error {
		_, err := st.UpdateThresholds(&tx.UpdateThresholdsTx{
			VIP: 1_000_000, Gold: 500_000, Silver: 200_000, Bronze: 100_001,
		}, testAdmin.Hex(), now, false)
		return err
	})
	require.Nil(t, err)

	// all holders fall below the raised bronze bar
	tier, err := db.GetTier(testVIP)
	require.Nil(t, err)
	require.Equal(t, dao_types.TierNone, tier)
}

func TestVotePercentage(t *testing.T) {
	db := newTestDB(t, testHolders())
	// supply 111_199, vip holds 100_000
	pct, err := db.GetVotePercentage(testVIP)
	require.Nil(t, err)
	require.Equal(t, uint64(100_000)*dao_types.PercentageBase/uint64(111_199), pct)

	pct, err = db.GetVotePercentage(common.HexToAddress("0xbeef"))
	require.Nil(t, err)
	require.Equal(t, uint64(0), pct)
}

func TestVotePercentageZeroSupply(t *testing.T) {
	db := newTestDB(t, nil)
	pct, err := db.GetVotePercentage(testVIP)
	require.Nil(t, err)
	require.Equal(t, uint64(0), pct)
}

func TestCappedPercentage(t *testing.T) {
	db := newTestDB(t, testHolders())
	// vip holds ~90% of supply, far above the default cap
	pct, err := db.GetCappedPercentage(testVIP)
	require.Nil(t, err)
	require.Equal(t, uint64(dao_types.DefaultMaxCappedPercentage), pct)

	// none holder is below the cap, value passes through
	raw, err := db.GetVotePercentage(testNone)
	require.Nil(t, err)
	capped, err := db.GetCappedPercentage(testNone)
	require.Nil(t, err)
	require.Equal(t, raw, capped)
}

func TestCappedPercentageSoleHolder(t *testing.T) {
	db := newTestDB(t, []dao_types.GenesisHolder{
		{Address: testVIP.Hex(), Balance: 1_000_000},
	})
	raw, err := db.GetVotePercentage(testVIP)
	require.Nil(t, err)
	require.Equal(t, uint64(dao_types.PercentageBase), raw)
	capped, err := db.GetCappedPercentage(testVIP)
	require.Nil(t, err)
	require.Equal(t, uint64(dao_types.DefaultMaxCappedPercentage), capped)
}

func TestCreateProposalValidation(t *testing.T) {
	db := newTestDB(t, testHolders())

	_, err := createProposal(db, testVIP, []string{"yes", "no"})
	require.Equal(t, ErrUnauthorized, err)

	_, err = createProposal(db, testAdmin, []string{"yes"})
	require.Equal(t, ErrInvalidChoiceCount, err)

	_, err = createProposal(db, testAdmin, []string{"a", "b", "c", "d", "e"})
	require.Equal(t, ErrInvalidChoiceCount, err)

	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	require.Equal(t, uint64(1), idx)

	p, _, err := db.GetProposalByIndex(idx)
	require.Nil(t, err)
	require.Equal(t, dao_types.ProposalStatusDraft, p.Status)
	require.Equal(t, uint64(1), p.Session)
	require.Equal(t, testAdmin.Hex(), p.Creator)

	// same creator, same session
	_, err = createProposal(db, testAdmin, []string{"yes", "no"})
	require.Equal(t, ErrDuplicateCreatorInSession, err)
}

func TestCreateBlockedByActiveProposal(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	_, err = createProposal(db, testAdmin, []string{"yes", "no"})
	require.Equal(t, ErrActiveProposalConflict, err)

	// once the voting window has passed the conflict clears
	p, _, err := db.GetProposalByIndex(idx)
	require.Nil(t, err)
	db.SetNow(func() int64 { return p.EndTime + 1 })
	_, err = createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
}

func TestSessionClose(t *testing.T) {
	db := newTestDB(t, testHolders())

	p1, err := createProposal(db, testAdmin, []string{"a", "b"})
	require.Nil(t, err)
	setAdmin(t, db, testAdmin, testAdmin2)
	p2, err := createProposal(db, testAdmin2, []string{"c", "d", "e"})
	require.Nil(t, err)
	setAdmin(t, db, testAdmin2, testAdmin3)
	p3, err := createProposal(db, testAdmin3, []string{"f", "g"})
	require.Nil(t, err)

	start := db.Now()
	event, err := selectProposal(db, testAdmin3, p2)
	require.Nil(t, err)
	require.Equal(t, uint64(1), event.Session)
	require.Equal(t, p2, event.Selected)
	require.Equal(t, []uint64{p1, p3}, event.Rejected)

	chosen, _, err := db.GetProposalByIndex(p2)
	require.Nil(t, err)
	require.Equal(t, dao_types.ProposalStatusChosen, chosen.Status)
	require.Equal(t, chosen.StartTime+dao_types.DefaultVotingDuration, chosen.EndTime)
	require.True(t, chosen.StartTime >= start)
	require.Equal(t, len(chosen.Choices), len(chosen.Tallies))
	require.Equal(t, len(chosen.Choices), len(chosen.VoteCounts))

	for _, idx := range []uint64{p1, p3} {
		p, _, err := db.GetProposalByIndex(idx)
		require.Nil(t, err)
		require.Equal(t, dao_types.ProposalStatusRejected, p.Status)
	}

	active, _, err := db.GetActiveProposal()
	require.Nil(t, err)
	require.Equal(t, p2, active.Index)
	require.Equal(t, uint64(2), db.Header().Session)

	_, err = createProposal(db, testAdmin3, []string{"h", "i"})
	require.Equal(t, ErrActiveProposalConflict, err)

	// creator dedup does not carry over into the new session
	db.SetNow(func() int64 { return chosen.EndTime + 1 })
	_, err = createProposal(db, testAdmin3, []string{"h", "i"})
	require.Nil(t, err)
}

func TestSelectOverridesContent(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"a", "b"})
	require.Nil(t, err)

	_, err = db.Execute(func(st *State, now int64) error {
		_, err := st.SelectProposal(&tx.SelectProposalTx{
			Proposal:    idx,
			Title:       "final title",
			Description: "final description",
			Choices:     []string{"x", "y", "z"},
		}, testAdmin.Hex(), now, false)
		return err
	})
	require.Nil(t, err)

	p, _, err := db.GetProposalByIndex(idx)
	require.Nil(t, err)
	require.Equal(t, "final title", p.Title)
	require.Equal(t, []string{"x", "y", "z"}, p.Choices)
	require.Equal(t, []uint64{0, 0, 0}, p.Tallies)
}

func TestSelectRequiresDraft(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"a", "b"})
	require.Nil(t, err)
	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	_, err = selectProposal(db, testAdmin, idx)
	require.Equal(t, ErrInvalidLifecycleTransition, err)

	_, err = selectProposal(db, testAdmin, 999)
	require.Equal(t, ErrProposalNoexists, err)
}

func TestVoteFlow(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	require.Nil(t, vote(db, testVIP, idx, 0))
	require.Nil(t, vote(db, testGold, idx, 1))
	require.Nil(t, vote(db, testBronze, idx, 1))

	err = vote(db, testVIP, idx, 1)
	require.Equal(t, ErrDuplicateVote, err)

	err = vote(db, testSilver, idx, 2)
	require.Equal(t, ErrInvalidChoiceIndex, err)

	p, _, err := db.GetProposalByIndex(idx)
	require.Nil(t, err)
	// tier points: vip 4, gold 3, bronze 1
	require.Equal(t, []uint64{4, 4}, p.Tallies)
	require.Equal(t, []uint64{1, 2}, p.VoteCounts)

	detail, err := db.GetVote(idx, testVIP)
	require.Nil(t, err)
	require.Equal(t, uint64(4), detail.Weight)
	require.Equal(t, dao_types.VoteMethodTierPoint, detail.Method)
	require.Equal(t, uint64(0), detail.Choice)

	// zero-weight voters still count
	require.Nil(t, vote(db, testNone, idx, 0))
	p, _, _ = db.GetProposalByIndex(idx)
	require.Equal(t, []uint64{4, 4}, p.Tallies)
	require.Equal(t, []uint64{2, 2}, p.VoteCounts)
}

func TestVoteAfterEndTime(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	p, _, err := db.GetProposalByIndex(idx)
	require.Nil(t, err)

	// at the deadline a vote still lands
	db.SetNow(func() int64 { return p.EndTime })
	require.Nil(t, vote(db, testVIP, idx, 0))

	db.SetNow(func() int64 { return p.EndTime + 1 })
	err = vote(db, testGold, idx, 0)
	require.Equal(t, ErrVotingClosed, err)
}

func TestVoteOnDraft(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	err = vote(db, testVIP, idx, 0)
	require.Equal(t, ErrInvalidLifecycleTransition, err)
}

func TestWinnerTieKeepsEarlierChoice(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"a", "b", "c"})
	require.Nil(t, err)
	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	// silver and bronze carry different tier points, pick voters so the
	// first two choices tie: vip(4) on b, gold(3)+bronze(1) on a
	require.Nil(t, vote(db, testVIP, idx, 1))
	require.Nil(t, vote(db, testGold, idx, 0))
	require.Nil(t, vote(db, testBronze, idx, 0))
	require.Nil(t, vote(db, testSilver, idx, 2))

	p, _, _ := db.GetProposalByIndex(idx)
	require.Equal(t, []uint64{4, 4, 2}, p.Tallies)

	choice, tally, err := db.GetWinner(idx)
	require.Nil(t, err)
	require.Equal(t, uint64(0), choice)
	require.Equal(t, uint64(4), tally)
}

func TestPauseSemantics(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	_, err = db.Execute(func(st *State, now int64) error {
		_, err := st.SetPause(&tx.SetPauseTx{Paused: true}, testAdmin.Hex(), now, false)
		return err
	})
	require.Nil(t, err)

	err = vote(db, testVIP, idx, 0)
	require.Equal(t, ErrPaused, err)

	// admin lifecycle operations stay available while paused
	_, err = db.Execute(func(st *State, now int64) error {
		_, err := st.CancelProposal(&tx.CancelProposalTx{Proposal: idx}, testAdmin.Hex(), now, false)
		return err
	})
	require.Nil(t, err)

	_, err = createProposal(db, testAdmin, []string{"yes", "no"})
	require.Equal(t, ErrPaused, err)

	_, err = db.Execute(func(st *State, now int64) error {
		_, err := st.SetPause(&tx.SetPauseTx{Paused: false}, testAdmin.Hex(), now, false)
		return err
	})
	require.Nil(t, err)
	_, err = createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
}

func TestCancelProposal(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)

	_, err = db.Execute(func(st *State, now int64) error {
		_, err := st.CancelProposal(&tx.CancelProposalTx{Proposal: idx}, testAdmin.Hex(), now, false)
		return err
	})
	require.Equal(t, ErrInvalidLifecycleTransition, err)

	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)
	_, err = db.Execute(func(st *State, now int64) error {
		_, err := st.CancelProposal(&tx.CancelProposalTx{Proposal: idx}, testAdmin.Hex(), now, false)
		return err
	})
	require.Nil(t, err)

	p, _, err := db.GetProposalByIndex(idx)
	require.Nil(t, err)
	require.Equal(t, dao_types.ProposalStatusCancelled, p.Status)
	require.True(t, p.Status.Terminal())

	active, _, err := db.GetActiveProposal()
	require.Nil(t, err)
	require.Nil(t, active)
}

func TestUpdateProposalStatus(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)

	updateStatus := func(status uint64) error {
		_, err := db.Execute(func(st *State, now int64) error {
			_, err := st.UpdateProposalStatus(&tx.UpdateStatusTx{Proposal: idx, Status: status}, testAdmin.Hex(), now, false)
			return err
		})
		return err
	}

	require.Equal(t, ErrInvalidLifecycleTransition, updateStatus(uint64(dao_types.ProposalStatusPassed)))

	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	require.Equal(t, ErrInvalidLifecycleTransition, updateStatus(uint64(dao_types.ProposalStatusDraft)))
	require.Equal(t, ErrInvalidLifecycleTransition, updateStatus(uint64(dao_types.ProposalStatusCancelled)))

	require.Nil(t, updateStatus(uint64(dao_types.ProposalStatusPassed)))
	p, _, err := db.GetProposalByIndex(idx)
	require.Nil(t, err)
	require.Equal(t, dao_types.ProposalStatusPassed, p.Status)

	active, _, err := db.GetActiveProposal()
	require.Nil(t, err)
	require.Nil(t, active)

	// terminal states accept no further transition
	require.Equal(t, ErrInvalidLifecycleTransition, updateStatus(uint64(dao_types.ProposalStatusDone)))
}

func TestSetVoteMethodLocked(t *testing.T) {
	db := newTestDB(t, testHolders())
	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	setMethod := func(m uint8) error {
		_, err := db.Execute(func(st *State, now int64) error {
			_, err := st.SetVoteMethod(&tx.SetVoteMethodTx{Method: m}, testAdmin.Hex(), now, false)
			return err
		})
		return err
	}

	require.Equal(t, ErrVoteMethodLocked, setMethod(uint8(dao_types.VoteMethodCappedPercentage)))
	require.Equal(t, ErrInvalidVoteMethod, setMethod(0))
	require.Equal(t, ErrInvalidVoteMethod, setMethod(9))

	p, _, err := db.GetProposalByIndex(idx)
	require.Nil(t, err)
	db.SetNow(func() int64 { return p.EndTime + 1 })
	require.Nil(t, setMethod(uint8(dao_types.VoteMethodCappedPercentage)))
	params, _ := db.GetParams()
	require.Equal(t, dao_types.VoteMethodCappedPercentage, params.VoteMethod)
}

func TestVoteWeightFollowsMethod(t *testing.T) {
	db := newTestDB(t, testHolders())
	_, err := db.Execute(func(st *State, now int64) error {
		_, err := st.SetVoteMethod(&tx.SetVoteMethodTx{Method: uint8(dao_types.VoteMethodCappedPercentage)}, testAdmin.Hex(), now, false)
		return err
	})
	require.Nil(t, err)

	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	_, err = selectProposal(db, testAdmin, idx)
	require.Nil(t, err)

	require.Nil(t, vote(db, testVIP, idx, 0))
	detail, err := db.GetVote(idx, testVIP)
	require.Nil(t, err)
	require.Equal(t, dao_types.VoteMethodCappedPercentage, detail.Method)
	require.Equal(t, uint64(dao_types.DefaultMaxCappedPercentage), detail.Weight)
}

func TestSetMaxPercentageBound(t *testing.T) {
	db := newTestDB(t, testHolders())
	setMax := func(p uint64) error {
		_, err := db.Execute(func(st *State, now int64) error {
			_, err := st.SetMaxPercentage(&tx.SetMaxPercentageTx{Percentage: p}, testAdmin.Hex(), now, false)
			return err
		})
		return err
	}
	require.Equal(t, ErrInvalidMaxPercentage, setMax(101))
	require.Nil(t, setMax(100))
	params, _ := db.GetParams()
	require.Equal(t, uint64(100), params.MaxCappedPercentage)
}

func TestSetVotingDuration(t *testing.T) {
	db := newTestDB(t, testHolders())
	setDuration := func(days uint64) error {
		_, err := db.Execute(func(st *State, now int64) error {
			_, err := st.SetVotingDuration(&tx.SetVotingDurationTx{Days: days}, testAdmin.Hex(), now, false)
			return err
		})
		return err
	}
	require.Equal(t, ErrInvalidVotingDuration, setDuration(0))
	require.Nil(t, setDuration(2))
	params, _ := db.GetParams()
	require.Equal(t, int64(2*dao_types.SecondsPerDay), params.VotingDuration)
}

func TestAdminHandover(t *testing.T) {
	db := newTestDB(t, testHolders())
	_, err := db.Execute(func(st *State, now int64) error {
		_, err := st.SetAdmin(&tx.SetAdminTx{Admin: testAdmin2.Hex()}, testVIP.Hex(), now, false)
		return err
	})
	require.Equal(t, ErrUnauthorized, err)

	setAdmin(t, db, testAdmin, testAdmin2)
	require.Equal(t, testAdmin2.Hex(), db.Header().Admin)

	_, err = createProposal(db, testAdmin, []string{"yes", "no"})
	require.Equal(t, ErrUnauthorized, err)
	_, err = createProposal(db, testAdmin2, []string{"yes", "no"})
	require.Nil(t, err)
}

func TestFailedOpLeavesNoTrace(t *testing.T) {
	db := newTestDB(t, testHolders())
	height := db.Header().Height

	_, err := createProposal(db, testVIP, []string{"yes", "no"})
	require.Equal(t, ErrUnauthorized, err)
	require.Equal(t, height, db.Header().Height)

	idx, err := createProposal(db, testAdmin, []string{"yes", "no"})
	require.Nil(t, err)
	require.Equal(t, height+1, db.Header().Height)
	require.Equal(t, uint64(1), idx)
}
