package state

import (
	"math/big"

	"github.com/calehh/dao-app/types"
	"github.com/ethereum/go-ethereum/common"
)

// Ledger is the read-only oracle the tier classifier and weight calculator
// consume. State implements it over the genesis-seeded account records.
type Ledger interface {
	BalanceOf(addr common.Address) (uint64, error)
	LockedAmount(addr common.Address) (uint64, error)
	TotalSupply() (uint64, error)
}

var _ Ledger = &State{}

func (s *State) BalanceOf(addr common.Address) (uint64, error) {
	a, err := s.FindAccount(addr)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, nil
	}
	return a.Balance, nil
}

func (s *State) LockedAmount(addr common.Address) (uint64, error) {
	a, err := s.FindAccount(addr)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, nil
	}
	return a.Locked, nil
}

func (s *State) TotalSupply() (uint64, error) {
	return s.header.TotalSupply, nil
}

func (s *State) totalHoldings(addr common.Address) (uint64, error) {
	a, err := s.FindAccount(addr)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, nil
	}
	return a.Total(), nil
}

func tierForHoldings(total uint64, p types.GovParams) types.Tier {
	switch {
	case total >= p.VIPThreshold:
		return types.TierVIP
	case total >= p.GoldThreshold:
		return types.TierGold
	case total >= p.SilverThreshold:
		return types.TierSilver
	case total >= p.BronzeThreshold:
		return types.TierBronze
	}
	return types.TierNone
}

// TierOf classifies an account by its combined available and locked amount.
// Zero holdings are not an error, the tier is simply TierNone.
func (s *State) TierOf(addr common.Address) (types.Tier, error) {
	total, err := s.totalHoldings(addr)
	if err != nil {
		return types.TierNone, err
	}
	return tierForHoldings(total, s.header.Params), nil
}

func holdingPercentage(total, supply uint64) uint64 {
	if supply == 0 {
		return 0
	}
	pct := new(big.Int).Mul(new(big.Int).SetUint64(total), big.NewInt(types.PercentageBase))
	pct.Div(pct, new(big.Int).SetUint64(supply))
	return pct.Uint64()
}

// VotePercentage is the account's holding share on the PercentageBase scale.
func (s *State) VotePercentage(addr common.Address) (uint64, error) {
	total, err := s.totalHoldings(addr)
	if err != nil {
		return 0, err
	}
	return holdingPercentage(total, s.header.TotalSupply), nil
}

// CappedPercentage clamps the holding share to the configured cap. The
// clamp happens once here; vote weighting reuses this value as is.
func (s *State) CappedPercentage(addr common.Address) (uint64, error) {
	pct, err := s.VotePercentage(addr)
	if err != nil {
		return 0, err
	}
	if max := s.header.Params.MaxCappedPercentage; pct > max {
		pct = max
	}
	return pct, nil
}

func (s *State) weightOf(addr common.Address, method types.VoteMethod) (uint64, error) {
	switch method {
	case types.VoteMethodTierPoint:
		tier, err := s.TierOf(addr)
		if err != nil {
			return 0, err
		}
		return tier.Points(), nil
	case types.VoteMethodHoldingPercentage:
		return s.VotePercentage(addr)
	case types.VoteMethodCappedPercentage:
		return s.CappedPercentage(addr)
	}
	return 0, ErrInvalidVoteMethod
}
