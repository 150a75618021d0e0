package types

type Proposal struct {
	Index       uint64         `json:"index"`
	Session     uint64         `json:"session"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Choices     []string       `json:"choices"`
	Creator     string         `json:"creator"`
	Status      ProposalStatus `json:"status"`
	StartTime   int64          `json:"start_time"`
	EndTime     int64          `json:"end_time"`
	Tallies     []uint64       `json:"tallies"`
	VoteCounts  []uint64       `json:"vote_counts"`
}

type VoteDetail struct {
	Proposal  uint64     `json:"proposal"`
	Voter     string     `json:"voter"`
	Choice    uint64     `json:"choice"`
	Weight    uint64     `json:"weight"`
	Method    VoteMethod `json:"method"`
	Timestamp int64      `json:"timestamp"`
}

type ProposalStatus uint64

const (
	ProposalStatusDraft     ProposalStatus = 1
	ProposalStatusChosen    ProposalStatus = 2
	ProposalStatusPassed    ProposalStatus = 3
	ProposalStatusRejected  ProposalStatus = 4
	ProposalStatusDone      ProposalStatus = 5
	ProposalStatusCancelled ProposalStatus = 6
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusDraft:
		return "draft"
	case ProposalStatusChosen:
		return "chosen"
	case ProposalStatusPassed:
		return "passed"
	case ProposalStatusRejected:
		return "rejected"
	case ProposalStatusDone:
		return "done"
	case ProposalStatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether no further transition may leave s.
func (s ProposalStatus) Terminal() bool {
	switch s {
	case ProposalStatusPassed, ProposalStatusRejected, ProposalStatusDone, ProposalStatusCancelled:
		return true
	}
	return false
}

type Tier uint8

const (
	TierNone   Tier = 0
	TierBronze Tier = 1
	TierSilver Tier = 2
	TierGold   Tier = 3
	TierVIP    Tier = 4
)

func (t Tier) String() string {
	switch t {
	case TierBronze:
		return "bronze"
	case TierSilver:
		return "silver"
	case TierGold:
		return "gold"
	case TierVIP:
		return "vip"
	}
	return "none"
}

// Points is the TierPoint vote weight of the tier.
func (t Tier) Points() uint64 {
	return uint64(t)
}

type VoteMethod uint8

const (
	VoteMethodUnknown           VoteMethod = 0
	VoteMethodTierPoint         VoteMethod = 1
	VoteMethodHoldingPercentage VoteMethod = 2
	VoteMethodCappedPercentage  VoteMethod = 3
)

func (m VoteMethod) String() string {
	switch m {
	case VoteMethodTierPoint:
		return "tier_point"
	case VoteMethodHoldingPercentage:
		return "holding_percentage"
	case VoteMethodCappedPercentage:
		return "capped_percentage"
	}
	return "unknown"
}

func (m VoteMethod) Valid() bool {
	return m >= VoteMethodTierPoint && m <= VoteMethodCappedPercentage
}

const (
	MinChoices = 2
	MaxChoices = 4

	// PercentageBase represents 100% in holding-percentage weights.
	PercentageBase = 1_000_000
	// MaxPercentageBound is the upper bound the max-percentage setter accepts.
	// The stored cap lives on PercentageBase, so anything set through the
	// setter is far below the genesis default; kept as the source behaves.
	MaxPercentageBound = 100

	DefaultMaxCappedPercentage = 30_000

	SecondsPerDay = 86_400
)

// GovParams is the global governance configuration. It is written at genesis
// and afterwards mutated only through admin operations, one field per op.
type GovParams struct {
	VIPThreshold        uint64     `json:"vip_threshold"`
	GoldThreshold       uint64     `json:"gold_threshold"`
	SilverThreshold     uint64     `json:"silver_threshold"`
	BronzeThreshold     uint64     `json:"bronze_threshold"`
	MaxCappedPercentage uint64     `json:"max_capped_percentage"`
	VotingDuration      int64      `json:"voting_duration"`
	VoteMethod          VoteMethod `json:"vote_method"`
	Paused              bool       `json:"paused"`
}
