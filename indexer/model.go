package indexer

// sqlite models

type Proposal struct {
	Id              uint64 `gorm:"primaryKey" json:"id"`
	Session         uint64 `json:"session"`
	CreatorAddress  string `json:"creator_address"`
	Title           string `json:"title"`
	Choices         int    `json:"choices"`
	Status          uint64 `json:"status"`
	CreateTimestamp int64  `json:"create_timestamp"`
	StartTimestamp  int64  `json:"start_timestamp"`
	EndTimestamp    int64  `json:"end_timestamp"`
	WinnerChoice    uint64 `json:"winner_choice"`
}

type Vote struct {
	Id           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Proposal     uint64 `json:"proposal"`
	VoterAddress string `json:"voter_address"`
	Choice       uint64 `json:"choice"`
	Weight       uint64 `json:"weight"`
	Method       uint64 `json:"method"`
	Timestamp    int64  `json:"timestamp"`
}

type SessionClose struct {
	Id             uint64 `gorm:"primaryKey" json:"id"`
	Selected       uint64 `json:"selected"`
	Rejected       string `json:"rejected"`
	StartTimestamp int64  `json:"start_timestamp"`
	EndTimestamp   int64  `json:"end_timestamp"`
}

type ParamsChange struct {
	Id        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Change    string `json:"change"`
	Paused    bool   `json:"paused"`
	Method    uint64 `json:"method"`
	Admin     string `json:"admin"`
	Timestamp int64  `json:"timestamp"`
}
