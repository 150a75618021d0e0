package state

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
)

// Account is a token-holder record seeded at genesis. The governance core
// reads it as the ledger oracle and never mutates it afterwards.
type Account struct {
	Index   uint64
	Address string
	Balance uint64
	Locked  uint64
	Name    string
}

type accountSt struct {
	Index   uint64 `json:"index"`
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
	Locked  uint64 `json:"locked"`
	Name    string `json:"name"`
}

func (a *Account) MarshalJSON() (dat []byte, err error) {
	o := accountSt{
		Index:   a.Index,
		Address: a.Address,
		Balance: a.Balance,
		Locked:  a.Locked,
		Name:    a.Name,
	}
	return json.Marshal(o)
}

func (a *Account) UnmarshalJSON(dat []byte) (err error) {
	var o accountSt
	err = json.Unmarshal(dat, &o)
	if err != nil {
		return
	}
	a.Index = o.Index
	a.Address = o.Address
	a.Balance = o.Balance
	a.Locked = o.Locked
	a.Name = o.Name
	return
}

func (a *Account) Clone() *Account {
	n := *a
	return &n
}

func (a *Account) SetAddress(addr common.Address) {
	a.Address = addr.Hex()
}

func (a *Account) AddrBytes() []byte {
	return common.HexToAddress(a.Address).Bytes()
}

// Total is the holding amount the tier classifier sees: available + locked.
func (a *Account) Total() uint64 {
	return a.Balance + a.Locked
}
