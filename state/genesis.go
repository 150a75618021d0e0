package state

import (
	dao_types "github.com/calehh/dao-app/types"
	"github.com/ethereum/go-ethereum/common"
)

// InitGenesis seeds a fresh state: admin, parameters and the token-holder
// records the ledger oracle reads. It runs once, before the first version
// is saved; subsequent starts resume from the stored state.
func (db *StateDB) InitGenesis(doc *dao_types.GenesisDoc) (hash common.Hash, err error) {
	return db.Execute(func(st *State, now int64) error {
		st.SetChainId(doc.ChainID)
		st.header.Admin = common.HexToAddress(doc.Admin).Hex()
		st.header.Session = 1
		st.header.Params = doc.Params
		if st.header.Params.MaxCappedPercentage > dao_types.MaxPercentageBound {
			st.logger.Warn("max capped percentage exceeds setter bound",
				"cap", st.header.Params.MaxCappedPercentage, "bound", dao_types.MaxPercentageBound)
		}
		var supply uint64
		for _, holder := range doc.Holders {
			acnt := &Account{
				Address: common.HexToAddress(holder.Address).Hex(),
				Balance: holder.Balance,
				Locked:  holder.Locked,
				Name:    holder.Name,
			}
			if err := st.AddAccount(acnt); err != nil {
				st.logger.Error("genesis add account fail", "address", holder.Address, "err", err)
				return err
			}
			supply += holder.Balance + holder.Locked
		}
		st.header.TotalSupply = supply
		return nil
	})
}

// Initialized reports whether the tree already carries a saved state.
func (db *StateDB) Initialized() bool {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state.header.Session != 0
}
