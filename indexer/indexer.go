package indexer

import (
	"strconv"
	"strings"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/observer"
	dao_types "github.com/calehh/dao-app/types"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// GovIndexer mirrors governance events into sqlite so history survives a
// restart and read queries stay off the state tree.
type GovIndexer struct {
	logger        cosmoslog.Logger
	db            *gorm.DB
	eventHandlers map[string]eventHandler
}

type eventHandler func(event dao_types.Event)

func NewGovIndexer(logger cosmoslog.Logger, dbPath string) (*GovIndexer, error) {
	logger = logger.With("module", "indexer")
	logger.Info("NewGovIndexer", "dbPath", dbPath)
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Proposal{}, &Vote{}, &SessionClose{}, &ParamsChange{}).Error; err != nil {
		return nil, err
	}
	c := GovIndexer{
		logger:        logger,
		db:            db,
		eventHandlers: map[string]eventHandler{},
	}
	c.eventHandlers = map[string]eventHandler{
		dao_types.EventProposalCreatedType:   c.handleEventProposalCreated,
		dao_types.EventVoteType:              c.handleEventVote,
		dao_types.EventProposalCancelledType: c.handleEventProposalCancelled,
		dao_types.EventProposalStatusType:    c.handleEventProposalStatus,
		dao_types.EventDAOStatusType:         c.handleEventDAOStatus,
		dao_types.EventSessionClosedType:     c.handleEventSessionClosed,
	}
	return &c, nil
}

// Start subscribes the indexer to the event bus. Handlers run on the
// publisher's goroutine after the operation has been persisted.
func (c *GovIndexer) Start() {
	for evType, h := range c.eventHandlers {
		handler := h
		observer.GovObserver.On(evType, func(event dao_types.Event) {
			handler(event)
		})
	}
}

func (c *GovIndexer) Close() error {
	return c.db.Close()
}

func (c *GovIndexer) handleEventProposalCreated(event dao_types.Event) {
	ev := dao_types.DecodeEventProposalCreated(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	proposal := Proposal{
		Id:              ev.ProposalIndex,
		Session:         ev.Session,
		CreatorAddress:  ev.Creator,
		Title:           ev.Title,
		Choices:         ev.Choices,
		Status:          uint64(dao_types.ProposalStatusDraft),
		CreateTimestamp: ev.Timestamp,
	}
	if err := c.db.Save(&proposal).Error; err != nil {
		c.logger.Error("save proposal fail", "err", err)
	}
}

func (c *GovIndexer) handleEventVote(event dao_types.Event) {
	ev := dao_types.DecodeEventVote(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	vote := Vote{
		Proposal:     ev.Proposal,
		VoterAddress: ev.Voter,
		Choice:       ev.Choice,
		Weight:       ev.Weight,
		Method:       uint64(ev.Method),
		Timestamp:    ev.Timestamp,
	}
	if err := c.db.Create(&vote).Error; err != nil {
		c.logger.Error("save vote fail", "err", err)
	}
}

func (c *GovIndexer) handleEventProposalCancelled(event dao_types.Event) {
	ev := dao_types.DecodeEventProposalCancelled(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	var proposal Proposal
	if err := c.db.First(&proposal, ev.Proposal).Error; err != nil {
		c.logger.Error("get proposal fail", "err", err)
		return
	}
	proposal.Status = uint64(dao_types.ProposalStatusCancelled)
	if err := c.db.Save(&proposal).Error; err != nil {
		c.logger.Error("save proposal fail", "err", err)
	}
}

func (c *GovIndexer) handleEventProposalStatus(event dao_types.Event) {
	ev := dao_types.DecodeEventProposalStatus(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	var proposal Proposal
	if err := c.db.First(&proposal, ev.Proposal).Error; err != nil {
		c.logger.Error("get proposal fail", "err", err)
		return
	}
	proposal.Status = uint64(ev.Status)
	if err := c.db.Save(&proposal).Error; err != nil {
		c.logger.Error("save proposal fail", "err", err)
	}
}

func (c *GovIndexer) handleEventDAOStatus(event dao_types.Event) {
	ev := dao_types.DecodeEventDAOStatus(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	change := ParamsChange{
		Change:    ev.Change,
		Paused:    ev.Paused,
		Method:    uint64(ev.Method),
		Admin:     ev.Admin,
		Timestamp: ev.Timestamp,
	}
	if err := c.db.Create(&change).Error; err != nil {
		c.logger.Error("save params change fail", "err", err)
	}
}

func (c *GovIndexer) handleEventSessionClosed(event dao_types.Event) {
	ev := dao_types.DecodeEventSessionClosed(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	rejected := make([]string, len(ev.Rejected))
	for i := range ev.Rejected {
		rejected[i] = strconv.FormatUint(ev.Rejected[i], 10)
	}
	sc := SessionClose{
		Id:             ev.Session,
		Selected:       ev.Selected,
		Rejected:       strings.Join(rejected, ","),
		StartTimestamp: ev.StartTime,
		EndTimestamp:   ev.EndTime,
	}
	if err := c.db.Save(&sc).Error; err != nil {
		c.logger.Error("save session close fail", "err", err)
	}
	var selected Proposal
	if err := c.db.First(&selected, ev.Selected).Error; err == nil {
		selected.Status = uint64(dao_types.ProposalStatusChosen)
		selected.StartTimestamp = ev.StartTime
		selected.EndTimestamp = ev.EndTime
		if err := c.db.Save(&selected).Error; err != nil {
			c.logger.Error("save proposal fail", "err", err)
		}
	}
	for _, idx := range ev.Rejected {
		var p Proposal
		if err := c.db.First(&p, idx).Error; err != nil {
			continue
		}
		p.Status = uint64(dao_types.ProposalStatusRejected)
		if err := c.db.Save(&p).Error; err != nil {
			c.logger.Error("save proposal fail", "err", err)
		}
	}
}

func (c *GovIndexer) GetProposals(page int, pageSize int) ([]Proposal, uint64, error) {
	var proposals []Proposal
	err := c.db.Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Proposal{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (c *GovIndexer) GetProposalsBySession(session uint64, page int, pageSize int) ([]Proposal, uint64, error) {
	var proposals []Proposal
	err := c.db.Where("session = ?", session).Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Proposal{}).Where("session = ?", session).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (c *GovIndexer) GetProposalsByStatus(status uint64, page int, pageSize int) ([]Proposal, uint64, error) {
	var proposals []Proposal
	err := c.db.Where("status = ?", status).Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Proposal{}).Where("status = ?", status).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (c *GovIndexer) GetProposalById(proposalId uint64) (Proposal, error) {
	var proposal Proposal
	err := c.db.Where("id = ?", proposalId).First(&proposal).Error
	if err != nil {
		return Proposal{}, err
	}
	return proposal, nil
}

func (c *GovIndexer) GetProposalsByCreator(creator string, page int, pageSize int) ([]Proposal, uint64, error) {
	var proposals []Proposal
	err := c.db.Where("creator_address = ?", creator).Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Proposal{}).Where("creator_address = ?", creator).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (c *GovIndexer) GetVotesByProposal(proposal uint64, page int, pageSize int) ([]Vote, uint64, error) {
	var votes []Vote
	err := c.db.Where("proposal = ?", proposal).Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&votes).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Vote{}).Where("proposal = ?", proposal).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return votes, total, nil
}

func (c *GovIndexer) GetVotesByVoter(voter string, page int, pageSize int) ([]Vote, uint64, error) {
	var votes []Vote
	err := c.db.Where("voter_address = ?", voter).Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&votes).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Vote{}).Where("voter_address = ?", voter).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return votes, total, nil
}

func (c *GovIndexer) GetSessionCloses(page int, pageSize int) ([]SessionClose, uint64, error) {
	var closes []SessionClose
	err := c.db.Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&closes).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&SessionClose{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return closes, total, nil
}

func (c *GovIndexer) GetParamsChanges(page int, pageSize int) ([]ParamsChange, uint64, error) {
	var changes []ParamsChange
	err := c.db.Order("id desc").Offset(page * pageSize).Limit(pageSize).Find(&changes).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&ParamsChange{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return changes, total, nil
}
