package types

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	EventProposalCreatedType   = "proposal_created"
	EventVoteType              = "voted"
	EventProposalCancelledType = "proposal_cancelled"
	EventProposalStatusType    = "proposal_status_updated"
	EventDAOStatusType         = "dao_status_updated"
	EventSessionClosedType     = "session_closed"
)

type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Index bool   `json:"index"`
}

type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

type EventProposalCreated struct {
	ProposalIndex uint64 `json:"proposalIndex"`
	Session       uint64 `json:"session"`
	Creator       string `json:"creator"`
	Title         string `json:"title"`
	Choices       int    `json:"choices"`
	Timestamp     int64  `json:"timestamp"`
}

func EncodeEventProposalCreated(event *EventProposalCreated) Event {
	return Event{
		Type: EventProposalCreatedType,
		Attributes: []EventAttribute{
			{Key: "proposal", Value: fmt.Sprintf("%v", event.ProposalIndex), Index: true},
			{Key: "session", Value: fmt.Sprintf("%v", event.Session), Index: true},
			{Key: "creator", Value: event.Creator, Index: true},
			{Key: "title", Value: event.Title, Index: false},
			{Key: "choices", Value: fmt.Sprintf("%v", event.Choices), Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventProposalCreated(originEvent Event) *EventProposalCreated {
	event := &EventProposalCreated{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.ProposalIndex = proposal
		case "session":
			session, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Session = session
		case "creator":
			event.Creator = v.Value
		case "title":
			event.Title = v.Value
		case "choices":
			choices, err := strconv.Atoi(v.Value)
			if err != nil {
				return nil
			}
			event.Choices = choices
		case "timestamp":
			ts, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}

type EventVote struct {
	Proposal  uint64     `json:"proposal"`
	Voter     string     `json:"voter"`
	Choice    uint64     `json:"choice"`
	Weight    uint64     `json:"weight"`
	Method    VoteMethod `json:"method"`
	Timestamp int64      `json:"timestamp"`
}

func EncodeEventVote(event *EventVote) Event {
	return Event{
		Type: EventVoteType,
		Attributes: []EventAttribute{
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "voter", Value: event.Voter, Index: true},
			{Key: "choice", Value: fmt.Sprintf("%v", event.Choice), Index: false},
			{Key: "weight", Value: fmt.Sprintf("%v", event.Weight), Index: false},
			{Key: "method", Value: fmt.Sprintf("%v", uint8(event.Method)), Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventVote(originEvent Event) *EventVote {
	event := &EventVote{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "voter":
			event.Voter = v.Value
		case "choice":
			choice, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Choice = choice
		case "weight":
			weight, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Weight = weight
		case "method":
			method, err := strconv.ParseUint(v.Value, 10, 8)
			if err != nil {
				return nil
			}
			event.Method = VoteMethod(method)
		case "timestamp":
			ts, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}

type EventProposalCancelled struct {
	Proposal  uint64 `json:"proposal"`
	Session   uint64 `json:"session"`
	Timestamp int64  `json:"timestamp"`
}

func EncodeEventProposalCancelled(event *EventProposalCancelled) Event {
	return Event{
		Type: EventProposalCancelledType,
		Attributes: []EventAttribute{
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "session", Value: fmt.Sprintf("%v", event.Session), Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventProposalCancelled(originEvent Event) *EventProposalCancelled {
	event := &EventProposalCancelled{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "session":
			session, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Session = session
		case "timestamp":
			ts, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}

type EventProposalStatus struct {
	Proposal  uint64         `json:"proposal"`
	Status    ProposalStatus `json:"status"`
	Timestamp int64          `json:"timestamp"`
}

func EncodeEventProposalStatus(event *EventProposalStatus) Event {
	return Event{
		Type: EventProposalStatusType,
		Attributes: []EventAttribute{
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "status", Value: fmt.Sprintf("%v", uint64(event.Status)), Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventProposalStatus(originEvent Event) *EventProposalStatus {
	event := &EventProposalStatus{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "status":
			status, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Status = ProposalStatus(status)
		case "timestamp":
			ts, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}

type EventDAOStatus struct {
	Change    string     `json:"change"`
	Paused    bool       `json:"paused"`
	Method    VoteMethod `json:"method"`
	Admin     string     `json:"admin"`
	Timestamp int64      `json:"timestamp"`
}

func EncodeEventDAOStatus(event *EventDAOStatus) Event {
	return Event{
		Type: EventDAOStatusType,
		Attributes: []EventAttribute{
			{Key: "change", Value: event.Change, Index: true},
			{Key: "paused", Value: fmt.Sprintf("%v", event.Paused), Index: false},
			{Key: "method", Value: fmt.Sprintf("%v", uint8(event.Method)), Index: false},
			{Key: "admin", Value: event.Admin, Index: false},
			{Key: "timestamp", Value: fmt.Sprintf("%v", event.Timestamp), Index: false},
		},
	}
}

func DecodeEventDAOStatus(originEvent Event) *EventDAOStatus {
	event := &EventDAOStatus{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "change":
			event.Change = v.Value
		case "paused":
			paused, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil
			}
			event.Paused = paused
		case "method":
			method, err := strconv.ParseUint(v.Value, 10, 8)
			if err != nil {
				return nil
			}
			event.Method = VoteMethod(method)
		case "admin":
			event.Admin = v.Value
		case "timestamp":
			ts, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Timestamp = ts
		}
	}
	return event
}

type EventSessionClosed struct {
	Session   uint64   `json:"session"`
	Selected  uint64   `json:"selected"`
	Rejected  []uint64 `json:"rejected"`
	StartTime int64    `json:"startTime"`
	EndTime   int64    `json:"endTime"`
}

func EncodeEventSessionClosed(event *EventSessionClosed) Event {
	rejected := make([]string, len(event.Rejected))
	for i := range event.Rejected {
		rejected[i] = fmt.Sprintf("%v", event.Rejected[i])
	}
	return Event{
		Type: EventSessionClosedType,
		Attributes: []EventAttribute{
			{Key: "session", Value: fmt.Sprintf("%v", event.Session), Index: true},
			{Key: "selected", Value: fmt.Sprintf("%v", event.Selected), Index: true},
			{Key: "rejected", Value: strings.Join(rejected, ","), Index: false},
			{Key: "startTime", Value: fmt.Sprintf("%v", event.StartTime), Index: false},
			{Key: "endTime", Value: fmt.Sprintf("%v", event.EndTime), Index: false},
		},
	}
}

func DecodeEventSessionClosed(originEvent Event) *EventSessionClosed {
	event := &EventSessionClosed{Rejected: []uint64{}}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "session":
			session, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Session = session
		case "selected":
			selected, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Selected = selected
		case "rejected":
			if v.Value == "" {
				continue
			}
			for _, part := range strings.Split(v.Value, ",") {
				idx, err := strconv.ParseUint(part, 10, 64)
				if err != nil {
					return nil
				}
				event.Rejected = append(event.Rejected, idx)
			}
		case "startTime":
			start, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.StartTime = start
		case "endTime":
			end, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.EndTime = end
		}
	}
	return event
}
