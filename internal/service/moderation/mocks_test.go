package moderation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

var _ proposalRepo = &proposalRepoMock{}

type proposalRepoMock struct {
	CreateFunc           func(ctx context.Context, p domain.Proposal) (domain.Proposal, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (domain.Proposal, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (domain.Proposal, error)
	ListFunc             func(ctx context.Context, status *domain.ProposalStatus, limit, offset int) ([]domain.Proposal, error)
	MarkApprovedFunc     func(ctx context.Context, id uuid.UUID) error
	MarkRejectedFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			P domain.Proposal
		}
		GetByID []struct {
			ID uuid.UUID
		}
		GetByIDForUpdate []struct {
			ID uuid.UUID
		}
		List []struct {
			Status *domain.ProposalStatus
			Limit  int
			Offset int
		}
		MarkApproved []struct {
			ID uuid.UUID
		}
		MarkRejected []struct {
			ID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockMarkApproved     sync.RWMutex
	lockMarkRejected     sync.RWMutex
}

func (mock *proposalRepoMock) Create(ctx context.Context, p domain.Proposal) (domain.Proposal, error) {
	if mock.CreateFunc == nil {
		panic("proposalRepoMock.CreateFunc: method is nil but proposalRepo.Create was just called")
	}
	callInfo := struct {
		P domain.Proposal
	}{P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *proposalRepoMock) CreateCalls() []struct {
	P domain.Proposal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *proposalRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Proposal, error) {
	if mock.GetByIDFunc == nil {
		panic("proposalRepoMock.GetByIDFunc: method is nil but proposalRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *proposalRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *proposalRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Proposal, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("proposalRepoMock.GetByIDForUpdateFunc: method is nil but proposalRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *proposalRepoMock) GetByIDForUpdateCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *proposalRepoMock) List(ctx context.Context, status *domain.ProposalStatus, limit, offset int) ([]domain.Proposal, error) {
	if mock.ListFunc == nil {
		panic("proposalRepoMock.ListFunc: method is nil but proposalRepo.List was just called")
	}
	callInfo := struct {
		Status *domain.ProposalStatus
		Limit  int
		Offset int
	}{Status: status, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status, limit, offset)
}

func (mock *proposalRepoMock) ListCalls() []struct {
	Status *domain.ProposalStatus
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *proposalRepoMock) MarkApproved(ctx context.Context, id uuid.UUID) error {
	if mock.MarkApprovedFunc == nil {
		panic("proposalRepoMock.MarkApprovedFunc: method is nil but proposalRepo.MarkApproved was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockMarkApproved.Lock()
	mock.calls.MarkApproved = append(mock.calls.MarkApproved, callInfo)
	mock.lockMarkApproved.Unlock()
	return mock.MarkApprovedFunc(ctx, id)
}

func (mock *proposalRepoMock) MarkApprovedCalls() []struct {
	ID uuid.UUID
} {
	mock.lockMarkApproved.RLock()
	calls := mock.calls.MarkApproved
	mock.lockMarkApproved.RUnlock()
	return calls
}

func (mock *proposalRepoMock) MarkRejected(ctx context.Context, id uuid.UUID) error {
	if mock.MarkRejectedFunc == nil {
		panic("proposalRepoMock.MarkRejectedFunc: method is nil but proposalRepo.MarkRejected was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockMarkRejected.Lock()
	mock.calls.MarkRejected = append(mock.calls.MarkRejected, callInfo)
	mock.lockMarkRejected.Unlock()
	return mock.MarkRejectedFunc(ctx, id)
}

func (mock *proposalRepoMock) MarkRejectedCalls() []struct {
	ID uuid.UUID
} {
	mock.lockMarkRejected.RLock()
	calls := mock.calls.MarkRejected
	mock.lockMarkRejected.RUnlock()
	return calls
}

// ---

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	CreateFunc         func(ctx context.Context, v domain.Vote) (domain.Vote, error)
	TallyFunc          func(ctx context.Context, proposalID uuid.UUID) (domain.Tally, error)
	ListByProposalFunc func(ctx context.Context, proposalID uuid.UUID) ([]domain.Vote, error)

	calls struct {
		Create []struct {
			V domain.Vote
		}
		Tally []struct {
			ProposalID uuid.UUID
		}
		ListByProposal []struct {
			ProposalID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockTally          sync.RWMutex
	lockListByProposal sync.RWMutex
}

func (mock *voteRepoMock) Create(ctx context.Context, v domain.Vote) (domain.Vote, error) {
	if mock.CreateFunc == nil {
		panic("voteRepoMock.CreateFunc: method is nil but voteRepo.Create was just called")
	}
	callInfo := struct {
		V domain.Vote
	}{V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *voteRepoMock) CreateCalls() []struct {
	V domain.Vote
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *voteRepoMock) Tally(ctx context.Context, proposalID uuid.UUID) (domain.Tally, error) {
	if mock.TallyFunc == nil {
		panic("voteRepoMock.TallyFunc: method is nil but voteRepo.Tally was just called")
	}
	callInfo := struct {
		ProposalID uuid.UUID
	}{ProposalID: proposalID}
	mock.lockTally.Lock()
	mock.calls.Tally = append(mock.calls.Tally, callInfo)
	mock.lockTally.Unlock()
	return mock.TallyFunc(ctx, proposalID)
}

func (mock *voteRepoMock) TallyCalls() []struct {
	ProposalID uuid.UUID
} {
	mock.lockTally.RLock()
	calls := mock.calls.Tally
	mock.lockTally.RUnlock()
	return calls
}

func (mock *voteRepoMock) ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]domain.Vote, error) {
	if mock.ListByProposalFunc == nil {
		panic("voteRepoMock.ListByProposalFunc: method is nil but voteRepo.ListByProposal was just called")
	}
	callInfo := struct {
		ProposalID uuid.UUID
	}{ProposalID: proposalID}
	mock.lockListByProposal.Lock()
	mock.calls.ListByProposal = append(mock.calls.ListByProposal, callInfo)
	mock.lockListByProposal.Unlock()
	return mock.ListByProposalFunc(ctx, proposalID)
}

func (mock *voteRepoMock) ListByProposalCalls() []struct {
	ProposalID uuid.UUID
} {
	mock.lockListByProposal.RLock()
	calls := mock.calls.ListByProposal
	mock.lockListByProposal.RUnlock()
	return calls
}

// ---

var _ entityGateway = &entityGatewayMock{}

type entityGatewayMock struct {
	ExistsFunc func(ctx context.Context, tt domain.TargetType, id uuid.UUID) (bool, error)
	GetFunc    func(ctx context.Context, tt domain.TargetType, id uuid.UUID) (domain.TargetSnapshot, error)
	UpdateFunc func(ctx context.Context, tt domain.TargetType, id uuid.UUID, value map[string]any) error
	DeleteFunc func(ctx context.Context, tt domain.TargetType, id uuid.UUID) error

	calls struct {
		Exists []struct {
			TT domain.TargetType
			ID uuid.UUID
		}
		Get []struct {
			TT domain.TargetType
			ID uuid.UUID
		}
		Update []struct {
			TT    domain.TargetType
			ID    uuid.UUID
			Value map[string]any
		}
		Delete []struct {
			TT domain.TargetType
			ID uuid.UUID
		}
	}
	lockExists sync.RWMutex
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *entityGatewayMock) Exists(ctx context.Context, tt domain.TargetType, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("entityGatewayMock.ExistsFunc: method is nil but entityGateway.Exists was just called")
	}
	callInfo := struct {
		TT domain.TargetType
		ID uuid.UUID
	}{TT: tt, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, tt, id)
}

func (mock *entityGatewayMock) ExistsCalls() []struct {
	TT domain.TargetType
	ID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *entityGatewayMock) Get(ctx context.Context, tt domain.TargetType, id uuid.UUID) (domain.TargetSnapshot, error) {
	if mock.GetFunc == nil {
		panic("entityGatewayMock.GetFunc: method is nil but entityGateway.Get was just called")
	}
	callInfo := struct {
		TT domain.TargetType
		ID uuid.UUID
	}{TT: tt, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, tt, id)
}

func (mock *entityGatewayMock) GetCalls() []struct {
	TT domain.TargetType
	ID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *entityGatewayMock) Update(ctx context.Context, tt domain.TargetType, id uuid.UUID, value map[string]any) error {
	if mock.UpdateFunc == nil {
		panic("entityGatewayMock.UpdateFunc: method is nil but entityGateway.Update was just called")
	}
	callInfo := struct {
		TT    domain.TargetType
		ID    uuid.UUID
		Value map[string]any
	}{TT: tt, ID: id, Value: value}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, tt, id, value)
}

func (mock *entityGatewayMock) UpdateCalls() []struct {
	TT    domain.TargetType
	ID    uuid.UUID
	Value map[string]any
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entityGatewayMock) Delete(ctx context.Context, tt domain.TargetType, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entityGatewayMock.DeleteFunc: method is nil but entityGateway.Delete was just called")
	}
	callInfo := struct {
		TT domain.TargetType
		ID uuid.UUID
	}{TT: tt, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, tt, id)
}

func (mock *entityGatewayMock) DeleteCalls() []struct {
	TT domain.TargetType
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

// ---

var _ ledger = &ledgerMock{}

type ledgerMock struct {
	AppendFunc func(ctx context.Context, e domain.EditHistoryEntry) (domain.EditHistoryEntry, error)

	calls struct {
		Append []struct {
			E domain.EditHistoryEntry
		}
	}
	lockAppend sync.RWMutex
}

func (mock *ledgerMock) Append(ctx context.Context, e domain.EditHistoryEntry) (domain.EditHistoryEntry, error) {
	if mock.AppendFunc == nil {
		panic("ledgerMock.AppendFunc: method is nil but ledger.Append was just called")
	}
	callInfo := struct {
		E domain.EditHistoryEntry
	}{E: e}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *ledgerMock) AppendCalls() []struct {
	E domain.EditHistoryEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

// ---

var _ contentPolicy = &contentPolicyMock{}

// contentPolicyMock passes every text unless CheckTextFunc is set.
type contentPolicyMock struct {
	CheckTextFunc func(texts ...string) error
}

func (mock *contentPolicyMock) CheckText(texts ...string) error {
	if mock.CheckTextFunc == nil {
		return nil
	}
	return mock.CheckTextFunc(texts...)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}
