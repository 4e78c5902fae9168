package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

var _ usageRepo = &usageRepoMock{}

type usageRepoMock struct {
	IncrementIfBelowFunc func(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.UsageKind, limit int) (int, bool, error)
	GetFunc              func(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.UsageKind) (int, error)

	calls struct {
		IncrementIfBelow []struct {
			UserID uuid.UUID
			Day    time.Time
			Kind   domain.UsageKind
			Limit  int
		}
		Get []struct {
			UserID uuid.UUID
			Day    time.Time
			Kind   domain.UsageKind
		}
	}
	lockIncrementIfBelow sync.RWMutex
	lockGet              sync.RWMutex
}

func (mock *usageRepoMock) IncrementIfBelow(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.UsageKind, limit int) (int, bool, error) {
	if mock.IncrementIfBelowFunc == nil {
		panic("usageRepoMock.IncrementIfBelowFunc: method is nil but usageRepo.IncrementIfBelow was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Day    time.Time
		Kind   domain.UsageKind
		Limit  int
	}{UserID: userID, Day: day, Kind: kind, Limit: limit}
	mock.lockIncrementIfBelow.Lock()
	mock.calls.IncrementIfBelow = append(mock.calls.IncrementIfBelow, callInfo)
	mock.lockIncrementIfBelow.Unlock()
	return mock.IncrementIfBelowFunc(ctx, userID, day, kind, limit)
}

func (mock *usageRepoMock) IncrementIfBelowCalls() []struct {
	UserID uuid.UUID
	Day    time.Time
	Kind   domain.UsageKind
	Limit  int
} {
	mock.lockIncrementIfBelow.RLock()
	calls := mock.calls.IncrementIfBelow
	mock.lockIncrementIfBelow.RUnlock()
	return calls
}

func (mock *usageRepoMock) Get(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.UsageKind) (int, error) {
	if mock.GetFunc == nil {
		panic("usageRepoMock.GetFunc: method is nil but usageRepo.Get was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Day    time.Time
		Kind   domain.UsageKind
	}{UserID: userID, Day: day, Kind: kind}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, day, kind)
}

func (mock *usageRepoMock) GetCalls() []struct {
	UserID uuid.UUID
	Day    time.Time
	Kind   domain.UsageKind
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

var _ policyProvider = &policyProviderMock{}

type policyProviderMock struct {
	SnapshotFunc func() domain.ModerationPolicy
}

func (mock *policyProviderMock) Snapshot() domain.ModerationPolicy {
	if mock.SnapshotFunc == nil {
		return domain.DefaultModerationPolicy()
	}
	return mock.SnapshotFunc()
}
