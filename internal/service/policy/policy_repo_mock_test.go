package policy

import (
	"context"
	"sync"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

var _ policyRepo = &policyRepoMock{}

type policyRepoMock struct {
	GetFunc    func(ctx context.Context) (domain.ModerationPolicy, error)
	UpdateFunc func(ctx context.Context, p domain.ModerationPolicy) (domain.ModerationPolicy, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			P   domain.ModerationPolicy
		}
	}
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *policyRepoMock) Get(ctx context.Context) (domain.ModerationPolicy, error) {
	if mock.GetFunc == nil {
		panic("policyRepoMock.GetFunc: method is nil but policyRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *policyRepoMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *policyRepoMock) Update(ctx context.Context, p domain.ModerationPolicy) (domain.ModerationPolicy, error) {
	if mock.UpdateFunc == nil {
		panic("policyRepoMock.UpdateFunc: method is nil but policyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.ModerationPolicy
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *policyRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.ModerationPolicy
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
