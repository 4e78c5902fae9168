package restriction

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xunjianyin/rank-anything-sub000/internal/domain"
)

var _ restrictionRepo = &restrictionRepoMock{}

type restrictionRepoMock struct {
	CreateFunc        func(ctx context.Context, r domain.UserRestriction) (domain.UserRestriction, error)
	ActiveForUserFunc func(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.UserRestriction, error)
	ListForUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.UserRestriction, error)
	LockUserFunc      func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Create []struct {
			R domain.UserRestriction
		}
		ActiveForUser []struct {
			UserID uuid.UUID
			At     time.Time
		}
		ListForUser []struct {
			UserID uuid.UUID
		}
		LockUser []struct {
			UserID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockActiveForUser sync.RWMutex
	lockListForUser   sync.RWMutex
	lockLockUser      sync.RWMutex
}

func (mock *restrictionRepoMock) Create(ctx context.Context, r domain.UserRestriction) (domain.UserRestriction, error) {
	if mock.CreateFunc == nil {
		panic("restrictionRepoMock.CreateFunc: method is nil but restrictionRepo.Create was just called")
	}
	callInfo := struct {
		R domain.UserRestriction
	}{R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *restrictionRepoMock) CreateCalls() []struct {
	R domain.UserRestriction
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *restrictionRepoMock) ActiveForUser(ctx context.Context, userID uuid.UUID, at time.Time) (*domain.UserRestriction, error) {
	if mock.ActiveForUserFunc == nil {
		panic("restrictionRepoMock.ActiveForUserFunc: method is nil but restrictionRepo.ActiveForUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		At     time.Time
	}{UserID: userID, At: at}
	mock.lockActiveForUser.Lock()
	mock.calls.ActiveForUser = append(mock.calls.ActiveForUser, callInfo)
	mock.lockActiveForUser.Unlock()
	return mock.ActiveForUserFunc(ctx, userID, at)
}

func (mock *restrictionRepoMock) ActiveForUserCalls() []struct {
	UserID uuid.UUID
	At     time.Time
} {
	mock.lockActiveForUser.RLock()
	calls := mock.calls.ActiveForUser
	mock.lockActiveForUser.RUnlock()
	return calls
}

func (mock *restrictionRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserRestriction, error) {
	if mock.ListForUserFunc == nil {
		panic("restrictionRepoMock.ListForUserFunc: method is nil but restrictionRepo.ListForUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID)
}

func (mock *restrictionRepoMock) ListForUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListForUser.RLock()
	calls := mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *restrictionRepoMock) LockUser(ctx context.Context, userID uuid.UUID) error {
	if mock.LockUserFunc == nil {
		panic("restrictionRepoMock.LockUserFunc: method is nil but restrictionRepo.LockUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockLockUser.Lock()
	mock.calls.LockUser = append(mock.calls.LockUser, callInfo)
	mock.lockLockUser.Unlock()
	return mock.LockUserFunc(ctx, userID)
}

func (mock *restrictionRepoMock) LockUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockLockUser.RLock()
	calls := mock.calls.LockUser
	mock.lockLockUser.RUnlock()
	return calls
}

var _ userRatingRepo = &userRatingRepoMock{}

type userRatingRepoMock struct {
	UpsertFunc        func(ctx context.Context, rating domain.UserRating) (domain.UserRating, error)
	CountDislikesFunc func(ctx context.Context, ratedUserID uuid.UUID) (int, error)

	calls struct {
		Upsert []struct {
			Rating domain.UserRating
		}
		CountDislikes []struct {
			RatedUserID uuid.UUID
		}
	}
	lockUpsert        sync.RWMutex
	lockCountDislikes sync.RWMutex
}

func (mock *userRatingRepoMock) Upsert(ctx context.Context, rating domain.UserRating) (domain.UserRating, error) {
	if mock.UpsertFunc == nil {
		panic("userRatingRepoMock.UpsertFunc: method is nil but userRatingRepo.Upsert was just called")
	}
	callInfo := struct {
		Rating domain.UserRating
	}{Rating: rating}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, rating)
}

func (mock *userRatingRepoMock) UpsertCalls() []struct {
	Rating domain.UserRating
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *userRatingRepoMock) CountDislikes(ctx context.Context, ratedUserID uuid.UUID) (int, error) {
	if mock.CountDislikesFunc == nil {
		panic("userRatingRepoMock.CountDislikesFunc: method is nil but userRatingRepo.CountDislikes was just called")
	}
	callInfo := struct {
		RatedUserID uuid.UUID
	}{RatedUserID: ratedUserID}
	mock.lockCountDislikes.Lock()
	mock.calls.CountDislikes = append(mock.calls.CountDislikes, callInfo)
	mock.lockCountDislikes.Unlock()
	return mock.CountDislikesFunc(ctx, ratedUserID)
}

func (mock *userRatingRepoMock) CountDislikesCalls() []struct {
	RatedUserID uuid.UUID
} {
	mock.lockCountDislikes.RLock()
	calls := mock.calls.CountDislikes
	mock.lockCountDislikes.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ rateLimiter = &rateLimiterMock{}

type rateLimiterMock struct {
	CheckAndIncrementFunc func(ctx context.Context, userID uuid.UUID, kind domain.UsageKind) error

	calls struct {
		CheckAndIncrement []struct {
			UserID uuid.UUID
			Kind   domain.UsageKind
		}
	}
	lockCheckAndIncrement sync.RWMutex
}

func (mock *rateLimiterMock) CheckAndIncrement(ctx context.Context, userID uuid.UUID, kind domain.UsageKind) error {
	if mock.CheckAndIncrementFunc == nil {
		panic("rateLimiterMock.CheckAndIncrementFunc: method is nil but rateLimiter.CheckAndIncrement was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Kind   domain.UsageKind
	}{UserID: userID, Kind: kind}
	mock.lockCheckAndIncrement.Lock()
	mock.calls.CheckAndIncrement = append(mock.calls.CheckAndIncrement, callInfo)
	mock.lockCheckAndIncrement.Unlock()
	return mock.CheckAndIncrementFunc(ctx, userID, kind)
}

func (mock *rateLimiterMock) CheckAndIncrementCalls() []struct {
	UserID uuid.UUID
	Kind   domain.UsageKind
} {
	mock.lockCheckAndIncrement.RLock()
	calls := mock.calls.CheckAndIncrement
	mock.lockCheckAndIncrement.RUnlock()
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
