package generation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	CreateFunc       func(ctx context.Context, req domain.GenerationRequest) error
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.RequestStatus, at time.Time) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.GenerationRequest, error)
	ListByUserFunc   func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.GenerationRequest, error)
	CountByUserFunc  func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Req domain.GenerationRequest
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.RequestStatus
			At     time.Time
		}
		GetByID []struct {
			ID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		CountByUser []struct {
			UserID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockGetByID      sync.RWMutex
	lockListByUser   sync.RWMutex
	lockCountByUser  sync.RWMutex
}

func (mock *requestRepoMock) Create(ctx context.Context, req domain.GenerationRequest) error {
	if mock.CreateFunc == nil {
		panic("requestRepoMock.CreateFunc: method is nil but requestRepo.Create was just called")
	}
	callInfo := struct {
		Req domain.GenerationRequest
	}{Req: req}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *requestRepoMock) CreateCalls() []struct {
	Req domain.GenerationRequest
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requestRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus, at time.Time) error {
	if mock.UpdateStatusFunc == nil {
		panic("requestRepoMock.UpdateStatusFunc: method is nil but requestRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.RequestStatus
		At     time.Time
	}{ID: id, Status: status, At: at}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, at)
}

func (mock *requestRepoMock) UpdateStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.RequestStatus
	At     time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *requestRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.GenerationRequest, error) {
	if mock.GetByIDFunc == nil {
		panic("requestRepoMock.GetByIDFunc: method is nil but requestRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *requestRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *requestRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]domain.GenerationRequest, error) {
	if mock.ListByUserFunc == nil {
		panic("requestRepoMock.ListByUserFunc: method is nil but requestRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Limit  int
		Offset int
	}{UserID: userID, Limit: limit, Offset: offset}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *requestRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *requestRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("requestRepoMock.CountByUserFunc: method is nil but requestRepo.CountByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *requestRepoMock) CountByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockCountByUser.RLock()
	calls := mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}

var _ artifactRepo = &artifactRepoMock{}

type artifactRepoMock struct {
	CreateFunc         func(ctx context.Context, a domain.Artifact) error
	MarkPublishedFunc  func(ctx context.Context, id uuid.UUID, userID uuid.UUID, at time.Time) (*domain.Artifact, error)
	ListByRequestFunc  func(ctx context.Context, requestID uuid.UUID) ([]domain.Artifact, error)
	ListByRequestsFunc func(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]domain.Artifact, error)

	calls struct {
		Create []struct {
			A domain.Artifact
		}
		MarkPublished []struct {
			ID     uuid.UUID
			UserID uuid.UUID
			At     time.Time
		}
		ListByRequest []struct {
			RequestID uuid.UUID
		}
		ListByRequests []struct {
			RequestIDs []uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockMarkPublished  sync.RWMutex
	lockListByRequest  sync.RWMutex
	lockListByRequests sync.RWMutex
}

func (mock *artifactRepoMock) Create(ctx context.Context, a domain.Artifact) error {
	if mock.CreateFunc == nil {
		panic("artifactRepoMock.CreateFunc: method is nil but artifactRepo.Create was just called")
	}
	callInfo := struct {
		A domain.Artifact
	}{A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *artifactRepoMock) CreateCalls() []struct {
	A domain.Artifact
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *artifactRepoMock) MarkPublished(ctx context.Context, id uuid.UUID, userID uuid.UUID, at time.Time) (*domain.Artifact, error) {
	if mock.MarkPublishedFunc == nil {
		panic("artifactRepoMock.MarkPublishedFunc: method is nil but artifactRepo.MarkPublished was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		UserID uuid.UUID
		At     time.Time
	}{ID: id, UserID: userID, At: at}
	mock.lockMarkPublished.Lock()
	mock.calls.MarkPublished = append(mock.calls.MarkPublished, callInfo)
	mock.lockMarkPublished.Unlock()
	return mock.MarkPublishedFunc(ctx, id, userID, at)
}

func (mock *artifactRepoMock) MarkPublishedCalls() []struct {
	ID     uuid.UUID
	UserID uuid.UUID
	At     time.Time
} {
	mock.lockMarkPublished.RLock()
	calls := mock.calls.MarkPublished
	mock.lockMarkPublished.RUnlock()
	return calls
}

func (mock *artifactRepoMock) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Artifact, error) {
	if mock.ListByRequestFunc == nil {
		panic("artifactRepoMock.ListByRequestFunc: method is nil but artifactRepo.ListByRequest was just called")
	}
	callInfo := struct {
		RequestID uuid.UUID
	}{RequestID: requestID}
	mock.lockListByRequest.Lock()
	mock.calls.ListByRequest = append(mock.calls.ListByRequest, callInfo)
	mock.lockListByRequest.Unlock()
	return mock.ListByRequestFunc(ctx, requestID)
}

func (mock *artifactRepoMock) ListByRequestCalls() []struct {
	RequestID uuid.UUID
} {
	mock.lockListByRequest.RLock()
	calls := mock.calls.ListByRequest
	mock.lockListByRequest.RUnlock()
	return calls
}

func (mock *artifactRepoMock) ListByRequests(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]domain.Artifact, error) {
	if mock.ListByRequestsFunc == nil {
		panic("artifactRepoMock.ListByRequestsFunc: method is nil but artifactRepo.ListByRequests was just called")
	}
	callInfo := struct {
		RequestIDs []uuid.UUID
	}{RequestIDs: requestIDs}
	mock.lockListByRequests.Lock()
	mock.calls.ListByRequests = append(mock.calls.ListByRequests, callInfo)
	mock.lockListByRequests.Unlock()
	return mock.ListByRequestsFunc(ctx, requestIDs)
}

func (mock *artifactRepoMock) ListByRequestsCalls() []struct {
	RequestIDs []uuid.UUID
} {
	mock.lockListByRequests.RLock()
	calls := mock.calls.ListByRequests
	mock.lockListByRequests.RUnlock()
	return calls
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc func(ctx context.Context, e domain.AuditEntry) error

	calls struct {
		Create []struct {
			E domain.AuditEntry
		}
	}
	lockCreate sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, e domain.AuditEntry) error {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	callInfo := struct {
		E domain.AuditEntry
	}{E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *auditRepoMock) CreateCalls() []struct {
	E domain.AuditEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	AppendFunc func(ctx context.Context, e domain.HistoryEntry) error

	calls struct {
		Append []struct {
			E domain.HistoryEntry
		}
	}
	lockAppend sync.RWMutex
}

func (mock *historyRepoMock) Append(ctx context.Context, e domain.HistoryEntry) error {
	if mock.AppendFunc == nil {
		panic("historyRepoMock.AppendFunc: method is nil but historyRepo.Append was just called")
	}
	callInfo := struct {
		E domain.HistoryEntry
	}{E: e}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *historyRepoMock) AppendCalls() []struct {
	E domain.HistoryEntry
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

var _ historyService = &historyServiceMock{}

type historyServiceMock struct {
	RecentContextFunc func(ctx context.Context, userID uuid.UUID, n int) ([]string, error)
	ArchiveBeyondFunc func(ctx context.Context, userID uuid.UUID, keepLast int) (int64, error)

	calls struct {
		RecentContext []struct {
			UserID uuid.UUID
			N      int
		}
		ArchiveBeyond []struct {
			UserID   uuid.UUID
			KeepLast int
		}
	}
	lockRecentContext sync.RWMutex
	lockArchiveBeyond sync.RWMutex
}

func (mock *historyServiceMock) RecentContext(ctx context.Context, userID uuid.UUID, n int) ([]string, error) {
	if mock.RecentContextFunc == nil {
		panic("historyServiceMock.RecentContextFunc: method is nil but historyService.RecentContext was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		N      int
	}{UserID: userID, N: n}
	mock.lockRecentContext.Lock()
	mock.calls.RecentContext = append(mock.calls.RecentContext, callInfo)
	mock.lockRecentContext.Unlock()
	return mock.RecentContextFunc(ctx, userID, n)
}

func (mock *historyServiceMock) RecentContextCalls() []struct {
	UserID uuid.UUID
	N      int
} {
	mock.lockRecentContext.RLock()
	calls := mock.calls.RecentContext
	mock.lockRecentContext.RUnlock()
	return calls
}

func (mock *historyServiceMock) ArchiveBeyond(ctx context.Context, userID uuid.UUID, keepLast int) (int64, error) {
	if mock.ArchiveBeyondFunc == nil {
		panic("historyServiceMock.ArchiveBeyondFunc: method is nil but historyService.ArchiveBeyond was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		KeepLast int
	}{UserID: userID, KeepLast: keepLast}
	mock.lockArchiveBeyond.Lock()
	mock.calls.ArchiveBeyond = append(mock.calls.ArchiveBeyond, callInfo)
	mock.lockArchiveBeyond.Unlock()
	return mock.ArchiveBeyondFunc(ctx, userID, keepLast)
}

func (mock *historyServiceMock) ArchiveBeyondCalls() []struct {
	UserID   uuid.UUID
	KeepLast int
} {
	mock.lockArchiveBeyond.RLock()
	calls := mock.calls.ArchiveBeyond
	mock.lockArchiveBeyond.RUnlock()
	return calls
}

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, p llm.Prompt, model string) (string, error)

	calls struct {
		Generate []struct {
			P     llm.Prompt
			Model string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, p llm.Prompt, model string) (string, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		P     llm.Prompt
		Model string
	}{P: p, Model: model}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, p, model)
}

func (mock *generatorMock) GenerateCalls() []struct {
	P     llm.Prompt
	Model string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Fn func(ctx context.Context) error
	}{Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Fn func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
