package history

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	ListRecentFunc    func(ctx context.Context, userID uuid.UUID, channel *domain.Channel, limit int) ([]domain.HistoryEntry, error)
	ArchiveBeyondFunc func(ctx context.Context, userID uuid.UUID, keepLast int) (int64, error)
	ChannelStatsFunc  func(ctx context.Context, userID uuid.UUID) (map[domain.Channel]int, error)
	UsersAboveFunc    func(ctx context.Context, limit int) ([]uuid.UUID, error)

	calls struct {
		ListRecent []struct {
			UserID  uuid.UUID
			Channel *domain.Channel
			Limit   int
		}
		ArchiveBeyond []struct {
			UserID   uuid.UUID
			KeepLast int
		}
		ChannelStats []struct {
			UserID uuid.UUID
		}
		UsersAbove []struct {
			Limit int
		}
	}
	lockListRecent    sync.RWMutex
	lockArchiveBeyond sync.RWMutex
	lockChannelStats  sync.RWMutex
	lockUsersAbove    sync.RWMutex
}

func (mock *historyRepoMock) ListRecent(ctx context.Context, userID uuid.UUID, channel *domain.Channel, limit int) ([]domain.HistoryEntry, error) {
	if mock.ListRecentFunc == nil {
		panic("historyRepoMock.ListRecentFunc: method is nil but historyRepo.ListRecent was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		Channel *domain.Channel
		Limit   int
	}{UserID: userID, Channel: channel, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, userID, channel, limit)
}

func (mock *historyRepoMock) ListRecentCalls() []struct {
	UserID  uuid.UUID
	Channel *domain.Channel
	Limit   int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *historyRepoMock) ArchiveBeyond(ctx context.Context, userID uuid.UUID, keepLast int) (int64, error) {
	if mock.ArchiveBeyondFunc == nil {
		panic("historyRepoMock.ArchiveBeyondFunc: method is nil but historyRepo.ArchiveBeyond was just called")
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

func (mock *historyRepoMock) ArchiveBeyondCalls() []struct {
	UserID   uuid.UUID
	KeepLast int
} {
	mock.lockArchiveBeyond.RLock()
	calls := mock.calls.ArchiveBeyond
	mock.lockArchiveBeyond.RUnlock()
	return calls
}

func (mock *historyRepoMock) ChannelStats(ctx context.Context, userID uuid.UUID) (map[domain.Channel]int, error) {
	if mock.ChannelStatsFunc == nil {
		panic("historyRepoMock.ChannelStatsFunc: method is nil but historyRepo.ChannelStats was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockChannelStats.Lock()
	mock.calls.ChannelStats = append(mock.calls.ChannelStats, callInfo)
	mock.lockChannelStats.Unlock()
	return mock.ChannelStatsFunc(ctx, userID)
}

func (mock *historyRepoMock) ChannelStatsCalls() []struct{ UserID uuid.UUID } {
	mock.lockChannelStats.RLock()
	calls := mock.calls.ChannelStats
	mock.lockChannelStats.RUnlock()
	return calls
}

func (mock *historyRepoMock) UsersAbove(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if mock.UsersAboveFunc == nil {
		panic("historyRepoMock.UsersAboveFunc: method is nil but historyRepo.UsersAbove was just called")
	}
	callInfo := struct{ Limit int }{Limit: limit}
	mock.lockUsersAbove.Lock()
	mock.calls.UsersAbove = append(mock.calls.UsersAbove, callInfo)
	mock.lockUsersAbove.Unlock()
	return mock.UsersAboveFunc(ctx, limit)
}

func (mock *historyRepoMock) UsersAboveCalls() []struct{ Limit int } {
	mock.lockUsersAbove.RLock()
	calls := mock.calls.UsersAbove
	mock.lockUsersAbove.RUnlock()
	return calls
}
