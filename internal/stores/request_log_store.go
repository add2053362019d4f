package stores

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"log-admin-probe/internal/models"
)

// RequestLogStore keeps admin API log records in memory. Listing is newest first.
//
//go:generate mockgen -source=request_log_store.go -destination=./mocks/request_log_store_mock.go -package=mocks
type RequestLogStore interface {
	// List returns a page of logs and the total number of stored logs.
	List(ctx context.Context, limit, offset int) ([]*models.RequestLog, int64, error)
	// All returns every stored log, newest first.
	All(ctx context.Context) ([]*models.RequestLog, error)
	// DeleteByIDs removes the logs with the given ids and returns how many existed.
	// Unknown ids are ignored.
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

type requestLogStore struct {
	mu   sync.RWMutex
	logs []*models.RequestLog // ascending by ID
}

func NewRequestLogStore(seed []*models.RequestLog) RequestLogStore {
	logs := slices.Clone(seed)
	slices.SortFunc(logs, func(a, b *models.RequestLog) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return &requestLogStore{logs: logs}
}

func (s *requestLogStore) List(ctx context.Context, limit, offset int) ([]*models.RequestLog, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if limit <= 0 || offset < 0 {
		return nil, 0, fmt.Errorf("invalid page limit=%d offset=%d", limit, offset)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.logs)
	page := make([]*models.RequestLog, 0, min(limit, max(total-offset, 0)))
	for i := total - 1 - offset; i >= 0 && len(page) < limit; i-- {
		page = append(page, copyOf(s.logs[i]))
	}
	return page, int64(total), nil
}

func (s *requestLogStore) All(ctx context.Context) ([]*models.RequestLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*models.RequestLog, 0, len(s.logs))
	for i := len(s.logs) - 1; i >= 0; i-- {
		all = append(all, copyOf(s.logs[i]))
	}
	return all, nil
}

func (s *requestLogStore) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.logs)
	s.logs = slices.DeleteFunc(s.logs, func(l *models.RequestLog) bool {
		return slices.Contains(ids, l.ID)
	})
	return int64(before - len(s.logs)), nil
}

func copyOf(l *models.RequestLog) *models.RequestLog {
	c := *l
	return &c
}

var seedModels = []string{"gpt-4o-mini", "claude-3-haiku", "gemini-1.5-flash", "llama-3.1-70b"}

// SeedRequestLogs generates n logs with ids 1..n, one minute apart and ending at now.
func SeedRequestLogs(n int, now time.Time) []*models.RequestLog {
	logs := make([]*models.RequestLog, 0, n)
	for i := 1; i <= n; i++ {
		log := &models.RequestLog{
			ID:           int64(i),
			ProxyKeyName: fmt.Sprintf("key-%d", (i-1)%3+1),
			ProxyKeyID:   fmt.Sprintf("pk_%03d", (i-1)%3+1),
			Model:        seedModels[(i-1)%len(seedModels)],
			StatusCode:   200,
			IsStream:     i%2 == 0,
			Duration:     int64(100 + 37*i),
			TokensUsed:   50 * i,
			CreatedAt:    now.Add(-time.Duration(n-i) * time.Minute).UTC(),
		}
		if i%4 == 0 {
			log.StatusCode = 502
			log.Error = "upstream provider error"
		}
		logs = append(logs, log)
	}
	return logs
}
