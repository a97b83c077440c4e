package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecogauge/back/internal/models"
)

// memoryReportRepository は提出結果をセッショントークンをキーに保持する。
// グローバル変数ではなくリポジトリとして明示的に管理する
type memoryReportRepository struct {
	reports map[string]*models.Report
	mutex   sync.RWMutex
}

func NewMemoryReportRepository() ReportRepository {
	return &memoryReportRepository{
		reports: make(map[string]*models.Report),
		mutex:   sync.RWMutex{},
	}
}

func (r *memoryReportRepository) Save(ctx context.Context, token string, report *models.Report) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.reports[token] = report
	return nil
}

func (r *memoryReportRepository) GetByToken(ctx context.Context, token string) (*models.Report, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	report, exists := r.reports[token]
	if !exists {
		return nil, fmt.Errorf("report not found")
	}

	return report, nil
}

func (r *memoryReportRepository) Delete(ctx context.Context, token string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.reports, token)
	return nil
}
