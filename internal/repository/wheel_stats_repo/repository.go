package wheel_stats_repo

import (
	"sync"
	"wheel_backend/internal/model"
)

// StateRepo Статистика завершённых спинов в памяти процесса.
// Счётчики ведутся отдельно для каждого количества сегментов
type StateRepo struct {
	mtx   sync.RWMutex
	state map[int]*segmentStats
}

type segmentStats struct {
	totalSpins int
	hits       []int
}

// NewWheelStatsRepository Конструктор репозитория с пустой статистикой
func NewWheelStatsRepository() *StateRepo {
	return &StateRepo{
		state: make(map[int]*segmentStats),
	}
}

// Record Учитывает результат (с 1) спина на колесе из segmentCount сегментов.
// Результаты вне диапазона игнорируются
func (r *StateRepo) Record(segmentCount, result int) {
	if segmentCount <= 0 || result < 1 || result > segmentCount {
		return
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.state[segmentCount]
	if !ok {
		st = &segmentStats{hits: make([]int, segmentCount)}
		r.state[segmentCount] = st
	}
	st.totalSpins++
	st.hits[result-1]++
}

// Stats Возвращает копию статистики для segmentCount
func (r *StateRepo) Stats(segmentCount int) model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := model.Stats{
		SegmentCount: segmentCount,
		Hits:         make([]int, max(segmentCount, 0)),
	}
	if st, ok := r.state[segmentCount]; ok {
		res.TotalSpins = st.totalSpins
		copy(res.Hits, st.hits)
	}
	return res
}
