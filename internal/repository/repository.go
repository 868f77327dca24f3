package repository

import "wheel_backend/internal/model"

type WheelStatsRepository interface {
	Record(segmentCount, result int)
	Stats(segmentCount int) model.Stats
}
