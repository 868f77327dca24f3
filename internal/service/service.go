package service

import (
	"context"
	"wheel_backend/internal/model"
)

type WheelService interface {
	// Wheel Текущий снимок состояния
	Wheel() model.Wheel
	// Spin Запускает спин. false - колесо уже крутится, ничего не изменилось
	Spin(ctx context.Context) (model.Wheel, bool)
	// SetSegmentCount Применяет сырой ввод количества сегментов. false - ввод заблокирован спином
	SetSegmentCount(ctx context.Context, raw string) (model.Wheel, bool)
	// Await Ждёт показа результата текущего спина
	Await(ctx context.Context) (model.Wheel, error)
	Stats() model.Stats
	Close()
}
