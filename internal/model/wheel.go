package model

import "time"

// WheelState Состояние колеса
type WheelState string

const (
	Idle     WheelState = "idle"
	Spinning WheelState = "spinning"
)

// Wheel Снимок состояния колеса
type Wheel struct {
	SegmentCount int
	State        WheelState
	Rotation     float64 // Накопленный угол поворота в градусах
	Result       *int    // Выпавший сегмент (с 1), только в Idle после спина
	SpinID       string
	SpinDuration time.Duration
	Easing       string
	Segments     []Segment
}

// Segment Один сектор колеса
type Segment struct {
	Index         int     // С нуля
	Label         int     // С единицы
	Hue           float64 // Тон в градусах
	Color         string  // hsl(...)
	Hex           string  // #rrggbb
	Rotation      float64 // Поворот сектора: Index * Sweep
	Sweep         float64 // 360 / N
	LabelRotation float64 // Sweep / 2
	Path          string  // SVG-путь сектора в поле 100x100
}

// SpinPlan Параметры одного спина, вычисляются в момент запуска
type SpinPlan struct {
	ID             string
	ExtraRotations int
	Index          int
	Delta          float64
	StartedAt      time.Time
	Duration       time.Duration
}

// Stats Статистика завершённых спинов для текущего количества сегментов
type Stats struct {
	SegmentCount int
	TotalSpins   int
	Hits         []int // Hits[i] - сколько раз выпал сегмент i+1
}
