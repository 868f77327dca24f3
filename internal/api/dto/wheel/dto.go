package wheel

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

type WheelResponse struct {
	SegmentCount int       `json:"segment_count"`     // Количество сегментов (2-50)
	MinSegments  int       `json:"min_segments"`      // Нижняя граница ввода
	MaxSegments  int       `json:"max_segments"`      // Верхняя граница ввода
	State        string    `json:"state"`             // idle | spinning
	Rotation     float64   `json:"rotation"`          // Накопленный поворот, градусы
	Result       *int      `json:"result,omitempty"`  // Только в idle после спина
	SpinID       string    `json:"spin_id,omitempty"` // Последний спин
	TransitionMS int64     `json:"transition_ms"`     // Длительность анимации спина
	Easing       string    `json:"easing"`            // CSS timing function
	Segments     []Segment `json:"segments"`
}

type Segment struct {
	Index         int     `json:"index"`
	Label         int     `json:"label"`
	Hue           float64 `json:"hue"`
	Color         string  `json:"color"`
	Hex           string  `json:"hex"`
	Rotation      float64 `json:"rotation"`
	Sweep         float64 `json:"sweep"`
	LabelRotation float64 `json:"label_rotation"`
	Path          string  `json:"path"`
}

type SpinResponse struct {
	Started bool          `json:"started"` // false - колесо уже крутилось
	Wheel   WheelResponse `json:"wheel"`
}

type SegmentsRequest struct {
	Value RawInput `json:"value"` // Сырой ввод: строка или число
}

type SegmentsResponse struct {
	Applied bool          `json:"applied"` // false - ввод заблокирован спином
	Wheel   WheelResponse `json:"wheel"`
}

type StatsResponse struct {
	SegmentCount int   `json:"segment_count"`
	TotalSpins   int   `json:"total_spins"`
	Hits         []int `json:"hits"` // hits[i] - выпадения сегмента i+1
}

// RawInput Значение поля ввода как есть: "12", 12, "abc"
type RawInput string

func (r *RawInput) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawInput(s)
		return nil
	}

	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		raw = ""
	}
	*r = RawInput(raw)
	return nil
}
