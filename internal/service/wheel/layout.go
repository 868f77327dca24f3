package wheel

import (
	"fmt"
	"math"
	"strconv"
	"wheel_backend/internal/model"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	saturationPct = 70
	lightnessPct  = 50
	// Колесо рисуется в поле 100x100 с центром (50, 50)
	radius = 50.0
)

// Layout Цвета и геометрия сегментов, зависят только от их количества
func Layout(n int) []model.Segment {
	if n <= 0 {
		return nil
	}

	sweep := 360 / float64(n)
	path := wedgePath(sweep)

	segments := make([]model.Segment, n)
	for i := range n {
		hue := float64(i) * sweep
		segments[i] = model.Segment{
			Index:         i,
			Label:         i + 1,
			Hue:           hue,
			Color:         hslColor(hue),
			Hex:           colorful.Hsl(hue, saturationPct/100.0, lightnessPct/100.0).Hex(),
			Rotation:      hue,
			Sweep:         sweep,
			LabelRotation: sweep / 2,
			Path:          path,
		}
	}
	return segments
}

func hslColor(hue float64) string {
	return fmt.Sprintf("hsl(%s, %d%%, %d%%)",
		strconv.FormatFloat(hue, 'f', -1, 64),
		saturationPct,
		lightnessPct,
	)
}

// wedgePath Сектор от центра к верхней точке и по дуге по часовой стрелке на sweep градусов.
// Каждый сегмент потом поворачивается на свой Rotation вокруг центра
func wedgePath(sweep float64) string {
	rad := sweep * math.Pi / 180
	x := radius + radius*math.Sin(rad)
	y := radius - radius*math.Cos(rad)

	largeArc := 0
	if sweep > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M50,50 L50,0 A50,50 0 %d,1 %s,%s Z",
		largeArc,
		strconv.FormatFloat(x, 'f', 4, 64),
		strconv.FormatFloat(y, 'f', 4, 64),
	)
}
