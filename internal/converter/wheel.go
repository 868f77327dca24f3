package converter

import (
	dto "wheel_backend/internal/api/dto/wheel"
	"wheel_backend/internal/model"
	"wheel_backend/internal/service/wheel"
)

func ToWheelResponse(w model.Wheel) dto.WheelResponse {
	return dto.WheelResponse{
		SegmentCount: w.SegmentCount,
		MinSegments:  wheel.MinSegments,
		MaxSegments:  wheel.MaxSegments,
		State:        string(w.State),
		Rotation:     w.Rotation,
		Result:       w.Result,
		SpinID:       w.SpinID,
		TransitionMS: w.SpinDuration.Milliseconds(),
		Easing:       w.Easing,
		Segments:     toSegments(w.Segments),
	}
}

func toSegments(segments []model.Segment) []dto.Segment {
	result := make([]dto.Segment, len(segments))
	for i, s := range segments {
		result[i] = dto.Segment{
			Index:         s.Index,
			Label:         s.Label,
			Hue:           s.Hue,
			Color:         s.Color,
			Hex:           s.Hex,
			Rotation:      s.Rotation,
			Sweep:         s.Sweep,
			LabelRotation: s.LabelRotation,
			Path:          s.Path,
		}
	}
	return result
}

func ToSpinResponse(w model.Wheel, started bool) dto.SpinResponse {
	return dto.SpinResponse{
		Started: started,
		Wheel:   ToWheelResponse(w),
	}
}

func ToSegmentsResponse(w model.Wheel, applied bool) dto.SegmentsResponse {
	return dto.SegmentsResponse{
		Applied: applied,
		Wheel:   ToWheelResponse(w),
	}
}

func ToStatsResponse(st model.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		SegmentCount: st.SegmentCount,
		TotalSpins:   st.TotalSpins,
		Hits:         st.Hits,
	}
}
