package wheel

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"
	dto "wheel_backend/internal/api/dto/wheel"
	"wheel_backend/internal/converter"
	"wheel_backend/internal/service"
	"wheel_backend/pkg/req"
	"wheel_backend/pkg/resp"
)

// Максимальное время long-poll ожидания результата
const awaitTimeout = 10 * time.Second

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Get Текущее состояние колеса
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelResponse(h.serv.Wheel()))
}

// Spin Запускает спин. Повторный запуск во время вращения возвращает started=false
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	wheel, started := h.serv.Spin(r.Context())

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(wheel, started))
}

// SetSegments Применяет сырой ввод количества сегментов
func (h *Handler) SetSegments(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SegmentsRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	wheel, applied := h.serv.SetSegmentCount(r.Context(), string(payload.Value))

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSegmentsResponse(wheel, applied))
}

// Result Состояние колеса. С wait=true ждёт окончания текущего спина
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	wait := false
	if raw := r.URL.Query().Get("wait"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "wait must be a boolean", http.StatusBadRequest)
			return
		}
		wait = parsed
	}

	if !wait {
		resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelResponse(h.serv.Wheel()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), awaitTimeout)
	defer cancel()

	wheel, err := h.serv.Await(ctx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		// Клиент ушёл, отвечать некому
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelResponse(wheel))
}

// Stats Статистика выпадений для текущего количества сегментов
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}
