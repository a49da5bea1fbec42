package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skylt-tv/signage-manager/backend/internal/schedule"
)

type currentVideoPayload struct {
	Video        *schedulePayload `json:"video"` // 为 nil 表示当前没有排播
	Day          int32            `json:"day"`
	Slot         int32            `json:"slot"`
	PollInterval int              `json:"pollInterval"` // 电视端的轮询间隔，单位为秒
}

// GetCurrentVideo 是电视端轮询的公开接口：根据固定时区下的当前时间
// 解析出应该播放的排播。没有推送机制，电视端按 pollInterval 重复调用。
func (h *Handler) GetCurrentVideo(w http.ResponseWriter, r *http.Request) {
	restaurantIDParam := chi.URLParam(r, "restaurantId")
	restaurantID, err := strconv.ParseInt(restaurantIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "餐厅ID无效")
		return
	}

	entries, err := h.repository.ListSchedules(restaurantID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	now := h.clock.Now()
	day, slot := schedule.CurrentDaySlot(now, h.location)

	payload := currentVideoPayload{
		Day:          int32(day),
		Slot:         slot,
		PollInterval: h.config.TV.PollInterval,
	}

	if entry := schedule.ResolveActive(now, h.location, entries); entry != nil {
		p := toSchedulePayload(entry)
		payload.Video = &p
		h.successResponse(w, r, "获取当前视频成功", payload)
		return
	}

	h.successResponse(w, r, "当前没有排播的视频", payload)
}
