package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skylt-tv/signage-manager/backend/internal/domain"
	"github.com/skylt-tv/signage-manager/backend/internal/schedule"
	"github.com/skylt-tv/signage-manager/backend/internal/utils"
)

type schedulePayload struct {
	ID         int64  `json:"id"`
	DayOfWeek  int32  `json:"dayOfWeek"`
	DayLabel   string `json:"dayLabel"`
	StartSlot  int32  `json:"startSlot"`
	EndSlot    int32  `json:"endSlot"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	VideoName  string `json:"videoName"`
	VideoURL   string `json:"videoUrl"`
	IsActive   bool   `json:"isActive"`
	ColorIndex int    `json:"colorIndex"`
}

func toSchedulePayload(entry *domain.Schedule) schedulePayload {
	return schedulePayload{
		ID:         entry.ID,
		DayOfWeek:  entry.DayOfWeek,
		DayLabel:   schedule.Weekday(entry.DayOfWeek).Label(),
		StartSlot:  entry.StartSlot,
		EndSlot:    entry.EndSlot,
		StartTime:  schedule.SlotLabel(entry.StartSlot),
		EndTime:    schedule.SlotLabel(entry.EndSlot),
		VideoName:  entry.VideoName,
		VideoURL:   entry.VideoURL,
		IsActive:   entry.IsActive,
		ColorIndex: utils.VideoColorIndex(entry.VideoName),
	}
}

func (h *Handler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	restaurant := r.Context().Value(MyRestaurantCtx).(*domain.Restaurant)

	entries, err := h.repository.ListSchedules(restaurant.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	payload := make([]schedulePayload, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, toSchedulePayload(entry))
	}

	h.successResponse(w, r, "获取排班成功", payload)
}

// SaveSchedules 接收完整的排班草稿并整体替换持久化状态。
// 服务端不信任客户端的冲突检查，这里会重新校验每一条的槽位不变量
// 以及两两之间的冲突，然后才提交。
func (h *Handler) SaveSchedules(w http.ResponseWriter, r *http.Request) {
	restaurant := r.Context().Value(MyRestaurantCtx).(*domain.Restaurant)

	var req struct {
		Schedules []struct {
			DayOfWeek int32  `json:"dayOfWeek" validate:"min=1,max=7"`
			StartSlot int32  `json:"startSlot" validate:"min=0,max=47"`
			EndSlot   int32  `json:"endSlot" validate:"min=0,max=47"`
			VideoName string `json:"videoName" validate:"required"`
			VideoURL  string `json:"videoUrl" validate:"required,url"`
		} `json:"schedules"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 从空草稿开始逐条添加，Add 会做槽位校验和冲突检测
	draft := schedule.NewDraft(restaurant.ID, nil)
	for i, item := range req.Schedules {
		entry := &domain.Schedule{
			DayOfWeek: item.DayOfWeek,
			StartSlot: item.StartSlot,
			EndSlot:   item.EndSlot,
			VideoName: item.VideoName,
			VideoURL:  item.VideoURL,
			IsActive:  true,
		}
		if err := draft.Add(entry); err != nil {
			h.errorResponse(w, r, fmt.Sprintf("第 %d 条排班无法保存：%v", i+1, err))
			return
		}
	}

	if err := draft.Commit(h.repository); err != nil {
		var dataLossErr *domain.DataLossError
		switch {
		case errors.As(err, &dataLossErr):
			// 删除已执行但插入失败，必须把数据可能已丢失的情况明确告知用户
			h.errorResponse(w, r, dataLossErr.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	payload := make([]schedulePayload, 0, len(draft.Entries()))
	for _, entry := range draft.Entries() {
		payload = append(payload, toSchedulePayload(entry))
	}

	h.successResponse(w, r, "排班已保存", payload)
}

func (h *Handler) DeleteAllSchedules(w http.ResponseWriter, r *http.Request) {
	restaurant := r.Context().Value(MyRestaurantCtx).(*domain.Restaurant)

	if err := h.repository.DeleteAllSchedules(restaurant.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "已删除全部排班", nil)
}

func (h *Handler) DeleteDaySchedules(w http.ResponseWriter, r *http.Request) {
	restaurant := r.Context().Value(MyRestaurantCtx).(*domain.Restaurant)

	dayParam := chi.URLParam(r, "day")
	day, err := strconv.ParseInt(dayParam, 10, 32)
	if err != nil || !schedule.Weekday(day).Valid() {
		h.errorResponse(w, r, "无效的星期")
		return
	}

	if err := h.repository.DeleteSchedulesByDay(restaurant.ID, int32(day)); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, fmt.Sprintf("已删除 %s 的全部排班", schedule.Weekday(day).Label()), nil)
}

// GetTVURL 返回该餐厅电视页面的公开地址，编辑端用它做“复制链接”。
func (h *Handler) GetTVURL(w http.ResponseWriter, r *http.Request) {
	restaurant := r.Context().Value(MyRestaurantCtx).(*domain.Restaurant)

	h.successResponse(w, r, "获取电视页面地址成功", map[string]string{
		"url": fmt.Sprintf("%s/tv/%d", h.config.TV.BaseURL, restaurant.ID),
	})
}
