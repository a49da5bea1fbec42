package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/skylt-tv/signage-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	restaurant := r.Context().Value(MyRestaurantCtx).(*domain.Restaurant)
	h.successResponse(w, r, "获取账号信息成功", restaurant)
}

func (h *Handler) UpdateMyPassword(w http.ResponseWriter, r *http.Request) {
	restaurant := r.Context().Value(MyRestaurantCtx).(*domain.Restaurant)

	var req struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=8"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(restaurant.PasswordHash), []byte(req.OldPassword)); err != nil {
		h.errorResponse(w, r, "旧密码错误")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	restaurant.PasswordHash = string(hashedPassword)

	if err := h.repository.UpdateRestaurant(restaurant); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新密码失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新密码成功", nil)
}
