package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 从 cookie 中获取 token
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			switch {
			case errors.Is(err, http.ErrNoCookie):
				h.errorResponse(w, r, "用户未登录")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		// 验证 token
		tokenString := cookie.Value
		claims := &AuthClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		})
		if err != nil {
			h.errorResponse(w, r, "无效的令牌")
			return
		}

		// token 本身有效还不够：会话记录必须还在 redis 中。
		// 登出或后台强制下线会删除会话记录，此后所有需要登录的接口
		// 都会在这里被拦下，客户端据此跳回登录页。
		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Minute)
		defer cancel()

		if _, err := h.redisClient.Get(ctx, fmt.Sprintf("session_%s", claims.ID)).Result(); err != nil {
			switch {
			case errors.Is(err, redis.Nil):
				h.errorResponse(w, r, "登录状态已失效，请重新登录")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		// 将 claims 中的 sub 和会话 ID 附在 context 中
		rctx := r.Context()
		rctx = context.WithValue(rctx, SubCtxKey, claims.Subject)
		rctx = context.WithValue(rctx, SessionIDCtxKey, claims.ID)

		// 执行下一个 handler
		next.ServeHTTP(w, r.WithContext(rctx))
	})
}

func (h *Handler) myRestaurant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subString := r.Context().Value(SubCtxKey).(string)

		sub, err := strconv.ParseInt(subString, 10, 64)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		restaurant, err := h.repository.GetRestaurantByID(sub)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "餐厅账号不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		if !restaurant.IsActive {
			h.errorResponse(w, r, "该账号已被停用")
			return
		}

		ctx := context.WithValue(r.Context(), MyRestaurantCtx, restaurant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
