package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/skylt-tv/signage-manager/backend/internal/config"
	"github.com/skylt-tv/signage-manager/backend/internal/repository"
	"github.com/skylt-tv/signage-manager/backend/internal/schedule"
	"github.com/skylt-tv/signage-manager/backend/internal/storage"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	storage     storage.Provider
	clock       schedule.Clock
	location    *time.Location

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, provider storage.Provider, clock schedule.Clock, loc *time.Location) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		storage:     provider,
		clock:       clock,
		location:    loc,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 电视端是公开页面，不需要登录，通过 URL 中的餐厅 ID 区分
	h.Mux.Get("/tv/{restaurantId}/current", h.GetCurrentVideo)

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.myRestaurant)

		r.Route("/my-info", func(r chi.Router) {
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", h.ListVideos)
			r.Post("/", h.UploadVideo)
			r.Route("/{name}", func(r chi.Router) {
				r.Delete("/", h.DeleteVideo)
				r.Post("/rename", h.RenameVideo)
			})
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", h.GetSchedules)
			r.Put("/", h.SaveSchedules)
			r.Delete("/", h.DeleteAllSchedules)
			r.Delete("/days/{day}", h.DeleteDaySchedules)
			r.Get("/tv-url", h.GetTVURL)
		})
	})
}
