package seed

import (
	"log/slog"

	"github.com/skylt-tv/signage-manager/backend/internal/config"
	"github.com/skylt-tv/signage-manager/backend/internal/domain"
	"github.com/skylt-tv/signage-manager/backend/internal/repository"
	"github.com/skylt-tv/signage-manager/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// 内置的演示餐厅，方便前端联调时有固定的账号可以登录
var demoRestaurants = []struct {
	Name     string
	Username string
	Email    string
}{
	{Name: "Pizzeria Napoli", Username: "napoli", Email: "napoli@example.com"},
	{Name: "Thai Orchid", Username: "thaiorchid", Email: "thaiorchid@example.com"},
	{Name: "Sushi Yama", Username: "sushiyama", Email: "sushiyama@example.com"},
}

// SeedDemoData 插入固定的演示餐厅，并为每个餐厅生成一周的随机排播
func SeedDemoData(r *repository.Repository, cfg *config.Config) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Restaurant.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("无法生成密码哈希", "error", err)
		return
	}

	videoURLPrefix := cfg.Storage.PublicBaseURL + "/public"

	cnt := 0
	for _, dr := range demoRestaurants {
		restaurant := &domain.Restaurant{
			Username:     dr.Username,
			PasswordHash: string(passwordHash),
			Name:         dr.Name,
			Email:        dr.Email,
		}
		if err := r.CreateRestaurant(restaurant); err != nil {
			slog.Error("无法插入演示餐厅", slog.String("username", dr.Username), slog.String("error", err.Error()))
			continue
		}

		entries := utils.GenerateRandomSchedules(restaurant.ID, videoURLPrefix)
		if err := r.ReplaceSchedules(restaurant.ID, entries); err != nil {
			slog.Error("无法插入演示排播", slog.String("username", dr.Username), slog.String("error", err.Error()))
			continue
		}

		cnt++
	}

	slog.Info("插入演示数据成功", slog.Int("count", cnt))
}
