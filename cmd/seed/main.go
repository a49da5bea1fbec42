package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/skylt-tv/signage-manager/backend/internal/config"
	"github.com/skylt-tv/signage-manager/backend/internal/repository"
	"github.com/skylt-tv/signage-manager/backend/internal/seed"
	"github.com/skylt-tv/signage-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var restaurantID int64

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入随机餐厅, 2: 为指定餐厅插入随机排播, 3: 插入演示数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.Int64Var(&restaurantID, "restaurant-id", 0, "随机插入排播的餐厅 ID")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if n <= 0 {
			slog.Error("请输入合法的餐厅数量")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				restaurant, err := utils.GenerateRandomRestaurant(cfg.Seed.Restaurant.Password, cfg.Email.RestaurantDomain)
				if err != nil {
					slog.Error("无法生成随机餐厅", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateRestaurant(restaurant); err != nil {
					slog.Error("无法插入餐厅", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("插入餐厅成功", slog.Int("count", n-cnt))
		}
	case 2:
		if restaurantID <= 0 {
			slog.Error("请输入合法的餐厅 ID")
			return
		}

		// 确认餐厅存在
		if _, err := repo.GetRestaurantByID(restaurantID); err != nil {
			slog.Error("无法获取餐厅", slog.String("error", err.Error()))
			return
		}

		entries := utils.GenerateRandomSchedules(restaurantID, cfg.Storage.PublicBaseURL+"/public")
		if err := repo.ReplaceSchedules(restaurantID, entries); err != nil {
			slog.Error("无法插入排播", slog.String("error", err.Error()))
			return
		}

		slog.Info("插入排播成功", slog.Int("count", len(entries)))
	case 3:
		seed.SeedDemoData(repo, cfg)
	default:
		slog.Error("指定的操作非法")
	}
}
