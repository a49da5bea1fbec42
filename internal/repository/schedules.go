package repository

import (
	"context"
	"time"

	"github.com/skylt-tv/signage-manager/backend/internal/domain"
)

func (r *Repository) ListSchedules(restaurantID int64) ([]*domain.Schedule, error) {
	query := `
		SELECT id, day_of_week, start_slot, end_slot, video_name, video_url, is_active, created_at
		FROM schedules
		WHERE restaurant_id = $1
		ORDER BY day_of_week, start_slot
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.Schedule, 0)

	for rows.Next() {
		entry := &domain.Schedule{
			RestaurantID: restaurantID,
		}

		dst := []any{
			&entry.ID,
			&entry.DayOfWeek,
			&entry.StartSlot,
			&entry.EndSlot,
			&entry.VideoName,
			&entry.VideoURL,
			&entry.IsActive,
			&entry.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ReplaceSchedules 用传入的排班整体替换该餐厅的持久化排班。
// 删除和插入是两条独立语句，刻意不放在同一个事务里（沿用既有的
// “先删后插”保存语义）：插入一旦失败，删除无法回滚，该餐厅的排班
// 可能已被清空，所以这里返回 domain.DataLossError 而不是普通错误，
// 让上层把“需要重新保存”明确告知用户。
func (r *Repository) ReplaceSchedules(restaurantID int64, entries []*domain.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	query := `DELETE FROM schedules WHERE restaurant_id = $1`
	if _, err := r.dbpool.ExecContext(ctx, query, restaurantID); err != nil {
		return err
	}

	query = `
		INSERT INTO schedules (restaurant_id, day_of_week, start_slot, end_slot, video_name, video_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	for _, entry := range entries {
		params := []any{
			restaurantID,
			entry.DayOfWeek,
			entry.StartSlot,
			entry.EndSlot,
			entry.VideoName,
			entry.VideoURL,
			entry.IsActive,
		}
		if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return &domain.DataLossError{RestaurantID: restaurantID, Err: err}
		}
	}

	return nil
}

func (r *Repository) DeleteSchedulesByDay(restaurantID int64, day int32) error {
	query := `DELETE FROM schedules WHERE restaurant_id = $1 AND day_of_week = $2`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, restaurantID, day); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAllSchedules(restaurantID int64) error {
	query := `DELETE FROM schedules WHERE restaurant_id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, restaurantID); err != nil {
		return err
	}

	return nil
}
