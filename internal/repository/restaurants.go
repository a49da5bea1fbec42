package repository

import (
	"context"
	"time"

	"github.com/skylt-tv/signage-manager/backend/internal/domain"
)

func (r *Repository) CreateRestaurant(restaurant *domain.Restaurant) error {
	query := `
		INSERT INTO restaurants (username, password_hash, name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{restaurant.Username, restaurant.PasswordHash, restaurant.Name, restaurant.Email}
	dst := []any{&restaurant.ID, &restaurant.IsActive, &restaurant.CreatedAt, &restaurant.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetRestaurantByID(id int64) (*domain.Restaurant, error) {
	query := `
		SELECT username, password_hash, name, email, is_active, created_at, version
		FROM restaurants WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	restaurant := &domain.Restaurant{
		ID: id,
	}

	dst := []any{
		&restaurant.Username,
		&restaurant.PasswordHash,
		&restaurant.Name,
		&restaurant.Email,
		&restaurant.IsActive,
		&restaurant.CreatedAt,
		&restaurant.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (r *Repository) GetRestaurantByUsername(username string) (*domain.Restaurant, error) {
	query := `
		SELECT id, password_hash, name, email, is_active, created_at, version
		FROM restaurants WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	restaurant := &domain.Restaurant{
		Username: username,
	}

	dst := []any{
		&restaurant.ID,
		&restaurant.PasswordHash,
		&restaurant.Name,
		&restaurant.Email,
		&restaurant.IsActive,
		&restaurant.CreatedAt,
		&restaurant.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func (r *Repository) UpdateRestaurant(restaurant *domain.Restaurant) error {
	query := `
		UPDATE restaurants
		SET
			password_hash = $1,
			name = $2,
			email = $3,
			is_active = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		restaurant.PasswordHash,
		restaurant.Name,
		restaurant.Email,
		restaurant.IsActive,
		restaurant.ID,
		restaurant.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&restaurant.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM restaurants WHERE email = $1)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var exists bool
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
