package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvoloshin/camera_coordination_system/internal/models"
	"github.com/mvoloshin/camera_coordination_system/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Create inserts a new community alert.
func (r *AlertRepository) Create(ctx context.Context, alert *models.CommunityAlert) error {
	query := `
		INSERT INTO community_alerts (title, message, severity)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Title,
		alert.Message,
		alert.Severity,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create community alert: %w", err)
	}
	return nil
}

// List returns alerts, newest first.
func (r *AlertRepository) List(ctx context.Context, limit int) ([]*models.CommunityAlert, error) {
	query := `
		SELECT id, title, message, severity, created_at
		FROM community_alerts
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list community alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.CommunityAlert, 0)
	for rows.Next() {
		alert := &models.CommunityAlert{}
		if err := rows.Scan(&alert.ID, &alert.Title, &alert.Message, &alert.Severity, &alert.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan community alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert list iteration: %w", err)
	}
	return alerts, nil
}
