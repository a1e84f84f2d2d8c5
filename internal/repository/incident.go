package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// Create создает новую запись о репорте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (user_id, lat, long, description, verified, is_anonymous)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, timestamp;
	`
	err := r.db.QueryRow(ctx, query,
		incident.UserID,
		incident.Lat,
		incident.Long,
		incident.Description,
		incident.Verified,
		incident.IsAnonymous,
	).Scan(&incident.ID, &incident.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// ListSince возвращает репорты строго новее нижней границы, новые первыми.
// Граница приходит из ResolveTimeWindow и всегда передается параметром.
func (r *IncidentRepository) ListSince(ctx context.Context, since time.Time) ([]*models.Incident, error) {
	query := `
		SELECT
			id,
			user_id,
			lat,
			long,
			description,
			timestamp,
			verified,
			is_anonymous
		FROM incidents
		WHERE timestamp > $1
		ORDER BY timestamp DESC;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.UserID,
			&incident.Lat,
			&incident.Long,
			&incident.Description,
			&incident.Timestamp,
			&incident.Verified,
			&incident.IsAnonymous,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}
