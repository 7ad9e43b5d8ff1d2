package postgresql

import (
	"context"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/activity"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.EntryRepository {
	return &activityRepositoryImpl{db: db}
}

func (r *activityRepositoryImpl) Create(ctx context.Context, e activity.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_log (id, actor_id, action, entity_type, entity_id, detail, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
	`

	_, err := q.Exec(ctx, query, e.ActorID, e.Action, e.EntityType, e.EntityID, e.Detail)
	return err
}

func (r *activityRepositoryImpl) ListByEntity(ctx context.Context, entityType, entityID string) ([]activity.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT al.id, al.actor_id, al.action, al.entity_type, al.entity_id, al.detail, al.created_at,
			   u.email
		FROM activity_log al
		JOIN users u ON al.actor_id = u.id
		WHERE al.entity_type = $1 AND al.entity_id = $2
		ORDER BY al.created_at DESC
	`

	rows, err := q.Query(ctx, query, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var e activity.Entry
		err := rows.Scan(
			&e.ID, &e.ActorID, &e.Action, &e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt,
			&e.ActorName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *activityRepositoryImpl) ListByActor(ctx context.Context, actorID string, limit int) ([]activity.Entry, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT al.id, al.actor_id, al.action, al.entity_type, al.entity_id, al.detail, al.created_at,
			   u.email
		FROM activity_log al
		JOIN users u ON al.actor_id = u.id
		WHERE al.actor_id = $1
		ORDER BY al.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, actorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var e activity.Entry
		err := rows.Scan(
			&e.ID, &e.ActorID, &e.Action, &e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt,
			&e.ActorName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
