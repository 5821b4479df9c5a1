package activityrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// CreateActivity appends a base audit record. orderID zero stores NULL, which
// is how MoneyReceived activities for plan subscriptions are recorded.
func (r *Repository) CreateActivity(ctx context.Context, activityType string, orderID int) (*domain.Activity, error) {
	query := `
        INSERT INTO activities (type, order_id, created_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	activity := &domain.Activity{
		Type:      activityType,
		OrderID:   orderID,
		CreatedAt: time.Now(),
	}

	var orderRef any
	if orderID != 0 {
		orderRef = orderID
	}

	row := r.db.QueryRow(ctx, query, activityType, orderRef, activity.CreatedAt)
	if err := row.Scan(&activity.ID); err != nil {
		zap.L().Error("can't save activity", zap.Error(err))
		return nil, err
	}
	return activity, nil
}

func (r *Repository) CreateDelivery(ctx context.Context, delivery *domain.Delivery) error {
	query := `
        INSERT INTO deliveries (order_id, response, source_file, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, delivery.OrderID, delivery.Response, delivery.SourceFile, delivery.CreatedAt)
	if err := row.Scan(&delivery.ID); err != nil {
		zap.L().Error("can't save delivery", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateRevision(ctx context.Context, revision *domain.Revision) error {
	query := `
        INSERT INTO revisions (order_id, reason, created_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, revision.OrderID, revision.Reason, revision.CreatedAt)
	if err := row.Scan(&revision.ID); err != nil {
		zap.L().Error("can't save revision", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateDeliveryActivity(ctx context.Context, da *domain.DeliveryActivity) error {
	query := `
        INSERT INTO delivery_activities (activity_id, delivery_id, status, closed, active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, da.ActivityID, da.DeliveryID, da.Status, da.Closed, da.Active, da.CreatedAt)
	if err := row.Scan(&da.ID); err != nil {
		zap.L().Error("can't save delivery activity", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateRevisionActivity(ctx context.Context, ra *domain.RevisionActivity) error {
	query := `
        INSERT INTO revision_activities (activity_id, revision_id, status, closed, active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, ra.ActivityID, ra.RevisionID, ra.Status, ra.Closed, ra.Active, ra.CreatedAt)
	if err := row.Scan(&ra.ID); err != nil {
		zap.L().Error("can't save revision activity", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateCancelActivity(ctx context.Context, ca *domain.CancelActivity) error {
	query := `
        INSERT INTO cancel_activities (activity_id, reason, status, closed, active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, ca.ActivityID, ca.Reason, ca.Status, ca.Closed, ca.Active, ca.CreatedAt)
	if err := row.Scan(&ca.ID); err != nil {
		zap.L().Error("can't save cancel activity", zap.Error(err))
		return err
	}
	return nil
}

// FindPendingDelivery returns the open delivery activity for an order, if any.
func (r *Repository) FindPendingDelivery(ctx context.Context, orderID int) (*domain.DeliveryActivity, error) {
	query := `
        SELECT da.id, da.activity_id, da.delivery_id, da.status, da.closed, da.active, da.created_at
        FROM delivery_activities da
        JOIN activities a ON a.id = da.activity_id
        WHERE a.order_id = $1 AND da.status = $2 AND da.active = TRUE
        ORDER BY da.created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, orderID, domain.ActivityPending)

	var da domain.DeliveryActivity
	err := row.Scan(&da.ID, &da.ActivityID, &da.DeliveryID, &da.Status, &da.Closed, &da.Active, &da.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pending delivery", zap.Error(err))
		return nil, err
	}
	return &da, nil
}

func (r *Repository) UpdateDeliveryActivityStatus(ctx context.Context, activityID int, status string, closed bool) error {
	query := `
        UPDATE delivery_activities
        SET status = $1, closed = $2, active = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, closed, !closed, activityID)
		if err != nil {
			zap.L().Error("failed to update delivery activity", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindActivitiesByOrder(ctx context.Context, orderID int) ([]domain.Activity, error) {
	query := `
        SELECT id, type, COALESCE(order_id, 0), created_at
        FROM activities
        WHERE order_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get activities", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var activity domain.Activity
		if err := rows.Scan(&activity.ID, &activity.Type, &activity.OrderID, &activity.CreatedAt); err != nil {
			zap.L().Error("can't scan activity row", zap.Error(err))
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, nil
}
