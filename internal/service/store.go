package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/media"
	"github.com/Beka01247/dormeats/internal/queue"
	"github.com/Beka01247/dormeats/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type StoreInput struct {
	Name         string
	Description  string
	Location     string
	OpeningHours string
}

type StoreService struct {
	storeRepo repo.StoreRepository
	auditRepo repo.StoreStatusAuditRepository
	uploader  media.Uploader
	broker    queue.Broker
	tx        Transactor
	logger    *zap.SugaredLogger
}

func NewStoreService(
	storeRepo repo.StoreRepository,
	auditRepo repo.StoreStatusAuditRepository,
	uploader media.Uploader,
	broker queue.Broker,
	tx Transactor,
	logger *zap.SugaredLogger,
) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		auditRepo: auditRepo,
		uploader:  uploader,
		broker:    broker,
		tx:        tx,
		logger:    logger,
	}
}

// Register creates the caller's store in PENDING. An owner has at most one store.
func (s *StoreService) Register(ctx context.Context, actor Actor, input StoreInput) (*domain.Store, error) {
	if actor.UserID == "" {
		return nil, ErrForbidden
	}

	store := &domain.Store{
		OwnerID:      actor.UserID,
		Name:         input.Name,
		Description:  input.Description,
		Location:     input.Location,
		OpeningHours: input.OpeningHours,
		Status:       domain.StoreStatusPending,
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to register store: %w", err)
	}

	s.logger.Infow("store registered", "store_id", store.ID.Hex(), "owner_id", actor.UserID)

	return store, nil
}

func (s *StoreService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Store, error) {
	return s.storeRepo.GetByID(ctx, id)
}

// GetForOwner returns the owner's store, or a nil store with status NONE
// when the owner has not registered one.
func (s *StoreService) GetForOwner(ctx context.Context, ownerID string) (*domain.Store, domain.StoreStatus, error) {
	store, err := s.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, domain.StoreStatusNone, nil
		}
		return nil, "", err
	}

	return store, store.Status, nil
}

func (s *StoreService) Update(ctx context.Context, actor Actor, id primitive.ObjectID, input StoreInput) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeStore(store, actor); err != nil {
		return nil, err
	}

	store.Name = input.Name
	store.Description = input.Description
	store.Location = input.Location
	store.OpeningHours = input.OpeningHours

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	return store, nil
}

func (s *StoreService) UploadImage(ctx context.Context, actor Actor, id primitive.ObjectID, data []byte) (string, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := authorizeStore(store, actor); err != nil {
		return "", err
	}

	url, err := uploadImage(ctx, s.uploader, imagePrefixStores, id.Hex(), data)
	if err != nil {
		return "", err
	}

	if err := s.storeRepo.SetImageURL(ctx, id, url); err != nil {
		return "", fmt.Errorf("failed to save store image: %w", err)
	}

	s.logger.Infow("store image uploaded", "store_id", id.Hex(), "url", url)

	return url, nil
}

// RequestStatusChange queues an administrator's decision; the store status
// worker applies it.
func (s *StoreService) RequestStatusChange(ctx context.Context, actor Actor, id primitive.ObjectID, newStatus domain.StoreStatus, reason string) error {
	if !actor.Admin {
		return ErrForbidden
	}
	if !newStatus.AdminSettable() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	event := domain.StoreStatusEvent{
		EventType: domain.EventStoreStatusChanged,
		StoreID:   id.Hex(),
		OldStatus: store.Status,
		NewStatus: newStatus,
		Reason:    reason,
		Timestamp: time.Now(),
		UserID:    actor.UserID,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueStoreStatus, eventBytes); err != nil {
		s.logger.Errorw("failed to publish store status event", "store_id", id.Hex(), "error", err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	s.logger.Infow("store status change queued", "store_id", id.Hex(), "old_status", store.Status, "new_status", newStatus)

	return nil
}

func (s *StoreService) ProcessStatusEvent(ctx context.Context, event domain.StoreStatusEvent) error {
	storeID, err := primitive.ObjectIDFromHex(event.StoreID)
	if err != nil {
		return fmt.Errorf("invalid store ID %q: %w", event.StoreID, err)
	}
	if !event.NewStatus.AdminSettable() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, event.NewStatus)
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.storeRepo.UpdateStatus(ctx, storeID, event.NewStatus); err != nil {
			return fmt.Errorf("failed to update store status: %w", err)
		}

		audit := &domain.StoreStatusAudit{
			StoreID:   storeID,
			OldStatus: event.OldStatus,
			NewStatus: event.NewStatus,
			Reason:    event.Reason,
			UserID:    event.UserID,
			Timestamp: event.Timestamp,
		}
		if err := s.auditRepo.Create(ctx, audit); err != nil {
			return fmt.Errorf("failed to create audit record: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to apply store status", "store_id", event.StoreID, "error", err)
		return err
	}

	s.logger.Infow("store status applied", "store_id", event.StoreID, "new_status", event.NewStatus)

	return nil
}

func (s *StoreService) ListByStatus(ctx context.Context, status domain.StoreStatus, limit int) ([]domain.Store, error) {
	if !status.AdminSettable() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return s.storeRepo.ListByStatus(ctx, status, limit)
}

func (s *StoreService) StatusHistory(ctx context.Context, id primitive.ObjectID, limit int) ([]domain.StoreStatusAudit, error) {
	audits, err := s.auditRepo.GetByStoreID(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get store status history: %w", err)
	}

	return audits, nil
}
