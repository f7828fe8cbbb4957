package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/parser"
	"github.com/Beka01247/dormeats/internal/queue"
	"github.com/Beka01247/dormeats/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ImportService struct {
	taskRepo  repo.FoodImportTaskRepository
	foodRepo  repo.FoodRepository
	storeRepo repo.StoreRepository
	parser    FoodParser
	broker    queue.Broker
	tx        Transactor
	logger    *zap.SugaredLogger
}

func NewImportService(
	taskRepo repo.FoodImportTaskRepository,
	foodRepo repo.FoodRepository,
	storeRepo repo.StoreRepository,
	parser FoodParser,
	broker queue.Broker,
	tx Transactor,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		taskRepo:  taskRepo,
		foodRepo:  foodRepo,
		storeRepo: storeRepo,
		parser:    parser,
		broker:    broker,
		tx:        tx,
		logger:    logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, actor Actor, storeID primitive.ObjectID, spreadsheetID string) (*domain.FoodImportTask, error) {
	if s.parser == nil {
		return nil, ErrImportUnavailable
	}

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(store, actor); err != nil {
		return nil, err
	}
	if store.Status != domain.StoreStatusApproved {
		return nil, ErrStoreNotApproved
	}

	task := &domain.FoodImportTask{
		StoreID:       storeID,
		RequestedBy:   actor.UserID,
		SpreadsheetID: spreadsheetID,
		Status:        domain.ImportQueued,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.FoodImportMessage{
		TaskID:        task.ID.Hex(),
		StoreID:       storeID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueFoodImport, messageBytes); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.ImportFailed, err.Error())
		return nil, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("food import task created", "task_id", task.ID.Hex(), "store_id", storeID.Hex(), "spreadsheet_id", spreadsheetID)

	return task, nil
}

func (s *ImportService) GetTask(ctx context.Context, actor Actor, taskID primitive.ObjectID) (*domain.FoodImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !actor.Admin {
		store, err := s.storeRepo.GetByID(ctx, task.StoreID)
		if err != nil {
			return nil, err
		}
		if err := authorizeStore(store, actor); err != nil {
			return nil, err
		}
	}

	return task, nil
}

// ProcessImportTask parses the sheet and inserts its foods. A sheet that
// cannot be parsed fails the task without asking the broker to retry.
func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	switch task.Status {
	case domain.ImportCompleted:
		s.logger.Infow("import task already completed", "task_id", taskID.Hex())
		return nil
	case domain.ImportProcessing, domain.ImportFailed:
		if err := s.taskRepo.IncrementRetryCount(ctx, taskID); err != nil {
			return fmt.Errorf("failed to increment retry count: %w", err)
		}
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing import task", "task_id", taskID.Hex())

	store, err := s.storeRepo.GetByID(ctx, task.StoreID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("failed to get store: %w", err)
	}
	if err != nil || store.Status != domain.StoreStatusApproved {
		s.logger.Warnw("store cannot receive imported foods", "task_id", taskID.Hex(), "store_id", task.StoreID.Hex())
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, ErrStoreNotApproved.Error())
		return nil
	}

	if s.parser == nil {
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, ErrImportUnavailable.Error())
		return nil
	}

	foods, err := s.parser.ParseFoods(ctx, task.SpreadsheetID, task.StoreID)
	if err != nil {
		s.logger.Errorw("failed to parse foods", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, err.Error())
		if errors.Is(err, parser.ErrEmptySheet) || errors.Is(err, parser.ErrInvalidRow) {
			return nil
		}
		return fmt.Errorf("failed to parse foods: %w", err)
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.foodRepo.CreateMany(ctx, foods); err != nil {
			return err
		}
		return s.taskRepo.Complete(ctx, taskID, len(foods))
	})
	if err != nil {
		s.logger.Errorw("failed to save imported foods", "task_id", taskID.Hex(), "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, err.Error())
		return fmt.Errorf("failed to save imported foods: %w", err)
	}

	s.logger.Infow("import task completed", "task_id", taskID.Hex(), "imported", len(foods))

	return nil
}
