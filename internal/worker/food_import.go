package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/queue"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type FoodImportWorker struct {
	processor ImportProcessor
	broker    queue.Broker
	recorder  Recorder
	logger    *zap.SugaredLogger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewFoodImportWorker(
	processor ImportProcessor,
	broker queue.Broker,
	recorder Recorder,
	logger *zap.SugaredLogger,
) *FoodImportWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &FoodImportWorker{
		processor: processor,
		broker:    broker,
		recorder:  recorder,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (w *FoodImportWorker) Start() error {
	w.logger.Info("starting food import worker")

	return w.broker.Subscribe(w.ctx, queue.QueueFoodImport, w.handleMessage)
}

func (w *FoodImportWorker) Stop() {
	w.logger.Info("stopping food import worker")
	w.cancel()
}

func (w *FoodImportWorker) handleMessage(ctx context.Context, message []byte) (err error) {
	defer func() { record(w.recorder, queue.QueueFoodImport, err) }()

	var msg domain.FoodImportMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal message", "error", err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	w.logger.Infow("processing food import message", "task_id", msg.TaskID)

	taskID, err := primitive.ObjectIDFromHex(msg.TaskID)
	if err != nil {
		w.logger.Errorw("invalid task ID", "task_id", msg.TaskID, "error", err)
		return fmt.Errorf("invalid task ID: %w", err)
	}

	if err := w.processor.ProcessImportTask(ctx, taskID); err != nil {
		w.logger.Errorw("failed to process import task", "task_id", msg.TaskID, "error", err)
		return err
	}

	return nil
}
