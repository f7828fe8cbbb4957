package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/queue"
	"go.uber.org/zap"
)

type StoreStatusWorker struct {
	processor StoreStatusProcessor
	broker    queue.Broker
	recorder  Recorder
	logger    *zap.SugaredLogger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewStoreStatusWorker(
	processor StoreStatusProcessor,
	broker queue.Broker,
	recorder Recorder,
	logger *zap.SugaredLogger,
) *StoreStatusWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &StoreStatusWorker{
		processor: processor,
		broker:    broker,
		recorder:  recorder,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (w *StoreStatusWorker) Start() error {
	w.logger.Info("starting store status worker")

	return w.broker.Subscribe(w.ctx, queue.QueueStoreStatus, w.handleMessage)
}

func (w *StoreStatusWorker) Stop() {
	w.logger.Info("stopping store status worker")
	w.cancel()
}

func (w *StoreStatusWorker) handleMessage(ctx context.Context, message []byte) (err error) {
	defer func() { record(w.recorder, queue.QueueStoreStatus, err) }()

	var event domain.StoreStatusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.EventType != domain.EventStoreStatusChanged {
		w.logger.Warnw("skipping unknown event", "event_type", event.EventType)
		return nil
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing store status event", "store_id", event.StoreID, "new_status", event.NewStatus)

	if err := w.processor.ProcessStatusEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process store status event", "store_id", event.StoreID, "error", err)
		return err
	}

	return nil
}
