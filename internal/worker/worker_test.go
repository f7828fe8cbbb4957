package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/mocks"
	"github.com/Beka01247/dormeats/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeStatusProcessor struct {
	events []domain.StoreStatusEvent
	err    error
}

func (f *fakeStatusProcessor) ProcessStatusEvent(_ context.Context, event domain.StoreStatusEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeImportProcessor struct {
	tasks []primitive.ObjectID
	err   error
}

func (f *fakeImportProcessor) ProcessImportTask(_ context.Context, taskID primitive.ObjectID) error {
	f.tasks = append(f.tasks, taskID)
	return f.err
}

type countingRecorder map[string]int

func (r countingRecorder) MessageProcessed(queueName string, err error) {
	key := queueName + ":ok"
	if err != nil {
		key = queueName + ":failed"
	}
	r[key]++
}

func subscribe(t *testing.T, queueName string) (*mocks.Broker, *queue.MessageHandler) {
	broker := mocks.NewBroker(t)
	var handler queue.MessageHandler
	broker.On("Subscribe", mock.Anything, queueName, mock.Anything).
		Run(func(args mock.Arguments) { handler = args.Get(2).(queue.MessageHandler) }).
		Return(nil).Once()
	return broker, &handler
}

func TestStoreStatusWorker(t *testing.T) {
	ctx := context.Background()
	broker, handler := subscribe(t, queue.QueueStoreStatus)
	processor := &fakeStatusProcessor{}
	recorder := countingRecorder{}

	w := NewStoreStatusWorker(processor, broker, recorder, zap.NewNop().Sugar())
	require.NoError(t, w.Start())
	defer w.Stop()

	body, err := json.Marshal(domain.StoreStatusEvent{
		EventType: domain.EventStoreStatusChanged,
		StoreID:   primitive.NewObjectID().Hex(),
		NewStatus: domain.StoreStatusApproved,
	})
	require.NoError(t, err)

	require.NoError(t, (*handler)(ctx, body))
	require.Len(t, processor.events, 1)
	assert.False(t, processor.events[0].Timestamp.IsZero())

	assert.NoError(t, (*handler)(ctx, []byte(`{"event_type":"store.deleted"}`)))
	assert.Len(t, processor.events, 1)

	assert.Error(t, (*handler)(ctx, []byte("{")))
	assert.Equal(t, 2, recorder[queue.QueueStoreStatus+":ok"])
	assert.Equal(t, 1, recorder[queue.QueueStoreStatus+":failed"])
}

func TestFoodImportWorker(t *testing.T) {
	ctx := context.Background()
	broker, handler := subscribe(t, queue.QueueFoodImport)
	processor := &fakeImportProcessor{}

	w := NewFoodImportWorker(processor, broker, nil, zap.NewNop().Sugar())
	require.NoError(t, w.Start())
	defer w.Stop()

	taskID := primitive.NewObjectID()
	body, err := json.Marshal(domain.FoodImportMessage{TaskID: taskID.Hex(), SpreadsheetID: "sheet-1"})
	require.NoError(t, err)

	require.NoError(t, (*handler)(ctx, body))
	assert.Equal(t, []primitive.ObjectID{taskID}, processor.tasks)

	assert.ErrorContains(t, (*handler)(ctx, []byte(`{"task_id":"nope"}`)), "invalid task ID")

	processor.err = errors.New("sheets unavailable")
	assert.ErrorContains(t, (*handler)(ctx, body), "sheets unavailable")
}
