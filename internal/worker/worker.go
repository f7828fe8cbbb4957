package worker

import (
	"context"

	"github.com/Beka01247/dormeats/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recorder counts handled messages per queue. It may be nil.
type Recorder interface {
	MessageProcessed(queue string, err error)
}

type StoreStatusProcessor interface {
	ProcessStatusEvent(ctx context.Context, event domain.StoreStatusEvent) error
}

type ImportProcessor interface {
	ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error
}

func record(recorder Recorder, queueName string, err error) {
	if recorder != nil {
		recorder.MessageProcessed(queueName, err)
	}
}
