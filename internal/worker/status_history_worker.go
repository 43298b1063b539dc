package worker

import (
	"context"

	"go-gin-stream-events/internal/observability"
	"go-gin-stream-events/internal/queue"
	"go-gin-stream-events/internal/repository"
	"go-gin-stream-events/pkg/logger"

	"go.uber.org/zap"
)

type StatusHistoryWorker interface {
	// 訂閱狀態變更隊列，寫入歷史紀錄
	Start(ctx context.Context) error
	// Done 在訂閱 channel 關閉、所有訊息處理完後關閉
	Done() <-chan struct{}
}

type StatusHistoryWorkerImpl struct {
	history repository.StatusHistoryRepository
	queue   queue.StatusQueue
	done    chan struct{}
}

func NewStatusHistoryWorker(history repository.StatusHistoryRepository, queue queue.StatusQueue) StatusHistoryWorker {
	return &StatusHistoryWorkerImpl{
		history: history,
		queue:   queue,
		done:    make(chan struct{}),
	}
}

func (w *StatusHistoryWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("worker")

	go func() {
		defer close(w.done)
		for msg := range msgs {
			if msg.Data == nil {
				msg.Ack()
				continue
			}

			// ctx 取消後仍要寫完手上這筆
			err := w.history.Append(context.WithoutCancel(ctx), *msg.Data)
			if err != nil {
				log.Warn("Failed to append status history, requeue",
					zap.Int("event_id", msg.Data.EventID),
					zap.String("to", string(msg.Data.To)),
					zap.Error(err),
				)
				observability.StatusHistoryWrites.WithLabelValues("failed").Inc()
				msg.Nack(true)
				continue
			}

			observability.StatusHistoryWrites.WithLabelValues("ok").Inc()
			msg.Ack()
		}
	}()
	return nil
}

func (w *StatusHistoryWorkerImpl) Done() <-chan struct{} {
	return w.done
}
