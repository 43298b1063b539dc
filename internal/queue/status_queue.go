package queue

import (
	"context"
	"errors"

	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/pkg/logger"

	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("status queue is full")

type Delivery struct {
	Data *model.StatusChange
	Ack  func()
	Nack func(requeue bool)
}

type StatusQueue interface {
	// 發送狀態變更到隊列
	Publish(ctx context.Context, change model.StatusChange) error
	// 訂閱狀態變更
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

type memoryItem struct {
	change   model.StatusChange
	attempts int
}

type MemoryStatusQueueImpl struct {
	// 使用 Go channel 模擬 MQ 隊列
	ch         chan memoryItem
	maxRetries int
}

func NewMemoryStatusQueue(bufferSize, maxRetries int) StatusQueue {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	return &MemoryStatusQueueImpl{
		ch:         make(chan memoryItem, bufferSize),
		maxRetries: maxRetries,
	}
}

// Publish 不阻塞請求；buffer 滿時回傳 ErrQueueFull
func (q *MemoryStatusQueueImpl) Publish(ctx context.Context, change model.StatusChange) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case q.ch <- memoryItem{change: change}:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *MemoryStatusQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				q.reportDropped(0)
				return
			case item := <-q.ch:
				change := item.change
				d := Delivery{
					Data: &change,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) { q.requeue(item, requeue) },
				}
				select {
				case out <- d:
				case <-ctx.Done():
					q.reportDropped(1)
					return
				}
			}
		}
	}()

	return out, nil
}

// reportDropped 訂閱結束時記錄未投遞的變更，inFlight 為已取出但未送出的筆數
func (q *MemoryStatusQueueImpl) reportDropped(inFlight int) {
	if n := len(q.ch) + inFlight; n > 0 {
		logger.WithComponent("mq").Warn("subscriber stopped, buffered status changes discarded",
			zap.Int("count", n))
	}
}

func (q *MemoryStatusQueueImpl) requeue(item memoryItem, requeue bool) {
	if !requeue {
		return
	}
	item.attempts++
	if item.attempts >= q.maxRetries {
		logger.WithComponent("mq").Warn("discard poison status change",
			zap.Int("event_id", item.change.EventID), zap.Int("retries", item.attempts))
		return
	}
	select {
	case q.ch <- item:
	default:
		logger.WithComponent("mq").Warn("status queue full, dropping requeued change",
			zap.Int("event_id", item.change.EventID))
	}
}
