package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-stream-events/internal/model"
	"go-gin-stream-events/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultStreamKey = "events:status_changes"
	DefaultGroupName = "status_history"
	ConsumerPrefix   = "worker"
	payloadField     = "change"
)

// RedisStreamConfig 可注入的逾時與重試設定；零值時使用預設
type RedisStreamConfig struct {
	StreamKey          string
	GroupName          string
	ClaimMinIdleTime   time.Duration // PEL 中超過此時間才被 XAUTOCLAIM 領取
	MaxRetryCount      int           // 超過此次數視為毒藥消息並丟棄
	ReadGroupBlockTime time.Duration // XReadGroup 阻塞時間
}

func defaultRedisStreamConfig() RedisStreamConfig {
	return RedisStreamConfig{
		StreamKey:          DefaultStreamKey,
		GroupName:          DefaultGroupName,
		ClaimMinIdleTime:   5 * time.Second,
		MaxRetryCount:      5,
		ReadGroupBlockTime: 2 * time.Second,
	}
}

type RedisStreamStatusQueueImpl struct {
	client       *redis.Client
	consumerName string
	cfg          RedisStreamConfig
}

// NewRedisStreamStatusQueue config 可為 nil，則使用預設值
func NewRedisStreamStatusQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamConfig) (StatusQueue, error) {
	if consumerID == "" {
		consumerID = uuid.New().String()
	}
	cfg := defaultRedisStreamConfig()
	if config != nil {
		if config.StreamKey != "" {
			cfg.StreamKey = config.StreamKey
		}
		if config.GroupName != "" {
			cfg.GroupName = config.GroupName
		}
		if config.ClaimMinIdleTime > 0 {
			cfg.ClaimMinIdleTime = config.ClaimMinIdleTime
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
		if config.ReadGroupBlockTime > 0 {
			cfg.ReadGroupBlockTime = config.ReadGroupBlockTime
		}
	}
	q := &RedisStreamStatusQueueImpl{
		client:       client,
		consumerName: fmt.Sprintf("%s:%s", ConsumerPrefix, consumerID),
		cfg:          cfg,
	}
	if err := q.ensureConsumerGroup(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamStatusQueueImpl) ensureConsumerGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.cfg.StreamKey, q.cfg.GroupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (q *RedisStreamStatusQueueImpl) Publish(ctx context.Context, change model.StatusChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal status change: %w", err)
	}
	err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.cfg.StreamKey,
		ID:     "*",
		Values: map[string]interface{}{payloadField: string(payload)},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *RedisStreamStatusQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		done := make(chan struct{})
		go func() {
			defer close(done)
			q.runAutoClaim(ctx, out)
		}()
		q.runReadLoop(ctx, out)
		<-done
	}()
	return out, nil
}

// runReadLoop 只讀 ">"（新訊息）；已投遞未 Ack 的訊息由 XAUTOCLAIM 超時後領回重試
func (q *RedisStreamStatusQueueImpl) runReadLoop(ctx context.Context, out chan<- Delivery) {
	for ctx.Err() == nil {
		streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    q.cfg.GroupName,
			Consumer: q.consumerName,
			Streams:  []string{q.cfg.StreamKey, ">"},
			Count:    10,
			Block:    q.cfg.ReadGroupBlockTime,
		}).Result()

		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.WithComponent("mq").Error("XReadGroup failed", zap.Error(err))
			sleepCtx(ctx, time.Second)
			continue
		}

		for _, stream := range streams {
			if stream.Stream != q.cfg.StreamKey {
				continue
			}
			for _, msg := range stream.Messages {
				if !q.deliver(ctx, out, msg) {
					return
				}
			}
		}
	}
}

// runAutoClaim 定時用 XAUTOCLAIM 領取超時未處理的消息
func (q *RedisStreamStatusQueueImpl) runAutoClaim(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()
	startID := "0-0"

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			claimed, nextID, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
				Stream:   q.cfg.StreamKey,
				Group:    q.cfg.GroupName,
				Consumer: q.consumerName,
				MinIdle:  q.cfg.ClaimMinIdleTime,
				Count:    10,
				Start:    startID,
			}).Result()

			if err != nil && !errors.Is(err, redis.Nil) {
				if ctx.Err() != nil {
					return
				}
				logger.WithComponent("mq").Error("XAutoClaim failed", zap.Error(err))
				continue
			}
			if nextID != "" && nextID != "0-0" {
				startID = nextID
			} else {
				startID = "0-0"
			}

			for _, msg := range claimed {
				if !q.shouldProcessMessage(ctx, msg.ID) {
					continue
				}
				if !q.deliver(ctx, out, msg) {
					return
				}
			}
		}
	}
}

// deliver 回傳 false 表示 ctx 已結束
func (q *RedisStreamStatusQueueImpl) deliver(ctx context.Context, out chan<- Delivery, msg redis.XMessage) bool {
	d := q.newDelivery(ctx, msg)
	if d == nil {
		return true
	}
	select {
	case out <- *d:
		return true
	case <-ctx.Done():
		return false
	}
}

// shouldProcessMessage 毒藥消息判斷：重試次數超過上限即 Ack 丟棄
func (q *RedisStreamStatusQueueImpl) shouldProcessMessage(ctx context.Context, messageID string) bool {
	n, err := q.retryCount(ctx, messageID)
	if err != nil {
		logger.WithComponent("mq").Warn("retryCount failed", zap.String("message_id", messageID), zap.Error(err))
		return true
	}
	if n > int64(q.cfg.MaxRetryCount) {
		logger.WithComponent("mq").Warn("discard poison message",
			zap.String("message_id", messageID),
			zap.Int64("retries", n),
			zap.Int("max_retries", q.cfg.MaxRetryCount))
		q.ack(ctx, messageID)
		return false
	}
	return true
}

func (q *RedisStreamStatusQueueImpl) retryCount(ctx context.Context, messageID string) (int64, error) {
	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: q.cfg.StreamKey,
		Group:  q.cfg.GroupName,
		Start:  messageID,
		End:    messageID,
		Count:  1,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}
	return pending[0].RetryCount, nil
}

func (q *RedisStreamStatusQueueImpl) ack(ctx context.Context, messageID string) {
	if err := q.client.XAck(ctx, q.cfg.StreamKey, q.cfg.GroupName, messageID).Err(); err != nil {
		logger.WithComponent("mq").Error("XAck failed", zap.String("message_id", messageID), zap.Error(err))
	}
}

// newDelivery 格式錯誤的消息直接 Ack 丟棄，避免卡在 PEL
func (q *RedisStreamStatusQueueImpl) newDelivery(ctx context.Context, msg redis.XMessage) *Delivery {
	raw, ok := msg.Values[payloadField].(string)
	if !ok {
		logger.WithComponent("mq").Warn("invalid message: missing payload", zap.String("message_id", msg.ID))
		q.ack(ctx, msg.ID)
		return nil
	}
	var change model.StatusChange
	if err := json.Unmarshal([]byte(raw), &change); err != nil {
		logger.WithComponent("mq").Warn("unmarshal status change failed", zap.String("message_id", msg.ID), zap.Error(err))
		q.ack(ctx, msg.ID)
		return nil
	}
	msgID := msg.ID
	// Subscribe 的 ctx 結束後 worker 仍會 Ack 手上的消息
	ackCtx := context.WithoutCancel(ctx)
	return &Delivery{
		Data: &change,
		Ack:  func() { q.ack(ackCtx, msgID) },
		Nack: func(requeue bool) {
			if requeue {
				// 消息留在 PEL，ClaimMinIdleTime 後由 XAUTOCLAIM 領取，形成延遲重試
				logger.WithComponent("mq").Info("message nack(requeue), will retry",
					zap.String("message_id", msgID),
					zap.Duration("claim_min_idle", q.cfg.ClaimMinIdleTime))
				return
			}
			q.ack(ackCtx, msgID)
		},
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
