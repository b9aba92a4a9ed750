package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/gaablh4z/v7-sistema-completo/internal/domain/schedule"
)

// TTL curto: a visão mensal muda a cada reserva, o cache só amortece
// rajadas de navegação no calendário.
const calendarTTL = 60 * time.Second

// CalendarCache guarda o payload da visão mensal no Redis. Com client
// nil (REDIS_URL não configurado) todas as operações são no-op.
type CalendarCache struct {
	client *redis.Client
	log    *zap.Logger
}

func NewCalendarCache(client *redis.Client, log *zap.Logger) *CalendarCache {
	return &CalendarCache{client: client, log: log}
}

func key(year int, month time.Month) string {
	return fmt.Sprintf("calendar:%04d-%02d", year, month)
}

func (c *CalendarCache) Get(ctx context.Context, year int, month time.Month) ([]schedule.CalendarDay, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(year, month)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug("calendar cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var days []schedule.CalendarDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, false
	}
	return days, true
}

func (c *CalendarCache) Set(ctx context.Context, year int, month time.Month, days []schedule.CalendarDay) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(days)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(year, month), raw, calendarTTL).Err(); err != nil {
		c.log.Debug("calendar cache write failed", zap.Error(err))
	}
}

// Invalidate remove o mês após uma escrita que muda a ocupação.
func (c *CalendarCache) Invalidate(ctx context.Context, year int, month time.Month) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, key(year, month))
}
