package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/DRSN-tech/kiosk-printer/internal/cfg"
	"github.com/DRSN-tech/kiosk-printer/internal/domain"
	"github.com/DRSN-tech/kiosk-printer/pkg/clients"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/jimlawless/whereami"
)

// JournalRepo хранит асинхронные ответы принтера по заданию в Redis-списке с TTL.
type JournalRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewJournalRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *JournalRepo {
	return &JournalRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Append дописывает ответ в конец журнала и продлевает TTL.
func (r *JournalRepo) Append(ctx context.Context, jobID string, result domain.CommandResult) error {
	data, err := json.Marshal(toRedisModel(result))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	key := r.resultsKey(jobID)

	pipeline := r.client.Client.TxPipeline()
	pipeline.RPush(ctx, key, data)
	pipeline.Expire(ctx, key, r.cfg.JobResultTTL)

	if _, err := pipeline.Exec(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// List возвращает ответы по порядку команд. Повреждённые записи пропускаются с предупреждением.
func (r *JournalRepo) List(ctx context.Context, jobID string) ([]domain.CommandResult, error) {
	values, err := r.client.Client.LRange(ctx, r.resultsKey(jobID), 0, -1).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	results := make([]domain.CommandResult, 0, len(values))
	for _, val := range values {
		var model commandResultRedisModel
		if err := json.Unmarshal([]byte(val), &model); err != nil {
			r.logger.Warnf("Redis unmarshal failed for job %s: %v", jobID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}
		results = append(results, toDomain(model))
	}

	// Ответы пишутся из фоновых горутин, порядок в списке может отличаться от порядка команд.
	sort.SliceStable(results, func(i, j int) bool { return results[i].Seq < results[j].Seq })

	return results, nil
}

// resultsKey возвращает Redis-ключ журнала задания
func (r *JournalRepo) resultsKey(jobID string) string {
	return fmt.Sprintf("print_job:%s:results", jobID)
}
