package datasetapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"go-hrgen/internal/events"
	"go-hrgen/internal/generator"
	"go-hrgen/internal/messaging/kafka"
	"go-hrgen/internal/shared/apperror"
	"go-hrgen/internal/shared/contextutil"
)

const datasetCacheKeyPrefix = "datasets:result:"

//go:generate mockgen -source=datasetapi_service.go -destination=mock/datasetapi_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GenerateDatasetRequest) (GenerateDatasetResponse, error)
}

type service struct {
	gen       generator.Service
	rdb       *redis.Client
	publisher kafka.EventPublisher
	sf        *singleflight.Group
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewService wraps the generation engine with a redis result cache (seeded
// requests only, since only those are reproducible), singleflight collapse of
// identical in-flight runs, and event publication. rdb may be nil to disable
// caching; publisher may be nil to disable events.
func NewService(
	gen generator.Service,
	rdb *redis.Client,
	publisher kafka.EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("datasetapi.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("datasetapi.service")
	}
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}
	return &service{
		gen:       gen,
		rdb:       rdb,
		publisher: publisher,
		sf:        &singleflight.Group{},
		cacheTTL:  15 * time.Minute,
		logger:    l,
	}
}

func (s *service) Generate(ctx context.Context, req GenerateDatasetRequest) (GenerateDatasetResponse, error) {
	req = withDefaultWindow(req, time.Now().UTC())

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate dataset requested",
		zap.String("request_id", rid),
		zap.Int("n_employees", req.NEmployees),
		zap.Bool("seeded", req.Seed != nil),
	)

	genReq, err := toGeneratorRequest(req)
	if err != nil {
		return GenerateDatasetResponse{}, err
	}

	cacheable := req.Seed != nil && s.rdb != nil
	key := cacheKey(req)

	if cacheable {
		raw, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var cached GenerateDatasetResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.logger.Debug("dataset cache hit", zap.String("request_id", rid))
				return cached, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("dataset cache read failed", zap.Error(err))
		}
	}

	result, err, _ := s.sf.Do(key, func() (any, error) {
		ds, err := s.gen.Generate(ctx, genReq)
		if err != nil {
			return nil, err
		}

		resp := GenerateDatasetResponse{
			RunID:  uuid.New().String(),
			Seed:   req.Seed,
			Tables: ds.Tables(),
		}

		if cacheable {
			if raw, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("dataset cache write failed", zap.Error(err))
				}
			}
		}

		tableNames := make([]string, 0, len(resp.Tables))
		for name := range resp.Tables {
			tableNames = append(tableNames, name)
		}
		event := events.DatasetGeneratedEvent{
			RunID:       resp.RunID,
			NEmployees:  req.NEmployees,
			Seeded:      req.Seed != nil,
			Tables:      tableNames,
			GeneratedAt: time.Now().UTC(),
		}
		if err := s.publisher.PublishDatasetGenerated(ctx, event); err != nil {
			// Event delivery is best effort; the dataset is already built.
			s.logger.Warn("dataset event publish failed", zap.Error(err))
		}

		return resp, nil
	})
	if err != nil {
		return GenerateDatasetResponse{}, err
	}

	return result.(GenerateDatasetResponse), nil
}

// withDefaultWindow fills omitted dates with the trailing five-year window.
// Applied before cache keying so defaulted requests key on concrete dates.
func withDefaultWindow(req GenerateDatasetRequest, now time.Time) GenerateDatasetRequest {
	if req.EndDate == "" {
		req.EndDate = now.Format("2006-01-02")
	}
	if req.StartDate == "" {
		req.StartDate = time.Date(now.Year()-5, time.January, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	return req
}

func toGeneratorRequest(req GenerateDatasetRequest) (generator.GenerateRequest, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return generator.GenerateRequest{}, apperror.InvalidField("Start Date")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return generator.GenerateRequest{}, apperror.InvalidField("End Date")
	}
	return generator.GenerateRequest{
		NEmployees:          req.NEmployees,
		StartDate:           start,
		EndDate:             end,
		Seed:                req.Seed,
		IncludePerformance:  req.IncludePerformance,
		IncludeCompensation: req.IncludeCompensation,
	}, nil
}

// cacheKey digests the full request so any parameter change misses the cache.
func cacheKey(req GenerateDatasetRequest) string {
	seed := "none"
	if req.Seed != nil {
		seed = fmt.Sprintf("%d", *req.Seed)
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf(
		"%d|%s|%s|%s|%t|%t",
		req.NEmployees, req.StartDate, req.EndDate, seed,
		req.IncludePerformance, req.IncludeCompensation,
	)))
	return datasetCacheKeyPrefix + hex.EncodeToString(sum[:])
}
