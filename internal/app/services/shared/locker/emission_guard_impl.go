package locker

import (
	"context"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type emissionGuard struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewEmissionGuard(repo contracts.RedisRepository, logger *zap.Logger) contracts.EmissionGuard {
	return &emissionGuard{
		redisRepo: repo,
		Log:       logger,
	}
}

// Claim marks recordID as emitted. It reports false when another emission
// already holds the claim.
func (g *emissionGuard) Claim(ctx context.Context, recordID string, ttl time.Duration) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	key := constvars.EmissionGuardKeyPrefix + recordID
	g.Log.Debug("emissionGuard.Claim called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)

	claimValue := uuid.NewString()
	acquired, err := g.redisRepo.TrySetNX(ctx, key, claimValue, ttl)
	if err != nil {
		g.Log.Error("emissionGuard.Claim error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, err
	}

	if !acquired {
		g.Log.Warn("emissionGuard.Claim already claimed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, nil
	}

	g.Log.Debug("emissionGuard.Claim acquired",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return true, nil
}
