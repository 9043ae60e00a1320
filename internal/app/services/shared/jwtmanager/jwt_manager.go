package jwtmanager

import (
	"context"
	"fmt"
	"outcomes-service/internal/app/config"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"
	"outcomes-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

// JWTManager signs the short lived HS256 tokens attached to outbound webhook
// calls.
type JWTManager struct {
	log    *zap.Logger
	secret string
	ttl    time.Duration
}

type CreateTokenInput struct {
	Subject string
}

type CreateTokenOutput struct {
	Token string
}

// NewJWTManager reads the signing secret and TTL from InternalConfig.Webhook.
func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.Webhook.JWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("PERSISTENCE_WEBHOOK_JWT_SECRET is empty")
	}

	ttl := time.Duration(cfg.Webhook.JWTTTLInMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &JWTManager{
		log:    log,
		secret: secret,
		ttl:    ttl,
	}, nil
}

// CreateToken returns a token whose jti carries in.Subject.
func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Subject) == "" {
		return nil, exceptions.ErrTokenGeneration(fmt.Errorf("subject is required"))
	}

	token, err := utils.GenerateWebhookJWT(in.Subject, j.secret, j.ttl)
	if err != nil {
		j.log.Error("JWTManager.CreateToken error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGeneration(err)
	}

	return &CreateTokenOutput{Token: token}, nil
}

// IssueToken satisfies contracts.TokenIssuer.
func (j *JWTManager) IssueToken(ctx context.Context, subject string) (string, error) {
	out, err := j.CreateToken(ctx, &CreateTokenInput{Subject: subject})
	if err != nil {
		return "", err
	}
	return out.Token, nil
}
