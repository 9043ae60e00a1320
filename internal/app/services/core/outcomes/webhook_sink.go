package outcomes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"outcomes-service/internal/app/config"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/app/models"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type webhookSink struct {
	log        *zap.Logger
	url        string
	tokens     contracts.TokenIssuer
	httpClient *http.Client
}

// NewWebhookSink posts records to InternalConfig.Webhook.URL. tokens may be
// nil when the collector accepts unauthenticated calls.
func NewWebhookSink(cfg *config.InternalConfig, tokens contracts.TokenIssuer, logger *zap.Logger) contracts.OutcomeSink {
	timeoutSeconds := 5
	if cfg.Webhook.HTTPTimeoutInSeconds > 0 {
		timeoutSeconds = cfg.Webhook.HTTPTimeoutInSeconds
	}

	return &webhookSink{
		log:        logger,
		url:        strings.TrimSpace(cfg.Webhook.URL),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	}
}

func (s *webhookSink) Name() string {
	return constvars.SinkWebhook
}

func (s *webhookSink) Write(ctx context.Context, record *models.OutcomeRecord) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bodyBytes, err := json.Marshal(record)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	if s.tokens != nil {
		token, err := s.tokens.IssueToken(ctx, record.ID)
		if err != nil {
			return err
		}
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		s.log.Info("webhookSink.Write delivered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, record.ID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil
	}

	const maxBody = 4096
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	return exceptions.ErrUnexpectedHTTPStatus(fmt.Errorf("response body: %q", string(b)), resp.StatusCode, s.url)
}
