package outcomes

import (
	"context"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/app/models"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type minioSink struct {
	storage    contracts.Storage
	bucketName string
}

func NewMinioSink(storage contracts.Storage, bucketName string) contracts.OutcomeSink {
	return &minioSink{storage: storage, bucketName: bucketName}
}

func (s *minioSink) Name() string {
	return constvars.SinkMinio
}

func (s *minioSink) Write(ctx context.Context, record *models.OutcomeRecord) error {
	content, err := json.Marshal(record)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = s.storage.UploadObject(ctx, s.bucketName, ObjectName(record.ID), content, constvars.MIMEApplicationJSON)
	return err
}

// ObjectName is the key a record is stored under.
func ObjectName(recordID string) string {
	return constvars.OutcomeObjectPrefix + recordID + constvars.OutcomeObjectSuffix
}
