package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
)

// SQSNotifierRepository publishes file-ready notifications to a FIFO
// queue. The message group is the hotel code, so per-hotel ordering
// holds; the deduplication id is derived deterministically from
// (hotel code, file key), so re-sent notifications collapse.
type SQSNotifierRepository struct {
	logger    logger.Logger
	client    *sqs.Client
	queueName string

	mu       sync.Mutex
	queueURL string
}

// NewSQSNotifierRepository creates a new SQS notifier repository
func NewSQSNotifierRepository(client *sqs.Client, queueName string, logger logger.Logger) repository.NotifierRepository {
	return &SQSNotifierRepository{
		logger:    logger,
		client:    client,
		queueName: queueName,
	}
}

// Send publishes one notification and returns the queue message id
func (r *SQSNotifierRepository) Send(ctx context.Context, notification entity.Notification) (string, error) {
	queueURL, err := r.resolveQueueURL(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification: %w", err)
	}

	dedupID := uuid.NewSHA1(uuid.NameSpaceDNS, []byte(notification.HotelCode+notification.FileKey))

	out, err := r.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:               aws.String(queueURL),
		MessageBody:            aws.String(string(body)),
		MessageGroupId:         aws.String(notification.HotelCode),
		MessageDeduplicationId: aws.String(dedupID.String()),
	})
	if err != nil {
		return "", fmt.Errorf("send notification for %s/%s: %w", notification.HotelCode, notification.FileKey, err)
	}

	messageID := aws.ToString(out.MessageId)
	r.logger.Info("Sent file notification",
		"hotelCode", notification.HotelCode,
		"fileType", notification.FileType,
		"fileKey", notification.FileKey,
		"messageId", messageID)

	return messageID, nil
}

func (r *SQSNotifierRepository) resolveQueueURL(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.queueURL != "" {
		return r.queueURL, nil
	}

	out, err := r.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(r.queueName),
	})
	if err != nil {
		return "", fmt.Errorf("resolve queue url for %s: %w", r.queueName, err)
	}

	r.queueURL = aws.ToString(out.QueueUrl)
	return r.queueURL, nil
}
