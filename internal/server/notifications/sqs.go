package notifications

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"

	sc "github.com/dmitrijs2005/authkeeper/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newSQSClientFromConfig = func(cfg aws.Config, optFns ...func(*sqs.Options)) *sqs.Client {
		return sqs.NewFromConfig(cfg, optFns...)
	}

	sendMessage = func(c *sqs.Client, ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
		return c.SendMessage(ctx, in, optFns...)
	}
)

// SQSDispatcher implements Dispatcher over an SQS-compatible queue.
type SQSDispatcher struct {
	config *sc.Config
}

func NewSQSDispatcher(config *sc.Config) *SQSDispatcher {
	return &SQSDispatcher{config: config}
}

func (d *SQSDispatcher) getClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(d.config.QueueRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			d.config.QueueAccessKey,
			d.config.QueueSecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newSQSClientFromConfig(cfg, func(o *sqs.Options) {
		o.BaseEndpoint = aws.String(d.config.QueueBaseEndpoint)
	})

	return client, nil
}

// Send JSON-encodes the message and puts it on the queue. The send result
// body is intentionally not inspected; only errors are surfaced.
func (d *SQSDispatcher) Send(ctx context.Context, msg EmailMessage) error {

	client, err := d.getClient(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	_, err = sendMessage(client, ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.config.QueueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"notification_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(uuid.NewString()),
			},
		},
	})

	return err
}
