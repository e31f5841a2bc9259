package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vk/msgfeatures/internal/ctxlog"
)

// DefaultS3Region is used when no region is configured.
const DefaultS3Region = "us-east-1"

// S3 writes the output as a single object.
type S3 struct {
	Bucket string
	Key    string
	client *s3.Client
}

// NewS3 connects to the configured endpoint. An empty endpoint means AWS.
// Static credentials are used when an access key is given; requests are
// attempted once.
func NewS3(bucket, key string, opts Options) *S3 {
	region := opts.S3Region
	if region == "" {
		region = DefaultS3Region
	}
	cfg := aws.Config{Region: region}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.S3Endpoint)
		}
		if opts.S3AccessKey != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(opts.S3AccessKey, opts.S3SecretKey, "")
		}
		o.UsePathStyle = opts.S3PathStyle
		o.RetryMaxAttempts = 1
	})
	return &S3{Bucket: bucket, Key: key, client: client}
}

// Put implements Target.
func (s *S3) Put(ctx context.Context, data []byte) error {
	logger := ctxlog.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(s.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(ParquetContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put s3 object %s: %w", s, err)
	}
	logger.Info("Uploaded output object.", "bucket", s.Bucket, "key", s.Key, "size", len(data))
	return nil
}

func (s *S3) String() string {
	return "s3://" + s.Bucket + "/" + s.Key
}
