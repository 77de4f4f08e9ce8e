package output

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// PutObjectAPI is the part of [s3.Client] used for uploads.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ PutObjectAPI = (*s3.Client)(nil)

// NewS3Client builds a client from the default credential chain and region.
func NewS3Client(ctx context.Context) (PutObjectAPI, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading aws config")
	}
	return s3.NewFromConfig(cfg), nil
}

type S3 struct {
	Client PutObjectAPI
	Bucket string
	Key    string
}

func (o *S3) Put(ctx context.Context, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(o.Bucket),
		Key:           aws.String(o.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}

	if _, err := o.Client.PutObject(ctx, input); err != nil {
		return errors.Wrapf(err, "putting s3://%s/%s", o.Bucket, o.Key)
	}
	return nil
}
