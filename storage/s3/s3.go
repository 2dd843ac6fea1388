// Copyright 2023 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package s3

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsHttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/grenade/taskcluster-queue/model"
)

const (
	// presign TTLs are clamped to [ExpireMinLimit, ExpireMaxLimit]; the
	// 7-day upper bound is the AWS presign limit.
	ExpireMaxLimit = 7 * 24 * time.Hour
	ExpireMinLimit = 1 * time.Minute

	// Constants not exposed by aws-sdk-go, from /aws/signer/v4/internal/v4
	paramAmzDate       = "X-Amz-Date"
	paramAmzDateFormat = "20060102T150405Z"
)

// Bucket is the AWS S3 adapter: data layer for put/get URL signing.
// Implements storage.Bucket.
type Bucket struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	opts          Options
}

func New(ctx context.Context, opts Options) (*Bucket, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.WithMessage(err, "s3: invalid configuration")
	}

	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(opts.Region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg)
	presignClient := s3.NewPresignClient(client)

	b := &Bucket{
		client:        client,
		presignClient: presignClient,
		opts:          opts,
	}
	if err := b.init(ctx); err != nil {
		return nil, errors.WithMessage(err, "s3: failed to check bucket preconditions")
	}
	return b, nil
}

func (b *Bucket) init(ctx context.Context) error {
	var rspErr *awsHttp.ResponseError
	_, err := b.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(b.opts.Bucket),
	})
	if err == nil {
		return nil
	}
	if errors.As(err, &rspErr) && rspErr.Response.StatusCode == http.StatusForbidden {
		return fmt.Errorf(
			"s3: insufficient permissions for accessing bucket '%s'", b.opts.Bucket,
		)
	}
	return err
}

func (b *Bucket) Name() string {
	return b.opts.Bucket
}

func (b *Bucket) Region() string {
	return b.opts.Region
}

// capDurationToLimits: presign requests are limited to 7 days (AWS limit).
func capDurationToLimits(duration time.Duration) time.Duration {
	if duration < ExpireMinLimit {
		duration = ExpireMinLimit
	} else if duration > ExpireMaxLimit {
		duration = ExpireMaxLimit
	}
	return duration
}

func signDateFromHeader(header http.Header, fallback time.Time) time.Time {
	if date, err := time.Parse(paramAmzDateFormat, header.Get(paramAmzDate)); err == nil {
		return date
	}
	return fallback
}

func (b *Bucket) CreatePutURL(
	ctx context.Context, key, contentType string, ttl time.Duration,
) (*model.Link, error) {
	ttl = capDurationToLimits(ttl).Truncate(time.Second)

	params := &s3.PutObjectInput{
		Bucket:      aws.String(b.opts.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}
	now := time.Now()
	req, err := b.presignClient.PresignPutObject(ctx, params, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, errors.WithMessage(err, "s3: failed to sign PUT request")
	}
	signDate := signDateFromHeader(req.SignedHeader, now)
	return model.NewLink(req.URL, signDate.Add(ttl)), nil
}

// CreateGetURL builds the unsigned public redirect target for a public
// artifact: the CDN form, or the direct same-region bucket host when
// forceSameRegion is set. No network call, no signing.
func (b *Bucket) CreateGetURL(key string, forceSameRegion bool) string {
	host := b.opts.CloudFrontHost
	if forceSameRegion {
		host = b.opts.sameRegionHost()
	}
	return fmt.Sprintf("https://%s/%s", host, key)
}

func (b *Bucket) CreateSignedGetURL(
	ctx context.Context, key string, ttl time.Duration, filename string,
) (*model.Link, error) {
	ttl = capDurationToLimits(ttl).Truncate(time.Second)

	params := &s3.GetObjectInput{
		Bucket: aws.String(b.opts.Bucket),
		Key:    aws.String(key),
	}
	if filename != "" {
		disposition := fmt.Sprintf("attachment; filename=%q", filename)
		params.ResponseContentDisposition = &disposition
	}

	now := time.Now()
	req, err := b.presignClient.PresignGetObject(ctx, params, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, errors.WithMessage(err, "s3: failed to sign GET request")
	}
	signDate := signDateFromHeader(req.SignedHeader, now)
	return model.NewLink(req.URL, signDate.Add(ttl)), nil
}
