package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/lazy8055/psych-care/internal/config"
)

const (
	avatarMaxEdge = 512
	webpQuality   = 85
)

// S3API is the subset of the S3 client the avatar store uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// AvatarStore normalizes uploaded patient photos (decode, downscale, webp)
// and writes them to S3. When no bucket is configured every upload is a
// no-op returning an empty URL.
type AvatarStore struct {
	client   S3API
	bucket   string
	endpoint string
}

func NewAvatarStore(cfg *config.Config) *AvatarStore {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" {
		return &AvatarStore{}
	}

	awsCfg := aws.Config{
		Region:      cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &AvatarStore{
		client:   client,
		bucket:   cfg.S3Bucket,
		endpoint: strings.TrimSuffix(cfg.S3Endpoint, "/"),
	}
}

func (s *AvatarStore) Enabled() bool {
	return s != nil && s.client != nil && s.bucket != ""
}

// Upload converts the image to a bounded webp and stores it under
// patients/avatars/<id>.webp, returning the object URL.
func (s *AvatarStore) Upload(ctx context.Context, patientID uint, r io.Reader) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("avatar: decode image: %w", err)
	}

	src = downscale(src, avatarMaxEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("avatar: encode webp: %w", err)
	}

	key := fmt.Sprintf("patients/avatars/%d.webp", patientID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("avatar: put object: %w", err)
	}

	return s.objectURL(key), nil
}

func (s *AvatarStore) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

// downscale keeps aspect ratio and never upscales.
func downscale(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
