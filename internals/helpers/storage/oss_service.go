package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

/* =======================================================================
   Aliyun OSS backend
======================================================================= */

type OSSBlobService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "uploads/"
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// light-touch bucket verification
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSBlobService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSBlobService) fullKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.Prefix != "" && !strings.HasPrefix(key, s.Prefix+"/") && !strings.HasPrefix(key, trashPrefix) {
		return s.Prefix + "/" + key
	}
	return key
}

func (s *OSSBlobService) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	k := s.fullKey(key)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(k, r, opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSBlobService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.Bucket.GetObject(s.fullKey(key), oss.WithContext(ctx))
}

func (s *OSSBlobService) Delete(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(s.fullKey(key), oss.WithContext(ctx))
}

func (s *OSSBlobService) MoveToTrash(ctx context.Context, key string) (string, error) {
	src := s.fullKey(key)
	dst := trashKeyFor(src)
	if _, err := s.Bucket.CopyObject(src, dst, oss.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("copy to trash: %w", err)
	}
	if err := s.Bucket.DeleteObject(src, oss.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("delete original: %w", err)
	}
	return dst, nil
}

func (s *OSSBlobService) ListTrash(ctx context.Context, cutoff time.Time) ([]string, error) {
	var keys []string
	marker := ""
	for {
		res, err := s.Bucket.ListObjects(
			oss.Prefix(trashPrefix),
			oss.Marker(marker),
			oss.MaxKeys(1000),
		)
		if err != nil {
			return nil, err
		}
		for _, obj := range res.Objects {
			if obj.LastModified.Before(cutoff) {
				keys = append(keys, obj.Key)
			}
		}
		if !res.IsTruncated {
			break
		}
		marker = res.NextMarker
	}
	return keys, nil
}

func (s *OSSBlobService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	k := s.fullKey(key)
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + k
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, k)
}
