package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ImageStore writes property images into a flat, publicly readable bucket.
// Objects are keyed by filename; property rows reference them by full
// public URL, so renaming a stored object breaks the reference unless the
// row is updated too.
type ImageStore struct {
	s3       *s3.S3
	uploader *s3manager.Uploader
	bucket   string
	baseURL  string
}

type ImageInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

func newAWSSession() (*session.Session, error) {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}
	endpoint := os.Getenv("S3_ENDPOINT")

	cfg := &aws.Config{
		Region: aws.String(region),
	}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}

	accessKey := os.Getenv("S3_ACCESS_KEY_ID")
	secretKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	if accessKey != "" && secretKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	return session.NewSession(cfg)
}

// NewImageStore builds the store from environment configuration. The
// bucket defaults to property-images, the namespace the rest of the app
// assumes.
func NewImageStore() (*ImageStore, error) {
	sess, err := newAWSSession()
	if err != nil {
		return nil, err
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		bucket = "property-images"
	}

	baseURL := os.Getenv("S3_PUBLIC_BASE_URL")
	if baseURL == "" {
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			baseURL = strings.TrimSuffix(endpoint, "/") + "/" + bucket
		} else {
			region := aws.StringValue(sess.Config.Region)
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		}
	}

	return &ImageStore{
		s3:       s3.New(sess),
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// PublicURL derives the public address of a stored object.
func (is *ImageStore) PublicURL(filename string) string {
	return is.baseURL + "/" + filename
}

// Upload stores the file content under filename and returns its public
// URL. Uploading over an existing name is rejected; callers generate
// collision-resistant names instead of overwriting.
func (is *ImageStore) Upload(body io.ReadSeeker, filename, contentType string) (string, error) {
	_, err := is.s3.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(is.bucket),
		Key:    aws.String(filename),
	})
	if err == nil {
		return "", fmt.Errorf("object %q already exists", filename)
	}
	var aerr awserr.Error
	if !errors.As(err, &aerr) || (aerr.Code() != "NotFound" && aerr.Code() != s3.ErrCodeNoSuchKey) {
		return "", err
	}

	_, err = is.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(is.bucket),
		Key:         aws.String(filename),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return is.PublicURL(filename), nil
}

// Delete removes the stored object. Callers treat failures here as
// best-effort: the image reference is dropped from the property row even
// when the blob could not be removed.
func (is *ImageStore) Delete(filename string) error {
	_, err := is.s3.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(is.bucket),
		Key:    aws.String(filename),
	})
	return err
}

// List returns the bucket's object metadata, used by setup verification.
func (is *ImageStore) List() ([]ImageInfo, error) {
	out, err := is.s3.ListObjectsV2(&s3.ListObjectsV2Input{
		Bucket: aws.String(is.bucket),
	})
	if err != nil {
		return nil, err
	}

	infos := make([]ImageInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		infos = append(infos, ImageInfo{
			Name: aws.StringValue(obj.Key),
			Size: aws.Int64Value(obj.Size),
		})
	}
	return infos, nil
}
