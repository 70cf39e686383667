// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/motorinci/motorinci-api/internal/config"
)

// Storage prefixes for file-backed catalog entities.
const (
	PrefixBrandIcons     = "motorinci/brands/icons"
	PrefixBrandImages    = "motorinci/brands/images"
	PrefixCategoryImages = "motorinci/categories/images"
	PrefixFeatureIcons   = "motorinci/features/icons"
	PrefixColorImages    = "motorinci/colors/images"
	PrefixMotorGallery   = "motorinci/motors/gallery"
)

type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		// Local disk storage for development
		return &StorageService{config: config}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

func (s *StorageService) UploadFile(file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	// Validate file size
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, options.MaxSize)
	}

	// Validate file type
	if len(options.AllowedTypes) > 0 {
		fileExt := strings.ToLower(filepath.Ext(header.Filename))
		allowed := false
		for _, allowedType := range options.AllowedTypes {
			if fileExt == allowedType {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("file type %s is not allowed", fileExt)
		}
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := s.generateKey(options.Folder, ext)

	return s.SaveBytes(fileBytes, key, header.Header.Get("Content-Type"))
}

// SaveBytes stores raw content under the given key. Used both for multipart
// uploads and for images fetched during discovery.
func (s *StorageService) SaveBytes(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	if s.s3Client != nil {
		return s.saveToS3(fileBytes, key, contentType)
	}
	return s.saveToLocal(fileBytes, key, contentType)
}

func (s *StorageService) saveToS3(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	}

	_, err := s.s3Client.PutObject(params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.FileURL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) saveToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	path := filepath.Join(s.config.Storage.LocalPath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      s.FileURL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

// DeleteFile removes a stored object. A missing file is not an error.
func (s *StorageService) DeleteFile(key string) error {
	if key == "" {
		return nil
	}

	if s.s3Client == nil {
		path := filepath.Join(s.config.Storage.LocalPath, filepath.FromSlash(key))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete local file: %w", err)
		}
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *StorageService) FileURL(key string) string {
	if key == "" {
		return ""
	}

	if s.s3Client != nil {
		if s.config.AWS.CloudFrontURL != "" {
			return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
		}
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
			s.config.AWS.S3Bucket, s.config.AWS.Region, key)
	}

	if s.config.Storage.BaseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.Storage.BaseURL, "/"), key)
	}
	return "/" + key
}

// ImageUploadOptions returns the upload policy for catalog images under the
// given storage prefix.
func (s *StorageService) ImageUploadOptions(folder string) UploadOptions {
	return UploadOptions{
		Folder:       folder,
		MaxSize:      10 * 1024 * 1024, // 10MB
		AllowedTypes: []string{".jpg", ".jpeg", ".png", ".webp", ".svg"},
	}
}

// StoreUpload opens a multipart upload and stores it under the prefix,
// returning the stored key.
func (s *StorageService) StoreUpload(file *multipart.FileHeader, prefix string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	result, err := s.UploadFile(f, file, s.ImageUploadOptions(prefix))
	if err != nil {
		return "", err
	}
	return result.Key, nil
}

// GenerateKey builds a unique storage key under folder with the given extension.
func (s *StorageService) GenerateKey(folder, ext string) string {
	return s.generateKey(folder, ext)
}

func (s *StorageService) generateKey(folder, ext string) string {
	id := uuid.New()
	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s%s", timestamp, id.String()[:8], ext)

	if folder != "" {
		return fmt.Sprintf("%s/%s", folder, filename)
	}
	return filename
}
