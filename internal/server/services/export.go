package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/dmitrijs2005/moodtrack/internal/server/config"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/repomanager"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const exportURLValidity = 15 * time.Minute

// ExportSnapshot is the document written to object storage: everything the
// user has logged, as of the moment of export.
type ExportSnapshot struct {
	UserID         string                 `json:"user_id"`
	ExportedAt     time.Time              `json:"exported_at"`
	Moods          []*models.Mood         `json:"moods"`
	JournalEntries []*models.JournalEntry `json:"journal_entries"`
	Activities     []*models.Activity     `json:"activities"`
}

// ExportService writes a full snapshot of a user's data to S3-compatible
// storage and hands back a time-limited download URL.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *ExportService {
	return &ExportService{db: db, repomanager: m, config: config}
}

func exportStorageKey(userID string) string {
	d := time.Now()
	return fmt.Sprintf("exports/%s/%d/%d/%d/%v.json", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getS3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Export gathers the user's data, uploads it as a JSON object, and returns a
// presigned GET URL valid for fifteen minutes.
func (s *ExportService) Export(ctx context.Context, userID string) (string, error) {
	snapshot := &ExportSnapshot{UserID: userID, ExportedAt: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot.Moods, err = s.repomanager.Moods(s.db).GetAll(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.JournalEntries, err = s.repomanager.JournalEntries(s.db).GetAll(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Activities, err = s.repomanager.Activities(s.db).GetAll(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("error collecting export data: %w", err)
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("error encoding export: %w", err)
	}

	client, err := s.getS3Client()
	if err != nil {
		return "", fmt.Errorf("error creating storage client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := exportStorageKey(userID)
	contentType := "application/json"

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	}); err != nil {
		return "", fmt.Errorf("error uploading export: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(exportURLValidity))
	if err != nil {
		return "", fmt.Errorf("error presigning export url: %w", err)
	}

	return req.URL, nil
}
