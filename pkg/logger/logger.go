package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	appConfig "valfantasy/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Logger that we will use to save the batch run logs.
type Logger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
	bucket   appConfig.BucketConfig
}

// CreateLogger creates the log instance with a temporary file.
func CreateLogger(bucket appConfig.BucketConfig) (*Logger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	return &Logger{
		logFile:  f,
		filePath: f.Name(),
		bucket:   bucket,
	}, nil
}

// Infof logs a simple info.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write("[INFO]", format, args...)
}

// Errorf logs a error.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write("[ERROR]", format, args...)
}

// EmptyLine writes a empty line.
func (l *Logger) EmptyLine() {
	l.logFile.WriteString("\n")
}

// Write something to the logger.
func (l *Logger) write(infoType string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
}

// CleanFile cleans the file contents.
func (l *Logger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)

	l.logFile.Seek(0, 0)
}

// UploadToS3Bucket uploads the log to a s3 bucket.
func (l *Logger) UploadToS3Bucket(objectKey string) error {
	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

	// Get the config.
	cfg := aws.Config{
		Region: l.bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				l.bucket.AccessKey,
				l.bucket.AccessSecret,
				"",
			),
		),
	}

	// Create the client.
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(l.bucket.Endpoint)
	})

	// Run the put.
	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(l.bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	// Clean the file after sending.
	l.CleanFile()

	return nil
}
