package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"bas-manager/core/dataset"
	"bas-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckStructure returns the prefixes and objects required by the dataset
// layout that are missing from the bucket.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, data dataset.Config) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, prefix := range []string{data.BASPrefix, data.OccupancyPrefix} {
		prefixPath := prefix
		if !strings.HasSuffix(prefixPath, "/") {
			prefixPath += "/"
		}

		opts := minio.ListObjectsOptions{
			Prefix:    prefixPath,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}

		if !found {
			missing = append(missing, prefix)
		}
	}

	for _, object := range []string{data.OAObject, data.RosterObject} {
		opts := minio.ListObjectsOptions{
			Prefix:  object,
			MaxKeys: 1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
			}
			if obj.Key == object {
				found = true
			}
		}

		if !found {
			missing = append(missing, object)
		}
	}

	return missing, nil
}

// FixStructure creates missing prefixes as empty folder markers.
// Missing data objects cannot be fabricated and are skipped.
func FixStructure(ctx context.Context, client storage.Client, bucket string, data dataset.Config, logger *zap.Logger, missing []string) error {
	fixable := map[string]struct{}{
		data.BASPrefix:       {},
		data.OccupancyPrefix: {},
	}

	for _, entry := range missing {
		if _, ok := fixable[entry]; !ok {
			logger.Warn("Cannot create missing data object", zap.String("object", entry))
			continue
		}

		prefixPath := entry
		if !strings.HasSuffix(prefixPath, "/") {
			prefixPath += "/"
		}

		_, err := client.PutObject(ctx, bucket, prefixPath, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create prefix", zap.String("prefix", entry), zap.Error(err))
			return err
		}
		logger.Info("Created missing prefix", zap.String("prefix", entry))
	}
	return nil
}
