package checks

import (
	"context"
	"fmt"
	"strings"

	"bas-manager/core/dataset"
	"bas-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckNaming lists both per-room prefixes and returns the object keys that
// do not follow the Flo2.3-<room>.csv naming convention.
func CheckNaming(ctx context.Context, client storage.Client, bucket string, data dataset.Config) ([]string, error) {
	var strays []string

	for _, prefix := range []string{data.BASPrefix, data.OccupancyPrefix} {
		prefixPath := prefix
		if !strings.HasSuffix(prefixPath, "/") {
			prefixPath += "/"
		}

		opts := minio.ListObjectsOptions{
			Prefix:    prefixPath,
			Recursive: true,
		}

		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
			}

			// Folder markers are part of the structure, not strays.
			if strings.HasSuffix(obj.Key, "/") {
				continue
			}

			if _, ok := data.RoomFromObjectKey(obj.Key); !ok {
				strays = append(strays, obj.Key)
			}
		}
	}

	return strays, nil
}

// FixNaming deletes stray objects.
func FixNaming(ctx context.Context, client storage.Client, bucket string, strays []string) error {
	if len(strays) == 0 {
		return nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(strays))
	for _, key := range strays {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	errorCh := client.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{})

	var errors []string
	for err := range errorCh {
		if err.Err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", err.ObjectName, err.Err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("stray cleanup had %d errors: %v", len(errors), errors)
	}

	return nil
}
