package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ObjectStore holds files uploaded for a project (thumbnails, archives).
// Uploads happen elsewhere; the lifecycle only cleans up after a delete.
type ObjectStore interface {
	RemoveProjectObjects(ctx context.Context, projectUUID string) error
	// ListProjects returns the UUIDs that have at least one stored object.
	ListProjects(ctx context.Context) ([]string, error)
}

type MinioObjectStore struct {
	client *minio.Client
	bucket string
}

func NewMinioObjectStore(client *minio.Client, bucket string) *MinioObjectStore {
	return &MinioObjectStore{client: client, bucket: bucket}
}

const projectObjectRoot = "projects/"

func ProjectObjectPrefix(projectUUID string) string {
	return fmt.Sprintf("%s%s/", projectObjectRoot, projectUUID)
}

func (s *MinioObjectStore) RemoveProjectObjects(ctx context.Context, projectUUID string) error {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    ProjectObjectPrefix(projectUUID),
		Recursive: true,
	})

	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		if rerr.Err != nil {
			return fmt.Errorf("remove %s: %w", rerr.ObjectName, rerr.Err)
		}
	}
	return nil
}

func (s *MinioObjectStore) ListProjects(ctx context.Context) ([]string, error) {
	var ids []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: projectObjectRoot}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s: %w", projectObjectRoot, obj.Err)
		}
		// non-recursive listing yields one common prefix per project
		id := strings.TrimSuffix(strings.TrimPrefix(obj.Key, projectObjectRoot), "/")
		if id != "" && strings.HasSuffix(obj.Key, "/") {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
