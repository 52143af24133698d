package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/repository"
	"github.com/linskybing/project-review/internal/repository/memstore"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingObjects struct {
	listed  atomic.Int32
	removed atomic.Int32
}

func (o *countingObjects) ListProjects(context.Context) ([]string, error) {
	o.listed.Add(1)
	return []string{"deleted-project"}, nil
}

func (o *countingObjects) RemoveProjectObjects(context.Context, string) error {
	o.removed.Add(1)
	return nil
}

var _ repository.ObjectStore = (*countingObjects)(nil)

func TestStartObjectSweep(t *testing.T) {
	objects := &countingObjects{}
	svc := application.New(memstore.New().Repos(), zap.NewNop(), nil, objects)

	ctx, cancel := context.WithCancel(context.Background())
	StartObjectSweep(ctx, svc.Project, 20*time.Millisecond, zap.NewNop())

	assert.Eventually(t, func() bool { return objects.listed.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	assert.GreaterOrEqual(t, objects.removed.Load(), int32(2))
	// the loop exits once cancelled
	time.Sleep(50 * time.Millisecond)
	settled := objects.listed.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, objects.listed.Load())
}
