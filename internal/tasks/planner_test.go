package tasks

import (
	"context"
	"errors"
	"testing"

	"installations_api/internal/models"
	"installations_api/internal/notify"
	"installations_api/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []notify.Event
}

func (r *recorder) Publish(_ context.Context, e notify.Event) error {
	r.events = append(r.events, e)
	return nil
}

func TestBoroughWatcherPublishesChanges(t *testing.T) {
	ctx := context.Background()
	m := storage.NewMemoryStore()
	verdun := m.AddBorough(models.Borough{Name: "Verdun", DateMaj: "2021-01-01"})
	m.AddBorough(models.Borough{Name: "Anjou", DateMaj: "2021-01-01"})
	require.NoError(t, m.CreateSubscriber(ctx, &models.Subscriber{FullName: "A", Email: "a@example.com", Boroughs: []models.Borough{verdun}}))

	pub := &recorder{}
	w := NewBoroughWatcher(m, pub)

	n, err := w.Check(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "first check records the baseline")

	n, err = w.Check(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	m.SetBoroughDate(verdun.ID, "2021-11-02")
	laval := m.AddBorough(models.Borough{Name: "Laval", DateMaj: "2021-11-02"})

	n, err = w.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, pub.events, 2)

	e := pub.events[0]
	assert.Equal(t, notify.BoroughUpdated, e.EventType)
	assert.Equal(t, verdun.ID, e.BoroughID)
	data := e.Data.(map[string]interface{})
	assert.Equal(t, int64(1), data["followers"])
	assert.Equal(t, laval.ID, pub.events[1].BoroughID)
}

type brokenSource struct{}

func (brokenSource) Boroughs(context.Context) ([]models.Borough, error) {
	return nil, errors.New("db down")
}

func (brokenSource) CountFollowers(context.Context, uint) (int64, error) {
	return 0, nil
}

func TestBoroughWatcherSourceError(t *testing.T) {
	_, err := NewBoroughWatcher(brokenSource{}, &recorder{}).Check(context.Background())
	assert.Error(t, err)
}

func TestInitSchedulerRejectsBadSpec(t *testing.T) {
	_, err := InitScheduler("every now and then", NewBoroughWatcher(storage.NewMemoryStore(), &recorder{}))
	assert.Error(t, err)
}

func TestInitSchedulerStarts(t *testing.T) {
	c, err := InitScheduler("0 0 3 * * *", NewBoroughWatcher(storage.NewMemoryStore(), &recorder{}))
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)
}
