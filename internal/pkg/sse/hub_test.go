package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("job-1")
	defer cleanup()

	hub.Publish("job-1", Event{Job: "job-1", Event: "progress", Data: 42})

	got := <-ch
	assert.Equal(t, "progress", got.Event)
	assert.Equal(t, 42, got.Data)
}

func TestHubReplaysLastEventToLateSubscriber(t *testing.T) {
	hub := NewHub()

	hub.Publish("job-1", Event{Job: "job-1", Event: "progress", Data: "halfway"})

	ch, cleanup := hub.Subscribe("job-1")
	defer cleanup()

	select {
	case got := <-ch:
		assert.Equal(t, "halfway", got.Data)
	default:
		t.Fatal("expected replayed event")
	}
}

func TestHubIsolatesJobs(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("job-a")
	defer cleanup()

	hub.Publish("job-b", Event{Job: "job-b", Event: "progress"})

	select {
	case <-ch:
		t.Fatal("event leaked across jobs")
	default:
	}
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("job-1")
	require.Equal(t, 1, hub.SubscriberCount("job-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("job-1"))

	hub.Forget("job-1")
	_, retained := hub.last["job-1"]
	assert.False(t, retained)
}
