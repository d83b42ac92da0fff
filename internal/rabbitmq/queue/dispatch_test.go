package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mati-tech/microservices1112/internal/model"
)

func TestDecodeTask(t *testing.T) {
	task := model.NewDispatchTask(12)
	body, err := json.Marshal(task)
	require.NoError(t, err)

	got, err := decodeTask(body)
	require.NoError(t, err)
	assert.Equal(t, task.TaskID, got.TaskID)
	assert.Equal(t, int64(12), got.NotificationID)

	_, err = decodeTask([]byte(`{"task_id":"not-a-uuid"`))
	assert.ErrorIs(t, err, ErrInvalidTask)

	_, err = decodeTask([]byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidTask)
}

func TestForward_DropsMalformedPayloads(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan []byte)
	out := make(chan model.DispatchTask, 1)

	go forward(ctx, in, out)

	in <- []byte("garbage")
	in <- []byte(`{"notification_id": 3}`)

	select {
	case task := <-out:
		assert.Equal(t, int64(3), task.NotificationID)
	case <-time.After(time.Second):
		t.Fatal("task was not forwarded")
	}
}
