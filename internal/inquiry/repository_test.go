package inquiry

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *FileRepository {
	t.Helper()
	repo := NewRepository(filepath.Join(t.TempDir(), "subscription_requests.json"))
	require.NoError(t, repo.Load(context.Background()))
	return repo
}

func sampleRequest() Request {
	return Request{
		GymID:         3,
		GymName:       "Cult Powai",
		PartnerName:   "Cult",
		FullName:      "Priya Sharma",
		Email:         "priya@example.com",
		Phone:         "9876543210",
		PreferredPlan: "3-month",
	}
}

func TestLoad_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscription_requests.json")
	repo := NewRepository(path)

	require.NoError(t, repo.Load(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"requests": []}`, string(data))
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscription_requests.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := NewRepository(path).Load(context.Background())
	assert.Error(t, err)
}

func TestAppend_AssignsPerDayIDs(t *testing.T) {
	repo := newTestRepo(t)
	repo.now = func() time.Time {
		return time.Date(2025, 8, 26, 9, 0, 0, 0, time.UTC)
	}
	ctx := context.Background()

	first, err := repo.Append(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "REQ_20250826_001", first.RequestID)
	assert.Equal(t, StatusPending, first.Status)

	second, err := repo.Append(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "REQ_20250826_002", second.RequestID)

	// The counter resets on a new day.
	repo.now = func() time.Time {
		return time.Date(2025, 8, 27, 9, 0, 0, 0, time.UTC)
	}
	third, err := repo.Append(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "REQ_20250827_001", third.RequestID)
}

func TestAppend_PersistsAndReloads(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Append(ctx, sampleRequest())
	require.NoError(t, err)

	other := sampleRequest()
	other.FullName = "Rahul Verma"
	other.Email = "rahul@example.com"
	_, err = repo.Append(ctx, other)
	require.NoError(t, err)

	reloaded := NewRepository(repo.path)
	require.NoError(t, reloaded.Load(ctx))

	all, err := reloaded.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Priya Sharma", all[0].FullName)
	assert.Equal(t, "Rahul Verma", all[1].FullName)
}

func TestAppend_FileShape(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Append(context.Background(), sampleRequest())
	require.NoError(t, err)

	data, err := os.ReadFile(repo.path)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "requests")

	var requests []map[string]interface{}
	require.NoError(t, json.Unmarshal(decoded["requests"], &requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "pending", requests[0]["status"])
	assert.Contains(t, requests[0], "user_latitude")
	assert.Nil(t, requests[0]["user_latitude"])
}

func TestAll_InsertionOrderAndCopy(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"One Person", "Two Person", "Three Person"} {
		req := sampleRequest()
		req.FullName = name
		_, err := repo.Append(ctx, req)
		require.NoError(t, err)
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "One Person", all[0].FullName)
	assert.Equal(t, "Three Person", all[2].FullName)

	// Mutating the returned slice must not touch the log.
	all[0].FullName = "Hacked"
	again, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "One Person", again[0].FullName)

	assert.Equal(t, 3, repo.Count(ctx))
}
