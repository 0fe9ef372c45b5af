package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-serah/SheRages/internal/storage"
)

type fakeBackend struct {
	posts    []RemotePost
	symptoms []RemoteSymptom
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/v1/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var in []RemotePost
			json.NewDecoder(r.Body).Decode(&in)
			for i := range in {
				in[i].ID = uuid.NewString()
				f.posts = append(f.posts, in[i])
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(in)
			return
		}
		json.NewEncoder(w).Encode(f.posts)
	})
	mux.HandleFunc("/rest/v1/symptoms", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var in []RemoteSymptom
			json.NewDecoder(r.Body).Decode(&in)
			for i := range in {
				in[i].ID = uuid.NewString()
				f.symptoms = append(f.symptoms, in[i])
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(in)
			return
		}
		json.NewEncoder(w).Encode(f.symptoms)
	})
	return mux
}

func newTestSyncer(t *testing.T, backend *fakeBackend) (*Syncer, *storage.PostRepo, *storage.SymptomRepo) {
	t.Helper()
	ctx := context.Background()

	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client, err := NewClient(Config{URL: srv.URL, Key: "k"}, zerolog.Nop())
	require.NoError(t, err)

	posts := storage.NewPostRepo(db)
	symptoms := storage.NewSymptomRepo(db)
	return NewSyncer(client, posts, symptoms, storage.NewMetaRepo(db), zerolog.Nop()), posts, symptoms
}

func TestSyncPushesLocalRows(t *testing.T) {
	backend := &fakeBackend{}
	syncer, posts, symptoms := newTestSyncer(t, backend)
	ctx := context.Background()

	require.NoError(t, posts.Insert(ctx, storage.Post{
		ID: uuid.NewString(), Body: "hello", Topic: "Advocacy", CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, symptoms.Insert(ctx, storage.Symptom{
		ID: uuid.NewString(), EntryDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Name: "Fatigue", Severity: 4, CreatedAt: time.Now().UTC(),
	}))

	res, err := syncer.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.PostsPushed)
	assert.Equal(t, 1, res.SymptomsPushed)
	require.Len(t, backend.posts, 1)
	require.Len(t, backend.symptoms, 1)

	pending, err := posts.ListUnsynced(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	last, err := syncer.LastSyncAt(ctx)
	require.NoError(t, err)
	assert.False(t, last.IsZero())
}

func TestSyncPullsRemoteRows(t *testing.T) {
	backend := &fakeBackend{
		posts: []RemotePost{{ID: "r-post", Body: "from elsewhere", Topic: "Support"}},
		symptoms: []RemoteSymptom{
			{ID: "r-sym", EntryDate: "2025-06-02", Name: "Palpitations", Severity: 6},
		},
	}
	syncer, posts, symptoms := newTestSyncer(t, backend)
	ctx := context.Background()

	res, err := syncer.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.PostsPulled)
	assert.Equal(t, 1, res.SymptomsPulled)

	local, err := posts.List(ctx, storage.PostFilter{})
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, "from elsewhere", local[0].Body)

	syms, err := symptoms.ListRange(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, syms, 1)
}

func TestSyncIsIdempotent(t *testing.T) {
	backend := &fakeBackend{
		posts: []RemotePost{{ID: "r-post", Body: "once", Topic: "Support"}},
	}
	syncer, posts, _ := newTestSyncer(t, backend)
	ctx := context.Background()

	_, err := syncer.Run(ctx)
	require.NoError(t, err)
	res, err := syncer.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.PostsPulled)

	local, err := posts.List(ctx, storage.PostFilter{})
	require.NoError(t, err)
	assert.Len(t, local, 1)
}
