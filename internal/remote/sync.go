package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/its-serah/SheRages/internal/storage"
)

// SyncResult reports what one sync pass moved in each direction.
type SyncResult struct {
	PostsPushed    int
	PostsPulled    int
	SymptomsPushed int
	SymptomsPulled int
}

// Syncer exchanges local posts and symptom entries with the backend. Push
// before pull, so a fresh device sees its own writes reflected back with
// remote ids. Any failure aborts the pass; rows already marked stay marked,
// rows not yet pushed stay local and are retried next time.
type Syncer struct {
	client   *Client
	posts    *storage.PostRepo
	symptoms *storage.SymptomRepo
	meta     *storage.MetaRepo
	log      zerolog.Logger
}

// MetaLastSyncAt is the meta key recording when the last full pass finished.
const MetaLastSyncAt = "last_sync_at"

func NewSyncer(client *Client, posts *storage.PostRepo, symptoms *storage.SymptomRepo, meta *storage.MetaRepo, log zerolog.Logger) *Syncer {
	return &Syncer{
		client:   client,
		posts:    posts,
		symptoms: symptoms,
		meta:     meta,
		log:      log.With().Str("component", "sync").Logger(),
	}
}

// LastSyncAt returns when the last successful pass finished, or the zero time
// when this device has never synced.
func (s *Syncer) LastSyncAt(ctx context.Context) (time.Time, error) {
	v, err := s.meta.Get(ctx, MetaLastSyncAt)
	if err != nil || v == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}

// Run performs one full sync pass.
func (s *Syncer) Run(ctx context.Context) (SyncResult, error) {
	var res SyncResult

	if err := s.pushPosts(ctx, &res); err != nil {
		return res, err
	}
	if err := s.pushSymptoms(ctx, &res); err != nil {
		return res, err
	}
	if err := s.pullPosts(ctx, &res); err != nil {
		return res, err
	}
	if err := s.pullSymptoms(ctx, &res); err != nil {
		return res, err
	}

	if err := s.meta.Set(ctx, MetaLastSyncAt, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return res, fmt.Errorf("record sync time: %w", err)
	}

	s.log.Info().
		Int("posts_pushed", res.PostsPushed).
		Int("posts_pulled", res.PostsPulled).
		Int("symptoms_pushed", res.SymptomsPushed).
		Int("symptoms_pulled", res.SymptomsPulled).
		Msg("sync complete")
	return res, nil
}

func (s *Syncer) pushPosts(ctx context.Context, res *SyncResult) error {
	pending, err := s.posts.ListUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("list unsynced posts: %w", err)
	}
	for _, p := range pending {
		stored, err := s.client.InsertPost(ctx, RemotePost{
			Body:      p.Body,
			Topic:     p.Topic,
			Location:  p.Location,
			Author:    p.Author,
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
		if err := s.posts.SetRemoteID(ctx, p.ID, stored.ID); err != nil {
			return fmt.Errorf("mark post synced: %w", err)
		}
		res.PostsPushed++
	}
	return nil
}

func (s *Syncer) pushSymptoms(ctx context.Context, res *SyncResult) error {
	pending, err := s.symptoms.ListUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("list unsynced symptoms: %w", err)
	}
	for _, sym := range pending {
		stored, err := s.client.InsertSymptom(ctx, RemoteSymptom{
			EntryDate: sym.EntryDate.UTC().Format("2006-01-02"),
			Name:      sym.Name,
			Severity:  sym.Severity,
			HeartRate: sym.HeartRate,
			BPSys:     sym.BPSys,
			BPDia:     sym.BPDia,
			Notes:     sym.Notes,
			CreatedAt: sym.CreatedAt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
		if err := s.symptoms.SetRemoteID(ctx, sym.ID, stored.ID); err != nil {
			return fmt.Errorf("mark symptom synced: %w", err)
		}
		res.SymptomsPushed++
	}
	return nil
}

func (s *Syncer) pullPosts(ctx context.Context, res *SyncResult) error {
	remote, err := s.client.ListPosts(ctx)
	if err != nil {
		return err
	}
	for _, rp := range remote {
		if rp.ID == "" {
			continue
		}
		known, err := s.posts.HasRemoteID(ctx, rp.ID)
		if err != nil {
			return fmt.Errorf("check post: %w", err)
		}
		if known {
			continue
		}
		remoteID := rp.ID
		p := storage.Post{
			ID:        uuid.NewString(),
			Body:      rp.Body,
			Topic:     rp.Topic,
			Location:  rp.Location,
			Author:    rp.Author,
			CreatedAt: parseRemoteTime(rp.CreatedAt),
			RemoteID:  &remoteID,
		}
		if err := s.posts.Insert(ctx, p); err != nil {
			return fmt.Errorf("store pulled post: %w", err)
		}
		res.PostsPulled++
	}
	return nil
}

func (s *Syncer) pullSymptoms(ctx context.Context, res *SyncResult) error {
	remote, err := s.client.ListSymptoms(ctx)
	if err != nil {
		return err
	}
	for _, rs := range remote {
		if rs.ID == "" {
			continue
		}
		known, err := s.symptoms.HasRemoteID(ctx, rs.ID)
		if err != nil {
			return fmt.Errorf("check symptom: %w", err)
		}
		if known {
			continue
		}
		entryDate, err := time.ParseInLocation("2006-01-02", rs.EntryDate, time.UTC)
		if err != nil {
			s.log.Warn().Str("id", rs.ID).Str("entry_date", rs.EntryDate).Msg("skipping symptom with bad date")
			continue
		}
		remoteID := rs.ID
		sym := storage.Symptom{
			ID:        uuid.NewString(),
			EntryDate: entryDate,
			Name:      rs.Name,
			Severity:  rs.Severity,
			HeartRate: rs.HeartRate,
			BPSys:     rs.BPSys,
			BPDia:     rs.BPDia,
			Notes:     rs.Notes,
			CreatedAt: parseRemoteTime(rs.CreatedAt),
			RemoteID:  &remoteID,
		}
		if err := s.symptoms.Insert(ctx, sym); err != nil {
			return fmt.Errorf("store pulled symptom: %w", err)
		}
		res.SymptomsPulled++
	}
	return nil
}

func parseRemoteTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return time.Now().UTC()
}
