package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/its-serah/SheRages/internal/storage"
)

type AddPostInput struct {
	Body     string
	Topic    string
	Location string
	Author   string
}

// AddPost validates and stores a community post, registering the topic if it
// is new.
func (s *Service) AddPost(ctx context.Context, in AddPostInput) (*storage.Post, error) {
	body, err := normalizeRequired(in.Body, "post body")
	if err != nil {
		return nil, err
	}
	topic, err := normalizeRequired(in.Topic, "topic")
	if err != nil {
		return nil, err
	}
	location, err := normalizeRequired(in.Location, "location")
	if err != nil {
		return nil, err
	}

	if err := s.topics.Ensure(ctx, topic); err != nil {
		return nil, err
	}

	post := storage.Post{
		ID:        uuid.NewString(),
		Body:      body,
		Topic:     topic,
		Location:  location,
		CreatedAt: s.now().UTC(),
	}
	if a := in.Author; a != "" {
		post.Author = &a
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Feed lists posts newest first, filtered by topic and location sets.
func (s *Service) Feed(ctx context.Context, f storage.PostFilter) ([]storage.Post, error) {
	return s.posts.List(ctx, f)
}

// Topics returns the known topic names, defaults included.
func (s *Service) Topics(ctx context.Context) ([]string, error) {
	if err := s.topics.EnsureDefaults(ctx); err != nil {
		return nil, err
	}
	return s.topics.List(ctx)
}
