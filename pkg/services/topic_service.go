package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/topic"
)

// TopicService manages the topic vocabulary claims are filed under.
type TopicService struct {
	client *ent.Client
}

// NewTopicService creates a new TopicService
func NewTopicService(client *ent.Client) *TopicService {
	return &TopicService{client: client}
}

// GetOrCreate resolves a topic by name, creating it on first use. Names are
// stored trimmed; matching is exact.
func (s *TopicService) GetOrCreate(ctx context.Context, name string, description *string) (*ent.Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	existing, err := s.client.Topic.Query().
		Where(topic.NameEQ(name)).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query topic: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.Topic.Create().
		SetName(name).
		SetNillableDescription(description).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race; the winner's row is what we want.
			return s.client.Topic.Query().Where(topic.NameEQ(name)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return created, nil
}

// GetTopic retrieves a topic by ID
func (s *TopicService) GetTopic(ctx context.Context, id int) (*ent.Topic, error) {
	t, err := s.client.Topic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return t, nil
}

// ListTopics returns all topics ordered by name.
func (s *TopicService) ListTopics(ctx context.Context) ([]*ent.Topic, error) {
	topics, err := s.client.Topic.Query().
		Order(ent.Asc(topic.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}
