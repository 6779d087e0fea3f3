package mocks

import (
	"context"
	"time"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/domain/reviewer"
	"github.com/stretchr/testify/mock"
)

// ReviewerRepository is a mock for reviewer.Repository.
type ReviewerRepository struct {
	mock.Mock
}

func (m *ReviewerRepository) Create(ctx context.Context, rev *reviewer.Reviewer) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *ReviewerRepository) GetByKey(ctx context.Context, key string) (*reviewer.Reviewer, error) {
	args := m.Called(ctx, key)
	if rev, ok := args.Get(0).(*reviewer.Reviewer); ok {
		return rev, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReviewerRepository) List(ctx context.Context) ([]reviewer.Reviewer, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]reviewer.Reviewer); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReviewerRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// CommentRepository is a mock for repository.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) List(ctx context.Context, reviewerKey string) ([]api.Comment, error) {
	args := m.Called(ctx, reviewerKey)
	if list, ok := args.Get(0).([]api.Comment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) Get(ctx context.Context, reviewerKey, id string) (*api.Comment, error) {
	args := m.Called(ctx, reviewerKey, id)
	if c, ok := args.Get(0).(*api.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) Insert(ctx context.Context, reviewerKey string, c *api.Comment) (*api.Comment, error) {
	args := m.Called(ctx, reviewerKey, c)
	if stored, ok := args.Get(0).(*api.Comment); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) Update(ctx context.Context, reviewerKey string, c *api.Comment) (*api.Comment, error) {
	args := m.Called(ctx, reviewerKey, c)
	if stored, ok := args.Get(0).(*api.Comment); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) Delete(ctx context.Context, reviewerKey, id string) error {
	args := m.Called(ctx, reviewerKey, id)
	return args.Error(0)
}

// BoardItemRepository is a mock for repository.BoardItemRepository.
type BoardItemRepository struct {
	mock.Mock
}

func (m *BoardItemRepository) List(ctx context.Context, reviewerKey string) ([]api.BoardItem, error) {
	args := m.Called(ctx, reviewerKey)
	if list, ok := args.Get(0).([]api.BoardItem); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BoardItemRepository) Upsert(ctx context.Context, reviewerKey string, item *api.BoardItem) (*api.BoardItem, error) {
	args := m.Called(ctx, reviewerKey, item)
	if stored, ok := args.Get(0).(*api.BoardItem); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

// BoardNoteRepository is a mock for repository.BoardNoteRepository.
type BoardNoteRepository struct {
	mock.Mock
}

func (m *BoardNoteRepository) List(ctx context.Context, reviewerKey string) ([]api.BoardNote, error) {
	args := m.Called(ctx, reviewerKey)
	if list, ok := args.Get(0).([]api.BoardNote); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BoardNoteRepository) Insert(ctx context.Context, reviewerKey string, n *api.BoardNote) (*api.BoardNote, error) {
	args := m.Called(ctx, reviewerKey, n)
	if stored, ok := args.Get(0).(*api.BoardNote); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BoardNoteRepository) Update(ctx context.Context, reviewerKey string, n *api.BoardNote) (*api.BoardNote, error) {
	args := m.Called(ctx, reviewerKey, n)
	if stored, ok := args.Get(0).(*api.BoardNote); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BoardNoteRepository) Delete(ctx context.Context, reviewerKey, id string) error {
	args := m.Called(ctx, reviewerKey, id)
	return args.Error(0)
}

// SliderRepository is a mock for repository.SliderRepository.
type SliderRepository struct {
	mock.Mock
}

func (m *SliderRepository) List(ctx context.Context, reviewerKey string) ([]api.Slider, error) {
	args := m.Called(ctx, reviewerKey)
	if list, ok := args.Get(0).([]api.Slider); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SliderRepository) Upsert(ctx context.Context, reviewerKey string, s *api.Slider) (*api.Slider, error) {
	args := m.Called(ctx, reviewerKey, s)
	if stored, ok := args.Get(0).(*api.Slider); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

// PanelRepository is a mock for repository.PanelRepository.
type PanelRepository struct {
	mock.Mock
}

func (m *PanelRepository) List(ctx context.Context, reviewerKey string) ([]api.Panel, error) {
	args := m.Called(ctx, reviewerKey)
	if list, ok := args.Get(0).([]api.Panel); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PanelRepository) Get(ctx context.Context, reviewerKey, sectionKey, itemKey string) (*api.Panel, error) {
	args := m.Called(ctx, reviewerKey, sectionKey, itemKey)
	if p, ok := args.Get(0).(*api.Panel); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PanelRepository) Upsert(ctx context.Context, reviewerKey string, p *api.Panel) (*api.Panel, error) {
	args := m.Called(ctx, reviewerKey, p)
	if stored, ok := args.Get(0).(*api.Panel); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PanelRepository) Delete(ctx context.Context, reviewerKey, sectionKey, itemKey string) error {
	args := m.Called(ctx, reviewerKey, sectionKey, itemKey)
	return args.Error(0)
}

// SynthesisRepository is a mock for repository.SynthesisRepository.
type SynthesisRepository struct {
	mock.Mock
}

func (m *SynthesisRepository) Get(ctx context.Context, reviewerKey, sectionKey string) (*api.Synthesis, error) {
	args := m.Called(ctx, reviewerKey, sectionKey)
	if s, ok := args.Get(0).(*api.Synthesis); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SynthesisRepository) Upsert(ctx context.Context, reviewerKey string, s *api.Synthesis) (*api.Synthesis, error) {
	args := m.Called(ctx, reviewerKey, s)
	if stored, ok := args.Get(0).(*api.Synthesis); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

// CompletionRepository is a mock for repository.CompletionRepository.
type CompletionRepository struct {
	mock.Mock
}

func (m *CompletionRepository) Get(ctx context.Context, reviewerKey string) (*api.Completion, error) {
	args := m.Called(ctx, reviewerKey)
	if c, ok := args.Get(0).(*api.Completion); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompletionRepository) Set(ctx context.Context, reviewerKey string, isDone bool, at time.Time) (*api.Completion, error) {
	args := m.Called(ctx, reviewerKey, isDone, at)
	if c, ok := args.Get(0).(*api.Completion); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// InterviewNoteRepository is a mock for repository.InterviewNoteRepository.
type InterviewNoteRepository struct {
	mock.Mock
}

func (m *InterviewNoteRepository) List(ctx context.Context, reviewerKey string) ([]api.InterviewNote, error) {
	args := m.Called(ctx, reviewerKey)
	if list, ok := args.Get(0).([]api.InterviewNote); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InterviewNoteRepository) Upsert(ctx context.Context, reviewerKey string, n *api.InterviewNote) (*api.InterviewNote, error) {
	args := m.Called(ctx, reviewerKey, n)
	if stored, ok := args.Get(0).(*api.InterviewNote); ok {
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}
