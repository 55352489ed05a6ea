// Package testutil provides in-memory repository fakes that follow the
// postgres repositories' semantics closely enough for service and handler tests.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
	"github.com/oksasatya/go-question-bank/internal/domain/repository"
)

// Store is the shared in-memory state behind the fake repositories.
// Setting Err makes every repository call fail with it.
type Store struct {
	mu           sync.Mutex
	users        map[string]entity.User
	subjects     map[int64]entity.Subject
	questions    map[int64]entity.Question
	tags         map[int64]entity.Tag
	questionTags map[int64][]int64
	nextID       int64

	Err error
}

func NewStore() *Store {
	return &Store{
		users:        map[string]entity.User{},
		subjects:     map[int64]entity.Subject{},
		questions:    map[int64]entity.Question{},
		tags:         map[int64]entity.Tag{},
		questionTags: map[int64][]int64{},
	}
}

func (s *Store) AddSubject(id int64, name, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects[id] = entity.Subject{ID: id, Name: name, Status: status}
}

func (s *Store) AddTag(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags[id] = entity.Tag{ID: id, Name: name}
}

// TagQuestion links a question to tags, like a row in question_tags.
func (s *Store) TagQuestion(questionID int64, tagIDs ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questionTags[questionID] = append(s.questionTags[questionID], tagIDs...)
}

// Question returns the raw stored row.
func (s *Store) Question(id int64) (entity.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	return q, ok
}

func (s *Store) QuestionTagCount(questionID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questionTags[questionID])
}

func (s *Store) Users() *UserRepository         { return &UserRepository{s} }
func (s *Store) Subjects() *SubjectRepository   { return &SubjectRepository{s} }
func (s *Store) Questions() *QuestionRepository { return &QuestionRepository{s} }

type UserRepository struct{ s *Store }

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	u, ok := r.s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[u.Email]; ok {
		return repository.ErrDuplicate
	}
	r.s.users[u.Email] = *u
	return nil
}

type SubjectRepository struct{ s *Store }

// ListActive matches case-insensitively, like ILIKE.
func (r *SubjectRepository) ListActive(_ context.Context, search string) ([]entity.Subject, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]entity.Subject, 0)
	for _, sub := range r.s.subjects {
		if sub.Status != entity.SubjectStatusActive {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(sub.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type QuestionRepository struct{ s *Store }

func (r *QuestionRepository) detail(q entity.Question) (entity.QuestionDetail, bool) {
	sub, ok := r.s.subjects[q.SubjectID]
	if !ok {
		return entity.QuestionDetail{}, false
	}
	return entity.QuestionDetail{
		ID:         q.ID,
		Title:      q.Title,
		Content:    q.Content,
		Difficulty: q.Difficulty,
		Answer:     q.Answer,
		Code:       q.Code,
		Subject:    sub.Name,
	}, true
}

func (r *QuestionRepository) List(_ context.Context, f repository.QuestionFilter) ([]entity.QuestionListItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	ids := make([]int64, 0, len(r.s.questions))
	for id := range r.s.questions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matched := make([]entity.QuestionListItem, 0)
	for _, id := range ids {
		q := r.s.questions[id]
		if f.SubjectID > 0 && q.SubjectID != f.SubjectID {
			continue
		}
		d, ok := r.detail(q)
		if !ok {
			continue
		}
		item := entity.QuestionListItem{QuestionDetail: d}
		var names []string
		for _, tid := range r.s.questionTags[id] {
			if t, ok := r.s.tags[tid]; ok {
				names = append(names, t.Name)
			}
		}
		if len(names) > 0 {
			joined := strings.Join(names, ",")
			item.Tags = &joined
		}
		matched = append(matched, item)
	}

	if f.Offset >= len(matched) {
		return []entity.QuestionListItem{}, nil
	}
	end := f.Offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[f.Offset:end], nil
}

func (r *QuestionRepository) GetByID(_ context.Context, id int64) (*entity.QuestionDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	q, ok := r.s.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d, ok := r.detail(q)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *QuestionRepository) CreateBatch(_ context.Context, qs []entity.Question) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, q := range qs {
		if _, ok := r.s.subjects[q.SubjectID]; !ok {
			return nil, fmt.Errorf("foreign key violation: subject %d does not exist", q.SubjectID)
		}
	}
	ids := make([]int64, len(qs))
	for i, q := range qs {
		r.s.nextID++
		q.ID = r.s.nextID
		r.s.questions[q.ID] = q
		ids[i] = q.ID
	}
	return ids, nil
}

func (r *QuestionRepository) Update(_ context.Context, q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.questions[q.ID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.subjects[q.SubjectID]; !ok {
		return fmt.Errorf("foreign key violation: subject %d does not exist", q.SubjectID)
	}
	r.s.questions[q.ID] = *q
	return nil
}

func (r *QuestionRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.questions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.questions, id)
	delete(r.s.questionTags, id)
	return nil
}

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.SubjectRepository  = (*SubjectRepository)(nil)
	_ repository.QuestionRepository = (*QuestionRepository)(nil)
)
