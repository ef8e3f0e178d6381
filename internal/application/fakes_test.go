package application

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blogora/blogora/internal/domain/entity"
	"github.com/blogora/blogora/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// -------- in-memory repository fakes --------

type memUsers struct {
	mu   sync.Mutex
	byID map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]*entity.User{}}
}

func (m *memUsers) Create(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	if u.ProfilePhoto.URL == "" {
		u.ProfilePhoto.URL = entity.DefaultProfilePhotoURL
	}
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) Update(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Username = u.Username
	stored.Password = u.Password
	stored.Bio = u.Bio
	return nil
}

func (m *memUsers) UpdateProfilePhoto(ctx context.Context, id string, img entity.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	stored.ProfilePhoto = img
	return nil
}

func (m *memUsers) List(ctx context.Context) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUsers) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

func (m *memUsers) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memTokens struct {
	mu    sync.Mutex
	byUID map[string]*entity.VerificationToken
	users *memUsers
}

func newMemTokens(users *memUsers) *memTokens {
	return &memTokens{byUID: map[string]*entity.VerificationToken{}, users: users}
}

func (m *memTokens) Issue(ctx context.Context, userID, secret string) (*entity.VerificationToken, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.byUID[userID]; ok {
		cp := *t
		return &cp, false, nil
	}
	t := &entity.VerificationToken{UserID: userID, Secret: secret}
	m.byUID[userID] = t
	cp := *t
	return &cp, true, nil
}

func (m *memTokens) Exists(ctx context.Context, userID, secret string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byUID[userID]
	return ok && t.Secret == secret, nil
}

func (m *memTokens) ConsumeForVerification(ctx context.Context, userID, secret string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byUID[userID]
	if !ok || t.Secret != secret {
		return repository.ErrNotFound
	}
	delete(m.byUID, userID)
	m.users.mu.Lock()
	defer m.users.mu.Unlock()
	if u, ok := m.users.byID[userID]; ok {
		u.IsVerified = true
	}
	return nil
}

func (m *memTokens) ConsumeForPasswordReset(ctx context.Context, userID, secret, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.byUID[userID]
	if !ok || t.Secret != secret {
		return repository.ErrNotFound
	}
	delete(m.byUID, userID)
	m.users.mu.Lock()
	defer m.users.mu.Unlock()
	if u, ok := m.users.byID[userID]; ok {
		u.Password = passwordHash
		u.IsVerified = u.IsVerified || !u.IsAdmin
	}
	return nil
}

type memPosts struct {
	mu   sync.Mutex
	byID map[string]*entity.Post
	seq  int
}

func newMemPosts() *memPosts {
	return &memPosts{byID: map[string]*entity.Post{}}
}

func (m *memPosts) Create(ctx context.Context, p *entity.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	p.ID = fmt.Sprintf("post-%04d", m.seq)
	if p.Likes == nil {
		p.Likes = []string{}
	}
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memPosts) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	cp.Likes = append([]string(nil), p.Likes...)
	return &cp, nil
}

func (m *memPosts) List(ctx context.Context, q repository.PostQuery) ([]*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Post, 0, len(m.byID))
	for _, p := range m.byID {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if q.Page > 0 && q.PerPage > 0 {
		start := (q.Page - 1) * q.PerPage
		if start >= len(out) {
			return []*entity.Post{}, nil
		}
		end := start + q.PerPage
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, nil
}

func (m *memPosts) ListByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Post{}
	for _, p := range m.byID {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memPosts) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

func (m *memPosts) Update(ctx context.Context, p *entity.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Title = p.Title
	stored.Description = p.Description
	stored.Category = p.Category
	return nil
}

func (m *memPosts) UpdateImage(ctx context.Context, id string, img entity.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Image = img
	return nil
}

func (m *memPosts) ToggleLike(ctx context.Context, id, accountID string) (*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := false
	next := stored.Likes[:0]
	for _, l := range stored.Likes {
		if l == accountID {
			found = true
			continue
		}
		next = append(next, l)
	}
	if !found {
		next = append(next, accountID)
	}
	stored.Likes = next
	cp := *stored
	cp.Likes = append([]string(nil), stored.Likes...)
	return &cp, nil
}

func (m *memPosts) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memPosts) DeleteByUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.byID {
		if p.UserID == userID {
			delete(m.byID, id)
		}
	}
	return nil
}

type memComments struct {
	mu   sync.Mutex
	byID map[string]*entity.Comment
	seq  int
}

func newMemComments() *memComments {
	return &memComments{byID: map[string]*entity.Comment{}}
}

func (m *memComments) Create(ctx context.Context, c *entity.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	c.ID = fmt.Sprintf("comment-%04d", m.seq)
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memComments) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memComments) List(ctx context.Context) ([]*entity.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Comment, 0, len(m.byID))
	for _, c := range m.byID {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memComments) ListByPost(ctx context.Context, postID string) ([]*entity.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Comment{}
	for _, c := range m.byID {
		if c.PostID == postID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memComments) Update(ctx context.Context, c *entity.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Text = c.Text
	return nil
}

func (m *memComments) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memComments) DeleteByUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, c := range m.byID {
		if c.UserID == userID {
			delete(m.byID, id)
		}
	}
	return nil
}

type memCategories struct {
	mu   sync.Mutex
	byID map[string]*entity.Category
	seq  int
}

func newMemCategories() *memCategories {
	return &memCategories{byID: map[string]*entity.Category{}}
}

func (m *memCategories) Create(ctx context.Context, cat *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	cat.ID = fmt.Sprintf("cat-%04d", m.seq)
	cp := *cat
	m.byID[cat.ID] = &cp
	return nil
}

func (m *memCategories) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) List(ctx context.Context) ([]*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Category, 0, len(m.byID))
	for _, c := range m.byID {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCategories) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// -------- port fakes --------

type fakeBlobs struct {
	mu        sync.Mutex
	stored    map[string]bool
	removed   []string
	uploadErr error
	removeErr error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{stored: map[string]bool{}}
}

func (f *fakeBlobs) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored[objectPath] = true
	return "https://blobs.test/" + objectPath, nil
}

func (f *fakeBlobs) Remove(ctx context.Context, objectPath string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, objectPath)
	f.removed = append(f.removed, objectPath)
	return nil
}

func (f *fakeBlobs) RemoveMany(ctx context.Context, objectPaths []string) error {
	for _, p := range objectPaths {
		if err := f.Remove(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

type sentMail struct {
	To      string
	Subject string
	HTML    string
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, HTML: html})
	return nil
}

var (
	_ repository.UserRepository     = (*memUsers)(nil)
	_ repository.TokenRepository    = (*memTokens)(nil)
	_ repository.PostRepository     = (*memPosts)(nil)
	_ repository.CommentRepository  = (*memComments)(nil)
	_ repository.CategoryRepository = (*memCategories)(nil)
	_ BlobStore                     = (*fakeBlobs)(nil)
	_ EmailSender                   = (*fakeMailer)(nil)
)
