package handlers

import (
	"context"
	"strings"
	"sync"

	"github.com/anonto42/picture-pink/backend/internal/models"
	"github.com/anonto42/picture-pink/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeNotifier records emitted events for assertions
type fakeNotifier struct {
	mu     sync.Mutex
	events []struct {
		Name string
		Data interface{}
	}
}

func (n *fakeNotifier) Emit(event string, data interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, struct {
		Name string
		Data interface{}
	}{event, data})
}

func (n *fakeNotifier) names() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	names := make([]string, len(n.events))
	for i, ev := range n.events {
		names[i] = ev.Name
	}
	return names
}

func (n *fakeNotifier) last() (string, interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.events) == 0 {
		return "", nil
	}
	ev := n.events[len(n.events)-1]
	return ev.Name, ev.Data
}

// memUserRepo is an in-memory UserRepository
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by hex id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (r *memUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = primitive.NewObjectID()
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memUserRepo) GetUserByEmailInsensitive(_ context.Context, email string, excludeID *primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if excludeID != nil && user.ID == *excludeID {
			continue
		}
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memUserRepo) GetUsers(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *memUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

func (r *memUserRepo) DeleteUser(_ context.Context, id string) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(r.users, id)
	return &user, nil
}

// memPostRepo is an in-memory PostRepository
type memPostRepo struct {
	mu    sync.Mutex
	posts map[string]models.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[string]models.Post)}
}

func (r *memPostRepo) CreatePost(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = primitive.NewObjectID()
	if post.Status == "" {
		post.Status = models.StatusActive
	}
	if post.Approve == "" {
		post.Approve = models.ApprovePending
	}
	r.posts[post.ID.Hex()] = *post
	return nil
}

func (r *memPostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &post, nil
}

func (r *memPostRepo) GetPosts(_ context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := make([]models.Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *memPostRepo) GetPostsByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var posts []models.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *memPostRepo) UpdatePost(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	r.posts[post.ID.Hex()] = *post
	return nil
}

func (r *memPostRepo) DeletePost(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repositories.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

// memSaveRepo is an in-memory SaveRepository
type memSaveRepo struct {
	mu    sync.Mutex
	saves []models.Save
}

func newMemSaveRepo() *memSaveRepo {
	return &memSaveRepo{}
}

func (r *memSaveRepo) CreateSave(_ context.Context, save *models.Save) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	save.ID = primitive.NewObjectID()
	r.saves = append(r.saves, *save)
	return nil
}

func (r *memSaveRepo) GetSavesByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Save, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var saves []models.Save
	for _, save := range r.saves {
		if save.UserID == userID {
			saves = append(saves, save)
		}
	}
	return saves, nil
}

func (r *memSaveRepo) DeleteSaveByUserAndPost(_ context.Context, userID, postID primitive.ObjectID) (*models.Save, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, save := range r.saves {
		if save.UserID == userID && save.PostID == postID {
			r.saves = append(r.saves[:i], r.saves[i+1:]...)
			return &save, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// memContactRepo is an in-memory ContactRepository
type memContactRepo struct {
	mu       sync.Mutex
	contacts map[string]models.Contact
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{contacts: make(map[string]models.Contact)}
}

func (r *memContactRepo) CreateContact(_ context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	contact.ID = primitive.NewObjectID()
	r.contacts[contact.ID.Hex()] = *contact
	return nil
}

func (r *memContactRepo) GetContacts(_ context.Context) ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	contacts := make([]models.Contact, 0, len(r.contacts))
	for _, contact := range r.contacts {
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

func (r *memContactRepo) DeleteContact(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repositories.ErrInvalidID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}
