package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

type userRepo struct {
	c   *collection[model.User]
	now func() time.Time
}

var _ repository.UserRepository = (*userRepo)(nil)

// Create stores a new user. ID and CreatedAt are store-assigned; IsVerified
// starts false regardless of input.
func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	out := *user
	out.ID = uuid.NewString()
	out.CreatedAt = r.now()
	out.IsVerified = false
	r.c.insert(out.ID, out)
	return &out, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	for _, u := range r.c.list() {
		if u.Phone == phone {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) Update(ctx context.Context, id string, upd repository.UserUpdate) (*model.User, error) {
	u, ok := r.c.mutate(id, func(u model.User) model.User {
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.IsVerified != nil {
			u.IsVerified = *upd.IsVerified
		}
		return u
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(id), nil
}
