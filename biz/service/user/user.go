package user

import (
	"context"

	"moodmate/be/biz/model/domain"
	"moodmate/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt rejects longer passwords; the limit is bytes, not characters.
const maxPasswordBytes = 72

type userStore interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByPublicID(ctx context.Context, publicID string) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	CountAdmins(ctx context.Context) (int64, error)
	Promote(ctx context.Context, publicID string) (bool, error)
	DeleteByPublicID(ctx context.Context, publicID string) (bool, error)
}

type Service struct {
	users userStore
	cost  int
}

func New(users userStore) *Service {
	return &Service{users: users, cost: bcrypt.DefaultCost}
}

// Login checks name and password. Unknown names and wrong passwords are
// reported identically.
func (s *Service) Login(ctx context.Context, name, password string) (*domain.User, errs.Error) {
	u, err := s.users.FindByName(ctx, name)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by name err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.LoginFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errs.LoginFailed
	}
	return u, nil
}

// Create registers a standard user.
func (s *Service) Create(ctx context.Context, name, password string) (*domain.User, errs.Error) {
	return s.create(ctx, name, password, false)
}

func (s *Service) create(ctx context.Context, name, password string, admin bool) (*domain.User, errs.Error) {
	if len(password) > maxPasswordBytes {
		return nil, errs.ParamError.SetMsg("password exceeds 72 bytes")
	}

	existing, err := s.users.FindByName(ctx, name)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by name err: %v", err)
		return nil, errs.ServerError
	}
	if existing != nil {
		return nil, errs.UserNameDuplicated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		hlog.CtxErrorf(ctx, "hash password err: %v", err)
		return nil, errs.ServerError
	}

	u, err := s.users.Create(ctx, &domain.User{
		PublicID:     uuid.NewString(),
		Name:         name,
		PasswordHash: string(hash),
		Admin:        admin,
	})
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.UserNameDuplicated
		}
		hlog.CtxErrorf(ctx, "create user err: %v", err)
		return nil, errs.ServerError
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.User, errs.Error) {
	users, err := s.users.List(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "list users err: %v", err)
		return nil, errs.ServerError
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, publicID string) (*domain.User, errs.Error) {
	u, err := s.users.FindByPublicID(ctx, publicID)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user %s err: %v", publicID, err)
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotFound
	}
	return u, nil
}

func (s *Service) Promote(ctx context.Context, publicID string) errs.Error {
	ok, err := s.users.Promote(ctx, publicID)
	if err != nil {
		hlog.CtxErrorf(ctx, "promote user %s err: %v", publicID, err)
		return errs.ServerError
	}
	if !ok {
		return errs.UserNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, publicID string) errs.Error {
	ok, err := s.users.DeleteByPublicID(ctx, publicID)
	if err != nil {
		hlog.CtxErrorf(ctx, "delete user %s err: %v", publicID, err)
		return errs.ServerError
	}
	if !ok {
		return errs.UserNotFound
	}
	return nil
}

// EnsureAdmin seeds an administrator when none exists yet. An existing user
// with the given name is promoted instead of recreated.
func (s *Service) EnsureAdmin(ctx context.Context, name, password string) errs.Error {
	if name == "" || password == "" {
		return nil
	}

	n, err := s.users.CountAdmins(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "count admins err: %v", err)
		return errs.ServerError
	}
	if n > 0 {
		return nil
	}

	existing, err := s.users.FindByName(ctx, name)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user by name err: %v", err)
		return errs.ServerError
	}
	if existing != nil {
		hlog.CtxInfof(ctx, "promoting %s to bootstrap admin", name)
		return s.Promote(ctx, existing.PublicID)
	}

	if _, bizErr := s.create(ctx, name, password, true); bizErr != nil {
		return bizErr
	}
	hlog.CtxInfof(ctx, "bootstrap admin %s created", name)
	return nil
}
