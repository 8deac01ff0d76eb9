package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/kideo/kideo/internal/error_values"
	"github.com/kideo/kideo/internal/repository"
	"github.com/kideo/kideo/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	usersRepo    repository.UsersRepositoryI
	familiesRepo repository.FamiliesRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, familiesRepo repository.FamiliesRepositoryI) *UserService {
	return &UserService{
		usersRepo:    usersRepo,
		familiesRepo: familiesRepo,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register creates the parent account and its family in one go. A parent
// without a family cannot do anything useful, so both rows appear together.
func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = us.usersRepo.Create(ctx, &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errors.New("user with such name already exists")
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.usersRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	_, err = us.familiesRepo.Create(ctx, &entity.Family{
		OwnerID: user.ID,
		Name:    req.FamilyName,
	})
	if err != nil {
		return nil, errors.New("creating family error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.usersRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errors.New("user with given name not found")
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("login failed: wrong password")
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.usersRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errors.New("user with given id not found")
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.usersRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errors.New("user with given id not found")
		}
		return errors.New("repository searching error: " + err.Error())
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errors.New("deletion failed: wrong password")
	}
	err = us.usersRepo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return errors.New("user with given id not found")
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}
