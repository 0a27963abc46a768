package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"menubyte/internal/domain"
)

// UserService manages owner accounts. Every business, menu and subscription
// hangs off a user row, so signup is the first call of the onboarding flow.
type UserService struct {
	store Store
	tx    TxRunner
}

func NewUserService(store Store, tx TxRunner) *UserService {
	return &UserService{store: store, tx: tx}
}

// CreateUser registers a new owner. Email and mobile number must both be
// unused; the unique indexes on users back the in-transaction checks against
// concurrent signups.
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}

	err := s.tx.InTx(ctx, func(store Store) error {
		if _, err := store.FindUserByEmail(user.Email); err == nil {
			return fmt.Errorf("%w: a user with email %q already exists", domain.ErrConflict, user.Email)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if user.MobileNumber != "" {
			if _, err := store.FindUserByMobileNumber(user.MobileNumber); err == nil {
				return fmt.Errorf("%w: a user with mobile %q already exists", domain.ErrConflict, user.MobileNumber)
			} else if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}
		if err := store.InsertUser(user); err != nil {
			if errors.Is(err, domain.ErrUniqueViolation) {
				return fmt.Errorf("%w: user %q already exists", domain.ErrConflict, user.Email)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[menubyte] user %d (%s) signed up", user.ID, user.Email)
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.store.GetUser(id)
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, user *domain.User) (*domain.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}

	var updated *domain.User
	err := s.tx.InTx(ctx, func(store Store) error {
		existing, err := store.GetUser(id)
		if err != nil {
			return err
		}
		existing.Username = user.Username
		existing.Email = user.Email
		existing.MobileNumber = user.MobileNumber
		if err := store.UpdateUser(existing); err != nil {
			if errors.Is(err, domain.ErrUniqueViolation) {
				return fmt.Errorf("%w: email or mobile already taken", domain.ErrConflict)
			}
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes the account; businesses, menus, catalog rows and
// subscriptions follow via the cascades.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, func(store Store) error {
		if _, err := store.GetUser(id); err != nil {
			return err
		}
		_, err := store.DeleteUser(id)
		return err
	})
	if err != nil {
		return err
	}

	log.Printf("[menubyte] user %d deleted", id)
	return nil
}

func validateUser(user *domain.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return fmt.Errorf("%w: username cannot be empty", domain.ErrValidation)
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", domain.ErrValidation)
	}
	return nil
}

var _ UserServiceInterface = (*UserService)(nil)
