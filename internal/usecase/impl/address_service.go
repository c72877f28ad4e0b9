package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"petverse/config"
	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"
	"petverse/internal/retry"
	"petverse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const addressRetryDelay = 20 * time.Millisecond

type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	writePolicy retry.Policy
	logger      *slog.Logger
	now         func() time.Time
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService creates a new address book service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		writePolicy: retry.Policy{
			MaxAttempts: params.Config.Storage.AddressWriteAttempts,
			Delay:       addressRetryDelay,
			Retryable: func(err error) bool {
				return errors.Is(err, repository.ErrVersionConflict)
			},
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the user's addresses in creation order
func (srv *addressService) ListAddresses(ctx context.Context, userID string) ([]*entity.Address, error) {
	book, err := srv.loadBook(ctx, userID)
	if err != nil {
		return nil, err
	}

	return book.Addresses(), nil
}

// GetDefaultAddress returns the user's default address
func (srv *addressService) GetDefaultAddress(ctx context.Context, userID string) (*entity.Address, error) {
	book, err := srv.loadBook(ctx, userID)
	if err != nil {
		return nil, err
	}

	addr, ok := book.Default()
	if !ok {
		return nil, domainerrors.ErrAddressNotFound.WithDetails("user has no default address")
	}

	return addr, nil
}

// AddAddress validates the input and appends it to the user's book
func (srv *addressService) AddAddress(ctx context.Context, userID string, input *usecase.AddressInput, makeDefault bool) (*entity.Address, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	addressType := input.AddressType
	if addressType == "" {
		addressType = entity.AddressTypeHome
	}
	if !addressType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("addressType must be home, work or other")
	}

	candidate := &entity.Address{
		UserID:       userID,
		AddressID:    uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Email:        strings.TrimSpace(input.Email),
		AddressLine1: strings.TrimSpace(input.AddressLine1),
		AddressLine2: strings.TrimSpace(input.AddressLine2),
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		AddressType:  addressType,
	}
	if missing := candidate.MissingFields(); len(missing) > 0 {
		return nil, missingFieldsError(missing)
	}

	var added *entity.Address
	err := srv.mutate(ctx, userID, func(book *entity.AddressBook, now time.Time) error {
		var err error
		added, err = book.Add(candidate, makeDefault, now)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Address added",
		slog.String("user_id", userID),
		slog.String("address_id", added.AddressID),
		slog.Bool("is_default", added.IsDefault),
	)

	return added, nil
}

// UpdateAddress merges the patch into one address
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID string, patch *entity.AddressPatch) (*entity.Address, error) {
	if err := requireIDs(userID, addressID); err != nil {
		return nil, err
	}
	if patch == nil {
		patch = &entity.AddressPatch{}
	}
	if patch.AddressType != nil && !patch.AddressType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("addressType must be home, work or other")
	}

	var updated *entity.Address
	err := srv.mutate(ctx, userID, func(book *entity.AddressBook, now time.Time) error {
		var err error
		updated, err = book.Update(addressID, *patch, now)
		if err != nil {
			return err
		}
		if missing := updated.MissingFields(); len(missing) > 0 {
			return missingFieldsError(missing)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveAddress deletes the address and promotes a new default when needed
func (srv *addressService) RemoveAddress(ctx context.Context, userID, addressID string) error {
	if err := requireIDs(userID, addressID); err != nil {
		return err
	}

	err := srv.mutate(ctx, userID, func(book *entity.AddressBook, now time.Time) error {
		return book.Remove(addressID, now)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Address removed", slog.String("user_id", userID), slog.String("address_id", addressID))

	return nil
}

// SetDefaultAddress moves the default flag onto the address
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID string) (*entity.Address, error) {
	if err := requireIDs(userID, addressID); err != nil {
		return nil, err
	}

	var target *entity.Address
	err := srv.mutate(ctx, userID, func(book *entity.AddressBook, now time.Time) error {
		if err := book.SetDefault(addressID, now); err != nil {
			return err
		}
		target, _ = book.Find(addressID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return target, nil
}

// mutate loads the book, applies fn and saves the result in one transaction.
// A concurrent save of the same book makes SaveBook fail with a version conflict,
// in which case the whole load-apply-save cycle runs again on fresh data.
func (srv *addressService) mutate(ctx context.Context, userID string, fn func(book *entity.AddressBook, now time.Time) error) error {
	err := srv.writePolicy.Do(ctx, func(ctx context.Context, attempt int) error {
		if attempt > 1 {
			srv.log(ctx).Debug("Retrying address book write",
				slog.String("user_id", userID),
				slog.Int("attempt", attempt),
			)
		}

		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			repo := repoFactory.NewAddressRepository()

			book, err := repo.LoadBook(ctx, userID)
			if err != nil {
				return err
			}
			if err := fn(book, srv.now()); err != nil {
				return err
			}
			if !book.HasChanges() {
				return nil
			}

			return repo.SaveBook(ctx, book)
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			srv.log(ctx).Warn("Address book write kept conflicting",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}

		return addressStoreError(err)
	}

	return nil
}

func (srv *addressService) loadBook(ctx context.Context, userID string) (*entity.AddressBook, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}

	book, err := srv.addressRepo.LoadBook(ctx, userID)
	if err != nil {
		return nil, addressStoreError(err)
	}

	return book, nil
}

func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	return nil
}

func requireIDs(userID, addressID string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	if strings.TrimSpace(addressID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("addressId is required")
	}

	return nil
}

func addressStoreError(err error) error {
	mapped := toAppError(err)

	var appErr domainerrors.AppError
	if errors.As(mapped, &appErr) {
		return mapped
	}

	return domainerrors.NewStoreUnavailableError(err, "address book store failed")
}
