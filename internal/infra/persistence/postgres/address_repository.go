// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"slices"
	"time"

	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"
	"petverse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// LoadBook reads the version row with FOR UPDATE, so inside a transaction a
// concurrent writer for the same user waits until this one commits.
func (repo *addressRepository) LoadBook(ctx context.Context, userID string) (*entity.AddressBook, error) {
	db := repo.db.WithContext(ctx)

	var bookM model.AddressBookModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Take(&bookM).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.translate(err, "failed to lock address book")
	}

	var addressModels []*model.AddressModel
	if err := db.Where("user_id = ?", userID).
		Order("created_at ASC, address_id ASC").
		Find(&addressModels).Error; err != nil {
		return nil, repo.translate(err, "failed to load addresses")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return entity.NewAddressBook(userID, bookM.Version, addresses), nil
}

// SaveBook bumps the version with a compare-and-set and writes the changed rows
// in the same transaction. Rows that lose the default flag are written first so
// the one-default index never sees two defaults.
func (repo *addressRepository) SaveBook(ctx context.Context, book *entity.AddressBook) error {
	upserts, deletes := book.Changes()
	slices.SortStableFunc(upserts, func(a, b *entity.Address) int {
		switch {
		case a.IsDefault == b.IsDefault:
			return 0
		case !a.IsDefault:
			return -1
		default:
			return 1
		}
	})

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := bumpBookVersion(tx, book.UserID, book.Version); err != nil {
			return err
		}

		if len(deletes) > 0 {
			if err := tx.Where("user_id = ? AND address_id IN ?", book.UserID, deletes).
				Delete(&model.AddressModel{}).Error; err != nil {
				return errors.Wrap(err, "failed to delete addresses")
			}
		}

		for _, addr := range upserts {
			addressM := fromAddressDomain(addr)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "address_id"}},
				UpdateAll: true,
			}).Create(addressM).Error; err != nil {
				return errors.Wrapf(err, "failed to write address %s", addr.AddressID)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return err
		}

		return repo.translate(err, "failed to save address book")
	}

	book.Version++

	return nil
}

func bumpBookVersion(tx *gorm.DB, userID string, expected int64) error {
	now := time.Now()
	if expected == 0 {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.AddressBookModel{UserID: userID, Version: 1, UpdatedAt: now})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to create address book")
		}
		if result.RowsAffected == 0 {
			return errors.Wrapf(repository.ErrVersionConflict, "address book of %s was created concurrently", userID)
		}

		return nil
	}

	result := tx.Model(&model.AddressBookModel{}).
		Where("user_id = ? AND version = ?", userID, expected).
		Updates(map[string]any{
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to bump address book version")
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrVersionConflict, "address book of %s moved past version %d", userID, expected)
	}

	return nil
}

func (repo *addressRepository) translate(err error, details string) error {
	if isContention(err) || isUniqueConstraintViolation(err) {
		return errors.Wrap(repository.ErrVersionConflict, err.Error())
	}

	return domainerrors.NewStoreUnavailableError(err, details)
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		UserID:       data.UserID,
		AddressID:    data.AddressID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		AddressType:  entity.AddressType(data.AddressType),
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		UserID:       data.UserID,
		AddressID:    data.AddressID,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		AddressType:  string(data.AddressType),
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
