package postgres

import (
	"context"

	"petverse/internal/domain/entity"
	domainerrors "petverse/internal/domain/errors"
	"petverse/internal/domain/repository"
	"petverse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// intentRepository implements the domain.IntentRepository interface.
type intentRepository struct {
	db *gorm.DB
}

// NewIntentRepository is the constructor for intentRepository.
func NewIntentRepository(db *gorm.DB) repository.IntentRepository {
	return &intentRepository{db: db}
}

// SaveIntent upserts the intent on its gateway order id.
func (repo *intentRepository) SaveIntent(ctx context.Context, intent *entity.GatewayIntent) error {
	intentM := &model.GatewayIntentModel{
		GatewayOrderID:   intent.GatewayOrderID,
		AmountMinorUnits: intent.AmountMinorUnits,
		Currency:         intent.Currency,
		ReceiptID:        intent.ReceiptID,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "gateway_order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount_minor_units", "currency", "receipt_id"}),
	}).Create(intentM).Error
	if err != nil {
		return domainerrors.NewStoreUnavailableError(err, "failed to save gateway intent")
	}

	return nil
}

// FindIntent retrieves the intent recorded for a gateway order id.
func (repo *intentRepository) FindIntent(ctx context.Context, gatewayOrderID string) (*entity.GatewayIntent, error) {
	var intentM model.GatewayIntentModel
	if err := repo.db.WithContext(ctx).Where("gateway_order_id = ?", gatewayOrderID).Take(&intentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrIntentNotFound)
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find gateway intent")
	}

	return &entity.GatewayIntent{
		GatewayOrderID:   intentM.GatewayOrderID,
		AmountMinorUnits: intentM.AmountMinorUnits,
		Currency:         intentM.Currency,
		ReceiptID:        intentM.ReceiptID,
	}, nil
}
