package postgres

import (
	"context"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blockRepository implements the repository.BlockRepository interface.
type blockRepository struct {
	db *gorm.DB
}

// NewBlockRepository is the constructor for blockRepository.
func NewBlockRepository(db *gorm.DB) repository.BlockRepository {
	return &blockRepository{
		db: db,
	}
}

// CreateBlock persists a new block.
func (repo *blockRepository) CreateBlock(ctx context.Context, block *entity.Block) error {
	blockM := fromBlockDomain(block)

	if err := repo.db.WithContext(ctx).Create(blockM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEstateNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required block information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create block")
	}

	// Update the entity with generated values
	block.ID = blockM.ID
	block.CreatedAt = blockM.CreatedAt
	block.UpdatedAt = blockM.UpdatedAt

	return nil
}

// FindBlockByID retrieves a block by its unique ID.
func (repo *blockRepository) FindBlockByID(ctx context.Context, id int64) (*entity.Block, error) {
	var blockM model.BlockModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&blockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlockNotFound
		}

		return nil, errors.Wrap(err, "failed to find block by ID")
	}

	return toBlockDomain(&blockM), nil
}

// FindAllBlocks retrieves all blocks ordered by name.
func (repo *blockRepository) FindAllBlocks(ctx context.Context) ([]*entity.Block, error) {
	var blockModels []*model.BlockModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&blockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all blocks")
	}

	return toBlockDomains(blockModels), nil
}

// FindBlocksByEstate retrieves all blocks belonging to an estate.
func (repo *blockRepository) FindBlocksByEstate(ctx context.Context, estateID int64) ([]*entity.Block, error) {
	var blockModels []*model.BlockModel

	if err := repo.db.WithContext(ctx).
		Where("estate_id = ?", estateID).
		Order("name ASC").
		Find(&blockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find blocks by estate")
	}

	return toBlockDomains(blockModels), nil
}

// UpdateBlock persists changes to an existing block.
func (repo *blockRepository) UpdateBlock(ctx context.Context, block *entity.Block) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlockModel{}).
		Where("id = ?", block.ID).
		Updates(map[string]any{
			"name":        block.Name,
			"description": block.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update block")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlockNotFound
	}

	return nil
}

// DeleteBlock removes a block by its ID.
func (repo *blockRepository) DeleteBlock(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlockModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("block still has apartments attached")
		}

		return errors.Wrap(result.Error, "failed to delete block")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlockNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBlockDomain converts a GORM model to a domain entity.
func toBlockDomain(blockM *model.BlockModel) *entity.Block {
	return &entity.Block{
		ID:          blockM.ID,
		EstateID:    blockM.EstateID,
		Name:        blockM.Name,
		Description: blockM.Description,
		CreatedAt:   blockM.CreatedAt,
		UpdatedAt:   blockM.UpdatedAt,
	}
}

func toBlockDomains(blockModels []*model.BlockModel) []*entity.Block {
	blocks := make([]*entity.Block, 0, len(blockModels))
	for _, blockM := range blockModels {
		blocks = append(blocks, toBlockDomain(blockM))
	}

	return blocks
}

// fromBlockDomain converts a domain entity to a GORM model.
func fromBlockDomain(block *entity.Block) *model.BlockModel {
	return &model.BlockModel{
		ID:          block.ID,
		EstateID:    block.EstateID,
		Name:        block.Name,
		Description: block.Description,
		CreatedAt:   block.CreatedAt,
		UpdatedAt:   block.UpdatedAt,
	}
}
