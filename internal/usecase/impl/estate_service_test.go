package impl

import (
	"context"
	"testing"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEstateService() (usecase.EstateUsecase, *stubEstateRepo, *stubBlockRepo) {
	estateRepo := &stubEstateRepo{}
	blockRepo := &stubBlockRepo{}

	return NewEstateService(estateRepo, blockRepo), estateRepo, blockRepo
}

func TestEstateService_CreateAndGet(t *testing.T) {
	service, _, _ := createTestEstateService()
	ctx := context.Background()

	created, err := service.CreateEstate(ctx, usecase.CreateEstateInput{
		Name:    "Sunrise Gardens",
		Address: "1 Garden Road",
		Size:    ptr("5 acres"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := service.GetEstate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Gardens", fetched.Name)

	_, err = service.GetEstate(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrEstateNotFound)
}

func TestEstateService_UpdateEstate_PartialFields(t *testing.T) {
	service, estateRepo, _ := createTestEstateService()
	estateRepo.estates = []*entity.Estate{
		{ID: 1, Name: "Sunrise Gardens", Address: "1 Garden Road"},
	}

	updated, err := service.UpdateEstate(context.Background(), 1, usecase.UpdateEstateInput{
		Name: ptr("Sunset Gardens"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunset Gardens", updated.Name)
	assert.Equal(t, "1 Garden Road", updated.Address)
}

func TestEstateService_CreateBlock_UnknownEstate(t *testing.T) {
	service, _, _ := createTestEstateService()

	_, err := service.CreateBlock(context.Background(), usecase.CreateBlockInput{
		EstateID: 99,
		Name:     "Block A",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEstateNotFound)
}

func TestEstateService_ListBlocks_ByEstate(t *testing.T) {
	service, estateRepo, blockRepo := createTestEstateService()
	estateRepo.estates = []*entity.Estate{{ID: 1, Name: "Sunrise Gardens"}}
	blockRepo.blocks = []*entity.Block{
		{ID: 1, EstateID: 1, Name: "Block A"},
		{ID: 2, EstateID: 2, Name: "Block X"},
	}

	all, err := service.ListBlocks(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := service.ListBlocks(context.Background(), ptr(int64(1)))
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "Block A", scoped[0].Name)
}
