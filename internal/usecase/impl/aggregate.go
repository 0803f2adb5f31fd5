// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"math"

	"manor/internal/domain/entity"
	"manor/internal/domain/repository"
	"manor/internal/errors"

	"github.com/shopspring/decimal"
)

// round2 rounds to two decimal places, the precision used across all report
// figures.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentage returns part/total as a percentage rounded to two decimals.
// A zero total yields 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return round2(float64(part) / float64(total) * 100)
}

// decimalPercentage is percentage over decimal amounts.
func decimalPercentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}

	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// money converts a decimal amount to the float representation used in report
// payloads.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// locationIndex resolves the apartment -> block -> estate chain in memory so
// aggregations can attribute tenants, payments and complaints to estates
// without per-row queries.
type locationIndex struct {
	estates    map[int64]*entity.Estate
	blocks     map[int64]*entity.Block
	apartments map[int64]*entity.Apartment
}

// loadLocationIndex fetches all estates, blocks and apartments and builds the
// lookup maps.
func loadLocationIndex(
	ctx context.Context,
	estateRepo repository.EstateRepository,
	blockRepo repository.BlockRepository,
	apartmentRepo repository.ApartmentRepository,
) (*locationIndex, error) {
	estates, err := estateRepo.FindAllEstates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all estates")
	}

	blocks, err := blockRepo.FindAllBlocks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all blocks")
	}

	apartments, err := apartmentRepo.FindAllApartments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all apartments")
	}

	return newLocationIndex(estates, blocks, apartments), nil
}

func newLocationIndex(estates []*entity.Estate, blocks []*entity.Block, apartments []*entity.Apartment) *locationIndex {
	index := &locationIndex{
		estates:    make(map[int64]*entity.Estate, len(estates)),
		blocks:     make(map[int64]*entity.Block, len(blocks)),
		apartments: make(map[int64]*entity.Apartment, len(apartments)),
	}

	for _, estate := range estates {
		index.estates[estate.ID] = estate
	}
	for _, block := range blocks {
		index.blocks[block.ID] = block
	}
	for _, apartment := range apartments {
		index.apartments[apartment.ID] = apartment
	}

	return index
}

// blockOf returns the block an apartment belongs to, or nil when unknown.
func (ix *locationIndex) blockOf(apartmentID int64) *entity.Block {
	apartment, ok := ix.apartments[apartmentID]
	if !ok {
		return nil
	}

	return ix.blocks[apartment.BlockID]
}

// estateOf returns the estate an apartment belongs to, or nil when unknown.
func (ix *locationIndex) estateOf(apartmentID int64) *entity.Estate {
	block := ix.blockOf(apartmentID)
	if block == nil {
		return nil
	}

	return ix.estates[block.EstateID]
}

// apartmentLabel renders an apartment reference for alert payloads,
// e.g. "Block A 12". Unknown apartments render as "N/A".
func (ix *locationIndex) apartmentLabel(apartmentID *int64) string {
	if apartmentID == nil {
		return "N/A"
	}

	apartment, ok := ix.apartments[*apartmentID]
	if !ok {
		return "N/A"
	}

	if block := ix.blocks[apartment.BlockID]; block != nil {
		return block.Name + " " + apartment.Number
	}

	return apartment.Number
}

// estateLabel renders the estate name for alert payloads, or "N/A" when the
// chain cannot be resolved.
func (ix *locationIndex) estateLabel(apartmentID *int64) string {
	if apartmentID == nil {
		return "N/A"
	}

	estate := ix.estateOf(*apartmentID)
	if estate == nil {
		return "N/A"
	}

	return estate.Name
}
