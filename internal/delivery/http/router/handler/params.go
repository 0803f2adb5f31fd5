// Package handler contains the Echo handlers for the HTTP delivery.
package handler

import (
	"strconv"
	"strings"

	domainerrors "manor/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// parseIDParam parses a required int64 path parameter.
func parseIDParam(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid ID: " + raw)
	}

	return id, nil
}

// parseOptionalInt64 parses an optional int64 query parameter. An empty
// value yields nil.
func parseOptionalInt64(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid integer: " + raw)
	}

	return &v, nil
}

// parseOptionalInt parses an optional int query parameter.
func parseOptionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid integer: " + raw)
	}

	return &v, nil
}

// parseOptionalDecimal parses an optional decimal query parameter.
func parseOptionalDecimal(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid amount: " + raw)
	}

	return &v, nil
}

// parseIDList parses a comma-separated list of int64 IDs. An empty value
// yields nil.
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid ID list: " + raw)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// parseRepeatedIDs parses a repeated query parameter (?key[]=1&key[]=2) into
// int64 IDs. Each value may itself be a comma-separated list.
func parseRepeatedIDs(values []string) ([]int64, error) {
	var ids []int64
	for _, value := range values {
		parsed, err := parseIDList(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed...)
	}

	return ids, nil
}
