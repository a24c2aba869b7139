package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/go-playground/validator/v10"
)

// loadLedger reads a JSON ledger file ({"business": ..., "transactions": [...]})
// and checks it with the same binding rules the HTTP API applies.
func loadLedger(path string, validate *validator.Validate) (dto.LedgerRequest, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return dto.LedgerRequest{}, fmt.Errorf("%w: ledger %s", apperrors.ErrNotFound, path)
	}
	if err != nil {
		return dto.LedgerRequest{}, fmt.Errorf("failed to read ledger: %w", err)
	}

	var ledger dto.LedgerRequest
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return dto.LedgerRequest{}, fmt.Errorf("%w: %s is not a valid ledger file: %s", apperrors.ErrValidation, path, err.Error())
	}
	if err := validate.Struct(ledger); err != nil {
		return dto.LedgerRequest{}, fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, path, err.Error())
	}
	return ledger, nil
}
