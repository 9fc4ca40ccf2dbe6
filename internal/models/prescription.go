package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pocketpilot/backend/internal/engine"
	"github.com/pocketpilot/backend/internal/types"
	"gorm.io/gorm"
)

// Prescription stores one engine result. The engine itself persists nothing;
// the host keeps the full document for the presentation and notification
// layers plus a few indexed columns for lookups.
//
// Refreshing a prescription replaces the document with a new engine value
// built via copy-with-overrides; the stored document is never edited in
// place.
type Prescription struct {
	DefaultModel
	UserID   uuid.UUID   `json:"userId" gorm:"index"`
	Month    types.Month `json:"month" gorm:"index"`
	Document string      `json:"document"` // the engine output as JSON
}

// BeforeCreate keeps the engine-derived ID. A new one is only generated when
// a prescription is stored without a document, which tests do.
func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		return p.DefaultModel.BeforeCreate(tx)
	}

	return nil
}

// NewPrescription wraps an engine result for storage.
func NewPrescription(userID uuid.UUID, prescription engine.BudgetPrescription) (Prescription, error) {
	document, err := json.Marshal(prescription)
	if err != nil {
		return Prescription{}, fmt.Errorf("encoding prescription: %w", err)
	}

	return Prescription{
		DefaultModel: DefaultModel{ID: prescription.ID},
		UserID:       userID,
		Month:        prescription.Month,
		Document:     string(document),
	}, nil
}

// Prescription decodes the stored document. Legacy documents without a data
// source decision decode with the documented fallback values.
func (p Prescription) Prescription() (engine.BudgetPrescription, error) {
	var prescription engine.BudgetPrescription
	if err := json.Unmarshal([]byte(p.Document), &prescription); err != nil {
		return engine.BudgetPrescription{}, fmt.Errorf("decoding prescription %s: %w", p.ID, err)
	}

	return prescription, nil
}
