package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// PersonMapping attributes transactions to a contributor: a transaction
// whose description contains Keyword (case-insensitive) is considered a
// contribution by PersonName.
type PersonMapping struct {
	DefaultModel
	PersonName string `json:"personName" example:"Alice"` // Name of the contributor
	Keyword    string `json:"keyword" example:"rent"`     // Substring to look for in transaction descriptions
}

// BeforeSave trims and validates the mapping.
func (p *PersonMapping) BeforeSave(_ *gorm.DB) error {
	p.PersonName = strings.TrimSpace(p.PersonName)
	p.Keyword = strings.TrimSpace(p.Keyword)

	if p.PersonName == "" {
		return ErrPersonMappingNameEmpty
	}

	if p.Keyword == "" {
		return ErrPersonMappingKeywordEmpty
	}

	return nil
}

// BeforeCreate enforces case-insensitive uniqueness of
// (personName, keyword).
func (p *PersonMapping) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	var count int64
	err := tx.Model(&PersonMapping{}).
		Where("LOWER(person_name) = ? AND LOWER(keyword) = ?",
			strings.ToLower(strings.TrimSpace(p.PersonName)),
			strings.ToLower(strings.TrimSpace(p.Keyword))).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrPersonMappingExists
	}

	return nil
}

func (PersonMapping) Export() (json.RawMessage, error) {
	var mappings []PersonMapping
	err := DB.Unscoped().Where(&PersonMapping{}).Find(&mappings).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(mappings)
}
