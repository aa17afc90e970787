package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Transaction errors
	ErrTransactionDescriptionEmpty = errors.New("the description of a transaction must not be empty")
	ErrTransactionDateZero         = errors.New("the date of a transaction must be set")

	// PersonMapping errors
	ErrPersonMappingNameEmpty    = errors.New("the person name of a mapping must not be empty")
	ErrPersonMappingKeywordEmpty = errors.New("the keyword of a mapping must not be empty")
	ErrPersonMappingExists       = errors.New("a mapping with this person name and keyword already exists")
)
