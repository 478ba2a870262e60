package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Zone/catalog errors
	ErrMsgZoneNotFound = "zone not found"
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Farm errors
	ErrMsgPlantNotFound           = "plant not found"
	ErrMsgAnimalNotFound          = "animal not found"
	ErrMsgProductionNotFound      = "production not found"
	ErrMsgChainNotFound           = "production chain not found"
	ErrMsgNotReady                = "not ready for collection"
	ErrMsgSlotOccupied            = "slot is already occupied"
	ErrMsgItemLocked              = "item is locked"
	ErrMsgInsufficientIngredients = "insufficient ingredients"

	// Pet errors
	ErrMsgPetNotFound      = "pet not found"
	ErrMsgPetAlreadyExists = "a pet already exists"
	ErrMsgPetRanAway       = "pet has run away"

	// Task errors
	ErrMsgTaskNotFound       = "task not found"
	ErrMsgSubmissionNotFound = "submission not found"
	ErrMsgAlreadySubmitted   = "task already submitted"
	ErrMsgNotTeacher         = "caller is not a teacher"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Zone/catalog errors
	ErrZoneNotFound = errors.New(ErrMsgZoneNotFound)
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	// Farm errors
	ErrPlantNotFound           = errors.New(ErrMsgPlantNotFound)
	ErrAnimalNotFound          = errors.New(ErrMsgAnimalNotFound)
	ErrProductionNotFound      = errors.New(ErrMsgProductionNotFound)
	ErrChainNotFound           = errors.New(ErrMsgChainNotFound)
	ErrNotReady                = errors.New(ErrMsgNotReady)
	ErrSlotOccupied            = errors.New(ErrMsgSlotOccupied)
	ErrItemLocked              = errors.New(ErrMsgItemLocked)
	ErrInsufficientIngredients = errors.New(ErrMsgInsufficientIngredients)

	// Pet errors
	ErrPetNotFound      = errors.New(ErrMsgPetNotFound)
	ErrPetAlreadyExists = errors.New(ErrMsgPetAlreadyExists)
	ErrPetRanAway       = errors.New(ErrMsgPetRanAway)

	// Task errors
	ErrTaskNotFound       = errors.New(ErrMsgTaskNotFound)
	ErrSubmissionNotFound = errors.New(ErrMsgSubmissionNotFound)
	ErrAlreadySubmitted   = errors.New(ErrMsgAlreadySubmitted)
	ErrNotTeacher         = errors.New(ErrMsgNotTeacher)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
