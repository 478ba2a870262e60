package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToUpsertUser = "failed to upsert user"
	ErrMsgFailedToGetUser    = "failed to get user"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventory   = "failed to get inventory"
	ErrMsgFailedToLockQuantities = "failed to lock inventory quantities"
	ErrMsgFailedToApplyItemDelta = "failed to apply item delta"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetZone        = "failed to get zone"
	ErrMsgFailedToListZones      = "failed to list zones"
	ErrMsgFailedToGetItem        = "failed to get item"
	ErrMsgFailedToListItems      = "failed to list items"
	ErrMsgFailedToGetAnimalDef   = "failed to get animal definition"
	ErrMsgFailedToListAnimalDefs = "failed to list animal definitions"
	ErrMsgFailedToGetChain       = "failed to get production chain"
	ErrMsgFailedToListChains     = "failed to list production chains"
	ErrMsgFailedToGetIngredients = "failed to get chain ingredients"
)

// Error Messages - Farm Operations
const (
	ErrMsgFailedToGetPlants        = "failed to get plants"
	ErrMsgFailedToInsertPlant      = "failed to insert plant"
	ErrMsgFailedToDeletePlant      = "failed to delete plant"
	ErrMsgFailedToGetAnimals       = "failed to get animals"
	ErrMsgFailedToInsertAnimal     = "failed to insert animal"
	ErrMsgFailedToCountAnimals     = "failed to count animals"
	ErrMsgFailedToUpdateAnimal     = "failed to update animal"
	ErrMsgFailedToGetProductions   = "failed to get productions"
	ErrMsgFailedToInsertProduction = "failed to insert production"
	ErrMsgFailedToDeleteProduction = "failed to delete production"
)

// Error Messages - Pet Operations
const (
	ErrMsgFailedToGetPet    = "failed to get pet"
	ErrMsgFailedToCreatePet = "failed to create pet"
	ErrMsgFailedToUpdatePet = "failed to update pet"
	ErrMsgFailedToDeletePet = "failed to delete pet"
)

// Error Messages - Progress Operations
const (
	ErrMsgFailedToGetProgress    = "failed to get progress"
	ErrMsgFailedToUpsertProgress = "failed to upsert progress"
)

// Error Messages - Task Operations
const (
	ErrMsgFailedToCreateTask       = "failed to create task"
	ErrMsgFailedToGetTask          = "failed to get task"
	ErrMsgFailedToListTasks        = "failed to list tasks"
	ErrMsgFailedToCreateSubmission = "failed to create submission"
	ErrMsgFailedToGetSubmission    = "failed to get submission"
	ErrMsgFailedToListSubmissions  = "failed to list submissions"
	ErrMsgFailedToUpdateSubmission = "failed to update submission"
)
