package constants

// Pagination bounds
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// MaxUploadSize caps multipart uploads at 8 MiB
const MaxUploadSize = 8 << 20

// MaxAIGeneratedTasks limits how many tasks a single generate request may create
const MaxAIGeneratedTasks = 20
