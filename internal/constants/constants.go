package constants

const (
	AppName           = "timecraft"
	DefaultConfigPath = "~/.config/timecraft/timecraft.db"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys. These are stable contracts shared with existing data files;
	// do not rename them.
	KeyUserSettings = "tc_user_settings"
	KeyCurrentCycle = "tc_current_cycle"
	KeyTasks        = "tc_tasks"
	KeyTrackings    = "tc_trackings"
	KeyReviews      = "tc_reviews"
	CycleKeyPrefix  = "cycle_"

	// CycleDays is the fixed length of a planning cycle in days.
	CycleDays = 7

	// Schedule grid display window. Hours run on a 0-25 scale; 24 and 25
	// represent midnight and 1:00 of the next day.
	DayStartHour = 6
	DayEndHour   = 25

	// OnboardingDailyHours is the fixed daily allowance the onboarding
	// summary assumes (8:00-24:00). The schedule view derives its own
	// allowance from the grid window instead; the two are intentionally
	// kept as separate computations.
	OnboardingDailyHours = 16

	// CombineThresholdMin is the maximum summed estimate for two work
	// blocks to be suggested for merging.
	CombineThresholdMin = 120

	// LowQualityReviewSec flags reviews filled in faster than a human
	// plausibly reflects.
	LowQualityReviewSec = 10

	DefaultTargetFreeHours = 3
	DefaultTaskEstimateMin = 60
	DefaultFocus           = 3
	DefaultEnergy          = 3

	// Dimension score below which a coaching proposal fires.
	ProposalScoreThreshold = 6
	// Overall score below which the generic reduce-scope proposal fires.
	OverallScoreThreshold = 5
)

// BlockType represents the kind of a scheduled block
type BlockType string

const (
	BlockTypeFixed BlockType = "fixed"
	BlockTypeLife  BlockType = "life"
	BlockTypeTask  BlockType = "task"
	BlockTypeFree  BlockType = "free"
)

// BlockStatus represents the completion state of a block or tracking entry
type BlockStatus string

const (
	BlockStatusPending    BlockStatus = "pending"
	BlockStatusInProgress BlockStatus = "in_progress"
	BlockStatusCompleted  BlockStatus = "completed"
	BlockStatusSkipped    BlockStatus = "skipped"
)

// CycleStatus represents the lifecycle state of a cycle
type CycleStatus string

const (
	CycleStatusDraft     CycleStatus = "draft"
	CycleStatusLocked    CycleStatus = "locked"
	CycleStatusCompleted CycleStatus = "completed"
)

// Category represents the life area a block belongs to
type Category string

const (
	CategoryWork          Category = "work"
	CategoryHealth        Category = "health"
	CategoryRelationships Category = "relationships"
	CategoryGrowth        Category = "growth"
	CategorySleep         Category = "sleep"
	CategoryExercise      Category = "exercise"
	CategoryFree          Category = "free"
)

// Dimension is one of the five weekly self-rated satisfaction axes
type Dimension string

const (
	DimWork          Dimension = "work"
	DimRelationships Dimension = "relationships"
	DimHealth        Dimension = "health"
	DimGrowth        Dimension = "growth"
	DimFreeTime      Dimension = "freeTime"

	// DimOverall tags the generic reduce-scope proposal; it is not one of
	// the five scored dimensions.
	DimOverall Dimension = "overall"
)

// Dimensions lists the five scored dimensions in evaluation order.
var Dimensions = []Dimension{DimWork, DimRelationships, DimHealth, DimGrowth, DimFreeTime}

// ProposalOrder is the fixed order proposals are listed in, which differs
// from the evaluation order above.
var ProposalOrder = []Dimension{DimHealth, DimFreeTime, DimRelationships, DimGrowth, DimWork}
