package constants

// 用户等级
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// 课程难度
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// 公告类型
const (
	AnnouncementTypeInfo    = "info"
	AnnouncementTypeWarning = "warning"
	AnnouncementTypeSuccess = "success"
	AnnouncementTypeError   = "error"
)

// 公告优先级范围
const (
	AnnouncementPriorityMin = 1
	AnnouncementPriorityMax = 5
)

// 推荐状态（单向推进 pending -> accepted -> completed）
const (
	ReferralStatusPending   = "pending"
	ReferralStatusAccepted  = "accepted"
	ReferralStatusCompleted = "completed"
)

// 交易状态
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
)

// 用户行为类型
const (
	ActivityTypeClick         = "click"
	ActivityTypeConversion    = "conversion"
	ActivityTypeXPEarned      = "xp_earned"
	ActivityTypeStreakUpdated = "streak_updated"
	ActivityTypeTierUpgraded  = "tier_upgraded"
)

// 通知类型
const (
	NotificationTypeAchievement = "achievement"
	NotificationTypeMilestone   = "milestone"
	NotificationTypeStreak      = "streak"
	NotificationTypeReferral    = "referral"
	NotificationTypeCourse      = "course"
	NotificationTypeGeneral     = "general"
)

// 候补名单状态
const (
	WaitlistStatusPending   = "pending"
	WaitlistStatusNotified  = "notified"
	WaitlistStatusConverted = "converted"
)

// 后端过程实现
const (
	ProceduresLocal  = "local"
	ProceduresNative = "native"
)

// 队列与任务
const (
	QueueDefault    = "default"
	TaskRewardCheck = "reward:check"
)

// 等级默认 XP 门槛
var DefaultTierThresholds = map[string]int64{
	TierBronze:   1000,
	TierSilver:   2000,
	TierGold:     5000,
	TierPlatinum: 10000,
}

// Tiers 全部等级（按门槛升序）
var Tiers = []string{TierBronze, TierSilver, TierGold, TierPlatinum}

// Difficulties 全部课程难度
var Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// AnnouncementTypes 全部公告类型
var AnnouncementTypes = []string{AnnouncementTypeInfo, AnnouncementTypeWarning, AnnouncementTypeSuccess, AnnouncementTypeError}

// ReferralStatuses 推荐状态（顺序即推进顺序）
var ReferralStatuses = []string{ReferralStatusPending, ReferralStatusAccepted, ReferralStatusCompleted}

// TransactionStatuses 全部交易状态
var TransactionStatuses = []string{TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed, TransactionStatusCancelled}

// ActivityTypes 全部行为类型
var ActivityTypes = []string{ActivityTypeClick, ActivityTypeConversion, ActivityTypeXPEarned, ActivityTypeStreakUpdated, ActivityTypeTierUpgraded}

// NotificationTypes 全部通知类型
var NotificationTypes = []string{NotificationTypeAchievement, NotificationTypeMilestone, NotificationTypeStreak, NotificationTypeReferral, NotificationTypeCourse, NotificationTypeGeneral}

// WaitlistStatuses 全部候补状态
var WaitlistStatuses = []string{WaitlistStatusPending, WaitlistStatusNotified, WaitlistStatusConverted}
