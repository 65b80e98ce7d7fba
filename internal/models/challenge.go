package models

// ChallengeType determines how participant progress is scored and ranked.
type ChallengeType string

const (
	// ChallengeTypeSavings ranks by net savings, higher is better.
	ChallengeTypeSavings ChallengeType = "savings"
	// ChallengeTypeSpending ranks by total spend, lower is better.
	ChallengeTypeSpending ChallengeType = "spending"
)

// Challenge represents a group challenge over a closed date interval
// [StartDate, EndDate]. The participant list is fixed at creation.
// A challenge has no stored phase: it is active while EndDate >= today
// and past afterwards, evaluated at read time.
type Challenge struct {
	Base
	Name         string                 `gorm:"not null" json:"name"`
	Type         ChallengeType          `gorm:"not null" json:"type"`
	StartDate    string                 `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate      string                 `gorm:"type:varchar(10);index;not null" json:"end_date"`
	Participants []ChallengeParticipant `gorm:"foreignKey:ChallengeID" json:"participants"`
}

// ChallengeParticipant links an identity to a challenge. Position preserves
// the order in which participants were listed at creation.
type ChallengeParticipant struct {
	Base
	ChallengeID string `gorm:"type:uuid;index;not null" json:"challenge_id"`
	Identity    string `gorm:"index;not null" json:"identity"`
	Position    int    `gorm:"not null" json:"position"`
}
