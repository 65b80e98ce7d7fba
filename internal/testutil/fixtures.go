package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"spendsmart/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// UniqueOwner returns a fresh identity for use as a transaction owner.
func UniqueOwner() string {
	return fmt.Sprintf("user%d@test.com", nextID())
}

// CreateTestTransaction creates a transaction for the given owner.
func CreateTestTransaction(t *testing.T, db *gorm.DB, owner string, txType models.TransactionType, amount float64, date, category string) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		Owner:       owner,
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        date,
		Type:        txType,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return txn
}

// CreateTestBudget creates a budget for the given owner and category.
func CreateTestBudget(t *testing.T, db *gorm.DB, owner, category string, limit float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Owner:    owner,
		Category: category,
		Limit:    limit,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestProfile creates a user profile with a display name.
func CreateTestProfile(t *testing.T, db *gorm.DB, email, name string) *models.UserProfile {
	t.Helper()

	profile := &models.UserProfile{Email: email, Name: name}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestChallenge creates a challenge with the given participants, in order.
func CreateTestChallenge(t *testing.T, db *gorm.DB, challengeType models.ChallengeType, startDate, endDate string, participants ...string) *models.Challenge {
	t.Helper()

	challenge := &models.Challenge{
		Name:      fmt.Sprintf("Test Challenge %d", nextID()),
		Type:      challengeType,
		StartDate: startDate,
		EndDate:   endDate,
	}
	for i, identity := range participants {
		challenge.Participants = append(challenge.Participants, models.ChallengeParticipant{
			Identity: identity,
			Position: i,
		})
	}
	if err := db.Create(challenge).Error; err != nil {
		t.Fatalf("failed to create test challenge: %v", err)
	}
	return challenge
}
