package services

import (
	"testing"

	"spendsmart/internal/models"
	"spendsmart/internal/store"
	"spendsmart/internal/testutil"
)

func TestEvaluateBudgets(t *testing.T) {
	t.Run("progress_percentage", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Food", 200)
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 150, "2025-05-01", "Food")

		progress, err := svc.EvaluateBudgets(owner)
		testutil.AssertNoError(t, err)

		if len(progress) != 1 {
			t.Fatalf("expected 1 budget, got %d", len(progress))
		}
		if progress[0].Spent != 150 || progress[0].Progress != 75.0 {
			t.Errorf("expected spent 150 progress 75.0, got %+v", progress[0])
		}
	})

	t.Run("spend_is_all_time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Food", 200)
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 100, "2020-01-01", "Food")
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 50, "2025-05-01", "Food")

		progress, err := svc.EvaluateBudgets(owner)
		testutil.AssertNoError(t, err)

		if progress[0].Spent != 150 {
			t.Errorf("expected all-time spend 150, got %f", progress[0].Spent)
		}
	})

	t.Run("no_expenses_means_zero_spent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Travel", 500)

		progress, err := svc.EvaluateBudgets(owner)
		testutil.AssertNoError(t, err)

		if progress[0].Spent != 0 || progress[0].Progress != 0 {
			t.Errorf("expected zero spent and progress, got %+v", progress[0])
		}
	})

	t.Run("zero_limit_yields_zero_progress", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Food", 0)
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 150, "2025-05-01", "Food")

		progress, err := svc.EvaluateBudgets(owner)
		testutil.AssertNoError(t, err)

		if progress[0].Progress != 0 {
			t.Errorf("expected progress 0 for zero limit, got %f", progress[0].Progress)
		}
	})

	t.Run("storage_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Travel", 500)
		testutil.CreateTestBudget(t, db, owner, "Food", 200)

		progress, err := svc.EvaluateBudgets(owner)
		testutil.AssertNoError(t, err)

		if len(progress) != 2 || progress[0].Category != "Travel" || progress[1].Category != "Food" {
			t.Errorf("expected creation order [Travel Food], got %+v", progress)
		}
	})

	t.Run("rounds_to_two_decimals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Food", 300)
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 100, "2025-05-01", "Food")

		progress, err := svc.EvaluateBudgets(owner)
		testutil.AssertNoError(t, err)

		if progress[0].Progress != 33.33 {
			t.Errorf("expected 33.33, got %f", progress[0].Progress)
		}
	})
}

func TestComputeAlerts(t *testing.T) {
	t.Run("threshold_is_ninety", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Food", 200)
		testutil.CreateTestBudget(t, db, owner, "Travel", 200)
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 190, "2025-05-01", "Food")
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 150, "2025-05-01", "Travel")

		alerts, err := svc.ComputeAlerts(owner)
		testutil.AssertNoError(t, err)

		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if alerts[0].Category != "Food" || alerts[0].Progress != 95.0 {
			t.Errorf("expected Food at 95.0, got %+v", alerts[0])
		}
	})

	t.Run("exact_threshold_alerts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Food", 100)
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 90, "2025-05-01", "Food")

		alerts, err := svc.ComputeAlerts(owner)
		testutil.AssertNoError(t, err)

		if len(alerts) != 1 {
			t.Errorf("expected alert at exactly 90%%, got %d alerts", len(alerts))
		}
	})

	t.Run("none", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Food", 200)
		testutil.CreateTestTransaction(t, db, owner, models.TransactionTypeExpense, 150, "2025-05-01", "Food")

		alerts, err := svc.ComputeAlerts(owner)
		testutil.AssertNoError(t, err)

		if len(alerts) != 0 {
			t.Errorf("expected no alerts at 75%%, got %+v", alerts)
		}
	})
}

func TestAddBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		budget, err := svc.AddBudget(owner, "Food", 200)
		testutil.AssertNoError(t, err)

		if budget.ID == "" || budget.Category != "Food" || budget.Limit != 200 {
			t.Errorf("unexpected budget: %+v", budget)
		}
	})

	t.Run("duplicate_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Food", 200)

		_, err := svc.AddBudget(owner, "Food", 300)
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
	})

	t.Run("same_category_different_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))

		testutil.CreateTestBudget(t, db, testutil.UniqueOwner(), "Food", 200)

		_, err := svc.AddBudget(testutil.UniqueOwner(), "Food", 300)
		testutil.AssertNoError(t, err)
	})

	t.Run("rejects_empty_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))

		_, err := svc.AddBudget(testutil.UniqueOwner(), "", 200)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_non_positive_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))

		_, err := svc.AddBudget(testutil.UniqueOwner(), "Food", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestEditBudget(t *testing.T) {
	t.Run("updates_both_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		budget := testutil.CreateTestBudget(t, db, owner, "Food", 200)

		updated, err := svc.EditBudget(owner, budget.ID, "Groceries", 350)
		testutil.AssertNoError(t, err)

		if updated.Category != "Groceries" || updated.Limit != 350 {
			t.Errorf("expected Groceries/350, got %+v", updated)
		}
	})

	t.Run("wrong_owner_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))

		budget := testutil.CreateTestBudget(t, db, testutil.UniqueOwner(), "Food", 200)

		_, err := svc.EditBudget(testutil.UniqueOwner(), budget.ID, "Food", 300)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("category_change_collision", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		testutil.CreateTestBudget(t, db, owner, "Travel", 500)
		budget := testutil.CreateTestBudget(t, db, owner, "Food", 200)

		_, err := svc.EditBudget(owner, budget.ID, "Travel", 300)
		testutil.AssertAppError(t, err, "DUPLICATE_BUDGET")
	})

	t.Run("keeping_category_is_not_a_collision", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		budget := testutil.CreateTestBudget(t, db, owner, "Food", 200)

		_, err := svc.EditBudget(owner, budget.ID, "Food", 400)
		testutil.AssertNoError(t, err)
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("removes_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		budget := testutil.CreateTestBudget(t, db, owner, "Food", 200)

		testutil.AssertNoError(t, svc.DeleteBudget(owner, budget.ID))

		progress, err := svc.EvaluateBudgets(owner)
		testutil.AssertNoError(t, err)
		if len(progress) != 0 {
			t.Errorf("expected no budgets after delete, got %+v", progress)
		}
	})

	t.Run("wrong_owner_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))

		budget := testutil.CreateTestBudget(t, db, testutil.UniqueOwner(), "Food", 200)

		err := svc.DeleteBudget(testutil.UniqueOwner(), budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("category_can_be_recreated_after_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(store.New(db))
		owner := testutil.UniqueOwner()

		budget := testutil.CreateTestBudget(t, db, owner, "Food", 200)
		testutil.AssertNoError(t, svc.DeleteBudget(owner, budget.ID))

		_, err := svc.AddBudget(owner, "Food", 300)
		testutil.AssertNoError(t, err)
	})
}
