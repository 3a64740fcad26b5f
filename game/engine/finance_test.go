package engine

import "testing"

func TestFinance_AddAndQuery(t *testing.T) {
	f := NewFinance()

	f.AddExpense(CategoryTrack, "r1", 1, 20)
	f.AddExpense(CategoryTrain, "t1", 1, 100)
	f.AddIncome(CategoryRoute, "r1", 1, 60)

	if e := f.Expense(CategoryTrack, "r1"); e == nil || e.Total() != 20 {
		t.Fatalf("Expected track expense of 20, got %+v", e)
	}
	if f.TotalExpense(CategoryTrack) != 20 {
		t.Errorf("Expected track total 20, got %d", f.TotalExpense(CategoryTrack))
	}
	if f.TotalExpense(CategoryTrain) != 100 {
		t.Errorf("Expected train total 100, got %d", f.TotalExpense(CategoryTrain))
	}
	if f.TotalIncome(CategoryRoute) != 60 {
		t.Errorf("Expected route income 60, got %d", f.TotalIncome(CategoryRoute))
	}
	if f.Net() != 60-120 {
		t.Errorf("Expected net -60, got %d", f.Net())
	}
}

func TestFinance_MergeFoldsValue(t *testing.T) {
	f := NewFinance()

	f.AddExpense(CategoryTrain, "t1", 1, 100)
	f.AddExpense(CategoryTrain, "t1", 1, 100)

	e := f.Expense(CategoryTrain, "t1")
	if e == nil || e.Quantity != 2 {
		t.Fatalf("Expected merged quantity 2, got %+v", e)
	}
	if e.Total() != 200 {
		t.Errorf("Expected merged total 200, got %d", e.Total())
	}
}

func TestFinance_MergeAtDifferentUnitCosts(t *testing.T) {
	f := NewFinance()

	// Same train model bought at full price, then at a discount.
	f.AddExpense(CategoryTrain, "t1", 1, 100)
	f.AddExpense(CategoryTrain, "t1", 1, 90)

	e := f.Expense(CategoryTrain, "t1")
	if e == nil || e.Quantity != 2 {
		t.Fatalf("Expected merged quantity 2, got %+v", e)
	}
	if e.Total() != 190 {
		t.Errorf("Expected merged total 190, got %d", e.Total())
	}
	if f.TotalExpense(CategoryTrain) != 190 {
		t.Errorf("Expected category total 190, got %d", f.TotalExpense(CategoryTrain))
	}
}

func TestFinance_IgnoresNonPositiveQuantity(t *testing.T) {
	f := NewFinance()

	f.AddExpense(CategoryTrack, "r1", 0, 20)
	f.AddExpense(CategoryTrack, "r1", -3, 20)

	if len(f.Expenses()) != 0 {
		t.Errorf("Expected no entries for non-positive quantities, got %d", len(f.Expenses()))
	}
}

func TestFinance_RemoveExpense(t *testing.T) {
	f := NewFinance()
	f.AddExpense(CategoryTrack, "r1", 1, 20)

	if !f.RemoveExpense(CategoryTrack, "r1") {
		t.Fatal("Expected removal to find the entry")
	}
	if f.RemoveExpense(CategoryTrack, "r1") {
		t.Fatal("Expected second removal to find nothing")
	}
	if f.RemoveExpense(CategoryTrack, "missing") {
		t.Fatal("Expected removal of unknown subject to find nothing")
	}
}

func TestFinance_ReduceExpense(t *testing.T) {
	f := NewFinance()
	f.AddExpense(CategoryTrain, "t1", 1, 100)
	f.AddExpense(CategoryTrain, "t1", 1, 90)

	// Reversing the discounted purchase leaves the full-price one intact.
	if !f.ReduceExpense(CategoryTrain, "t1", 1, 90) {
		t.Fatal("Expected reduce to find the entry")
	}
	e := f.Expense(CategoryTrain, "t1")
	if e == nil || e.Quantity != 1 || e.Total() != 100 {
		t.Fatalf("Expected quantity 1 worth 100 after reduce, got %+v", e)
	}

	// Reducing to zero deletes the entry; quantities never go negative.
	if !f.ReduceExpense(CategoryTrain, "t1", 1, 100) {
		t.Fatal("Expected second reduce to succeed")
	}
	if f.Expense(CategoryTrain, "t1") != nil {
		t.Error("Expected entry deleted at zero quantity")
	}
	if f.ReduceExpense(CategoryTrain, "t1", 1, 100) {
		t.Error("Expected reduce on missing entry to fail")
	}
}

func TestFinance_DeterministicOrder(t *testing.T) {
	f := NewFinance()
	f.AddExpense(CategoryUpgrade, "u2", 1, 10)
	f.AddExpense(CategoryTrack, "r9", 1, 10)
	f.AddExpense(CategoryTrack, "r1", 1, 10)

	got := f.Expenses()
	if len(got) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(got))
	}
	if got[0].SubjectID != "r1" || got[1].SubjectID != "r9" || got[2].SubjectID != "u2" {
		t.Errorf("Entries out of order: %v", got)
	}
}
