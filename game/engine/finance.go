package engine

import "sort"

// FinanceCategory labels a ledger entry.
type FinanceCategory string

const (
	CategoryTrack   FinanceCategory = "track"
	CategoryTrain   FinanceCategory = "train"
	CategoryUpgrade FinanceCategory = "upgrade"
	CategoryUpkeep  FinanceCategory = "upkeep"
	CategoryRoute   FinanceCategory = "route"
)

// FinanceEntry is one ledger line, keyed by (category, subject id). Value is
// the accumulated gold of every merged addition, so entries stay exact even
// when the same subject is added at different unit costs.
type FinanceEntry struct {
	Category  FinanceCategory `json:"category"`
	SubjectID string          `json:"subject_id"`
	Quantity  int             `json:"quantity"`
	Value     int             `json:"value"`
}

// Total returns the gold value of the entry.
func (e FinanceEntry) Total() int {
	return e.Value
}

type financeKey struct {
	category  FinanceCategory
	subjectID string
}

// Finance is a per-player ledger of income and expense entries. Entries with
// the same (category, subject) key merge by quantity; quantities never go
// negative because removal deletes the whole entry.
type Finance struct {
	expenses map[financeKey]*FinanceEntry
	incomes  map[financeKey]*FinanceEntry
}

// NewFinance creates an empty ledger.
func NewFinance() *Finance {
	return &Finance{
		expenses: make(map[financeKey]*FinanceEntry),
		incomes:  make(map[financeKey]*FinanceEntry),
	}
}

// AddExpense appends or merges an expense entry. Non-positive quantities are
// ignored so the ledger can never record a negative position.
func (f *Finance) AddExpense(category FinanceCategory, subjectID string, quantity, unitCost int) {
	add(f.expenses, category, subjectID, quantity, unitCost)
}

// AddIncome appends or merges an income entry.
func (f *Finance) AddIncome(category FinanceCategory, subjectID string, quantity, unitCost int) {
	add(f.incomes, category, subjectID, quantity, unitCost)
}

func add(m map[financeKey]*FinanceEntry, category FinanceCategory, subjectID string, quantity, unitCost int) {
	if quantity <= 0 {
		return
	}
	key := financeKey{category, subjectID}
	if entry, ok := m[key]; ok {
		// Merging folds the actual value added, so repeat purchases of
		// the same subject at different prices stay exact.
		entry.Quantity += quantity
		entry.Value += quantity * unitCost
		return
	}
	m[key] = &FinanceEntry{
		Category:  category,
		SubjectID: subjectID,
		Quantity:  quantity,
		Value:     quantity * unitCost,
	}
}

// RemoveExpense deletes the matching expense entry and reports whether one
// was found. Required when a queued route is cancelled.
func (f *Finance) RemoveExpense(category FinanceCategory, subjectID string) bool {
	return remove(f.expenses, category, subjectID)
}

// RemoveIncome deletes the matching income entry.
func (f *Finance) RemoveIncome(category FinanceCategory, subjectID string) bool {
	return remove(f.incomes, category, subjectID)
}

func remove(m map[financeKey]*FinanceEntry, category FinanceCategory, subjectID string) bool {
	key := financeKey{category, subjectID}
	if _, ok := m[key]; !ok {
		return false
	}
	delete(m, key)
	return true
}

// ReduceExpense subtracts quantity units and their exact gold value from the
// matching expense entry, deleting it when it reaches zero quantity, and
// reports whether an entry was found. Reversals pass the specific purchase's
// cost so a merged entry stays exact. Quantities never go negative.
func (f *Finance) ReduceExpense(category FinanceCategory, subjectID string, quantity, value int) bool {
	key := financeKey{category, subjectID}
	entry, ok := f.expenses[key]
	if !ok {
		return false
	}
	entry.Quantity -= quantity
	entry.Value -= value
	if entry.Quantity <= 0 {
		delete(f.expenses, key)
	}
	return true
}

// restoreExpense reinstates a serialized entry verbatim, preserving its
// accumulated value across snapshot round-trips.
func (f *Finance) restoreExpense(e FinanceEntry) {
	restore(f.expenses, e)
}

// restoreIncome reinstates a serialized income entry verbatim.
func (f *Finance) restoreIncome(e FinanceEntry) {
	restore(f.incomes, e)
}

func restore(m map[financeKey]*FinanceEntry, e FinanceEntry) {
	if e.Quantity <= 0 {
		return
	}
	key := financeKey{e.Category, e.SubjectID}
	if entry, ok := m[key]; ok {
		entry.Quantity += e.Quantity
		entry.Value += e.Value
		return
	}
	stored := e
	m[key] = &stored
}

// Expense returns the expense entry for the key, or nil.
func (f *Finance) Expense(category FinanceCategory, subjectID string) *FinanceEntry {
	return f.expenses[financeKey{category, subjectID}]
}

// Income returns the income entry for the key, or nil.
func (f *Finance) Income(category FinanceCategory, subjectID string) *FinanceEntry {
	return f.incomes[financeKey{category, subjectID}]
}

// TotalExpense sums all expense entries in a category.
func (f *Finance) TotalExpense(category FinanceCategory) int {
	return total(f.expenses, category)
}

// TotalIncome sums all income entries in a category.
func (f *Finance) TotalIncome(category FinanceCategory) int {
	return total(f.incomes, category)
}

func total(m map[financeKey]*FinanceEntry, category FinanceCategory) int {
	sum := 0
	for key, entry := range m {
		if key.category == category {
			sum += entry.Total()
		}
	}
	return sum
}

// Net returns total income minus total expense across every category.
func (f *Finance) Net() int {
	net := 0
	for _, entry := range f.incomes {
		net += entry.Total()
	}
	for _, entry := range f.expenses {
		net -= entry.Total()
	}
	return net
}

// Expenses returns all expense entries, sorted by category then subject id
// so serialization stays deterministic.
func (f *Finance) Expenses() []FinanceEntry {
	return entries(f.expenses)
}

// Incomes returns all income entries in deterministic order.
func (f *Finance) Incomes() []FinanceEntry {
	return entries(f.incomes)
}

func entries(m map[financeKey]*FinanceEntry) []FinanceEntry {
	result := make([]FinanceEntry, 0, len(m))
	for _, entry := range m {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].SubjectID < result[j].SubjectID
	})
	return result
}
