package service

import (
	"context"

	"expense_manager/internal/models"
)

// fakeUserRepo is a minimal in-memory stub for repository.Users.
type fakeUserRepo struct {
	users  map[string]models.User // keyed by username
	nextID int

	createErr error
	getErr    error
	listErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, name, username, passwordHash string) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	id := f.nextID
	f.nextID++
	f.users[username] = models.User{ID: id, Name: name, Username: username, PasswordHash: passwordHash}
	return id, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

// fakeCategoryRepo is a minimal in-memory stub for repository.Categories.
type fakeCategoryRepo struct {
	categories map[int]models.Category
	nextID     int

	deleted []int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int]models.Category{}, nextID: 1}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c models.Category) (int, error) {
	id := f.nextID
	f.nextID++
	c.ID = id
	f.categories[id] = c
	return id, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int) error {
	delete(f.categories, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeExpenseRepo is a minimal in-memory stub for repository.Expenses.
type fakeExpenseRepo struct {
	expenses map[int]models.Expense
	images   map[int]string // category id -> image url, for list enrichment
	nextID   int
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{
		expenses: map[int]models.Expense{},
		images:   map[int]string{},
		nextID:   1,
	}
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e models.Expense) (int, error) {
	id := f.nextID
	f.nextID++
	e.ID = id
	f.expenses[id] = e
	return id, nil
}

func (f *fakeExpenseRepo) GetByID(ctx context.Context, id int) (*models.Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeExpenseRepo) ListByStatus(ctx context.Context, deleted bool) ([]models.ExpenseDetail, error) {
	out := make([]models.ExpenseDetail, 0, len(f.expenses))
	for _, e := range f.expenses {
		if e.IsDeleted == deleted {
			out = append(out, models.ExpenseDetail{Expense: e, CategoryImageURL: f.images[e.CategoryID]})
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) MarkDeleted(ctx context.Context, id int) error {
	e, ok := f.expenses[id]
	if !ok {
		return nil
	}
	e.IsDeleted = true
	f.expenses[id] = e
	return nil
}

func (f *fakeExpenseRepo) CountByCategory(ctx context.Context, categoryID int) (int, error) {
	n := 0
	for _, e := range f.expenses {
		if e.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeExpenseRepo) Summary(ctx context.Context) (models.SpendingSummary, error) {
	var s models.SpendingSummary
	for _, e := range f.expenses {
		if e.IsDeleted {
			s.DeletedCount++
			continue
		}
		s.ActiveCount++
		s.TotalAmount += e.Amount
	}
	return s, nil
}
