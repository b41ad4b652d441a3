package handlers

import (
	"context"
	"net/http"

	"expense_manager/internal/models"
	"expense_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerErr error
	loginRes    service.LoginResult
	loginErr    error
	parseID     int
	parseErr    error

	lastRegisterName     string
	lastRegisterUsername string
	lastLoginUsername    string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, name, username, password string) error {
	m.lastRegisterName = name
	m.lastRegisterUsername = username
	return m.registerErr
}
func (m *mockAuth) Login(ctx context.Context, username, password string) (service.LoginResult, error) {
	m.lastLoginUsername = username
	return m.loginRes, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockUsers struct {
	resp []models.User
	err  error
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	return m.resp, m.err
}

type mockCategories struct {
	addRes    models.Category
	addErr    error
	listRes   []models.Category
	listErr   error
	deleteRes models.Category
	deleteErr error

	lastAdd      service.CategoryParams
	lastDeleteID int
}

func (m *mockCategories) Add(ctx context.Context, p service.CategoryParams) (models.Category, error) {
	m.lastAdd = p
	return m.addRes, m.addErr
}
func (m *mockCategories) List(ctx context.Context) ([]models.Category, error) {
	return m.listRes, m.listErr
}
func (m *mockCategories) Delete(ctx context.Context, id int) (models.Category, error) {
	m.lastDeleteID = id
	return m.deleteRes, m.deleteErr
}

type mockExpenses struct {
	addRes         models.ExpenseDetail
	addErr         error
	activeRes      []models.ExpenseDetail
	activeErr      error
	deletedListRes []models.ExpenseDetail
	deletedListErr error
	deleteRes      models.Expense
	deleteErr      error

	lastAdd      service.ExpenseParams
	lastDeleteID int
}

func (m *mockExpenses) Add(ctx context.Context, p service.ExpenseParams) (models.ExpenseDetail, error) {
	m.lastAdd = p
	return m.addRes, m.addErr
}
func (m *mockExpenses) ListActive(ctx context.Context) ([]models.ExpenseDetail, error) {
	return m.activeRes, m.activeErr
}
func (m *mockExpenses) ListDeleted(ctx context.Context) ([]models.ExpenseDetail, error) {
	return m.deletedListRes, m.deletedListErr
}
func (m *mockExpenses) Delete(ctx context.Context, id int) (models.Expense, error) {
	m.lastDeleteID = id
	return m.deleteRes, m.deleteErr
}

type mockReporting struct {
	resp models.SpendingSummary
	err  error
}

func (m *mockReporting) Summary(ctx context.Context) (models.SpendingSummary, error) {
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
