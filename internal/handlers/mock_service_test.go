package handlers

import (
	"context"
	"net/http"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser models.User
	registerErr  error
	loginToken   string
	loginErr     error
	authUser     models.User
	authErr      error

	lastRegisterName  string
	lastRegisterEmail string
	lastLoginEmail    string
	lastLoginPassword string
	lastToken         string
}

func (m *mockAuth) Register(_ context.Context, name, email, password string) (models.User, error) {
	m.lastRegisterName = name
	m.lastRegisterEmail = email
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) Authenticate(_ context.Context, token string) (models.User, error) {
	m.lastToken = token
	return m.authUser, m.authErr
}

type mockExpenses struct {
	created   models.Expense
	got       models.Expense
	updated   models.Expense
	all       []models.Expense
	err       error
	getAllCnt int

	lastUser  models.User
	lastNew   models.NewExpense
	lastID    int64
	lastPatch models.ExpensePatch
}

func (m *mockExpenses) Create(_ context.Context, u models.User, in models.NewExpense) (models.Expense, error) {
	m.lastUser, m.lastNew = u, in
	return m.created, m.err
}

func (m *mockExpenses) Get(_ context.Context, u models.User, id int64) (models.Expense, error) {
	m.lastUser, m.lastID = u, id
	return m.got, m.err
}

func (m *mockExpenses) Update(_ context.Context, u models.User, id int64, p models.ExpensePatch) (models.Expense, error) {
	m.lastUser, m.lastID, m.lastPatch = u, id, p
	return m.updated, m.err
}

func (m *mockExpenses) Delete(_ context.Context, u models.User, id int64) error {
	m.lastUser, m.lastID = u, id
	return m.err
}

func (m *mockExpenses) GetAll(_ context.Context, u models.User) ([]models.Expense, error) {
	m.getAllCnt++
	m.lastUser = u
	return m.all, m.err
}

type mockQuery struct {
	list    []models.Expense
	summary models.Summary
	err     error

	listCalls  int
	lastFilter service.ListFilter
	lastMonth  *int
}

func (m *mockQuery) List(_ context.Context, _ models.User, f service.ListFilter) ([]models.Expense, error) {
	m.listCalls++
	m.lastFilter = f
	return m.list, m.err
}

func (m *mockQuery) Summarize(_ context.Context, _ models.User, month *int) (models.Summary, error) {
	m.lastMonth = month
	return m.summary, m.err
}

// ---- Shared Test Helpers ----

var testUser = models.User{ID: 7, Name: "Alice", Email: "a@x.com"}

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
