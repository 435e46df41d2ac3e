package handlers

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"waterme/config"
	"waterme/services"
	"waterme/store"
)

func newAuthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	// unconfigured mailer: SendWelcome is a no-op
	h := NewAuthHandler(store.NewUserStore(db), services.NewMailer(config.Config{}))

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r, mock, db
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r, mock, db := newAuthRouter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ana", "a@a.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := doJSON(r, http.MethodPost, "/auth/register", `{"name":"Ana","email":"a@a.com","password":"pw"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["id"])
	assert.NotEmpty(t, resp["message"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, mock, db := newAuthRouter(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ana", "a@a.com", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	w := doJSON(r, http.MethodPost, "/auth/register", `{"name":"Ana","email":"a@a.com","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already exists")
}

func TestRegisterMissingFields(t *testing.T) {
	r, mock, db := newAuthRouter(t)
	defer db.Close()

	w := doJSON(r, http.MethodPost, "/auth/register", `{"email":"a@a.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// validation failed before any statement was built
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	r, mock, db := newAuthRouter(t)
	defer db.Close()

	var stored string
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ana", "a@a.com", argRecorder{&stored}).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := doJSON(r, http.MethodPost, "/auth/register", `{"name":"Ana","email":"a@a.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.NotEqual(t, "pw", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("pw")))
}

// argRecorder captures the value sqlmock matched so the test can inspect it.
type argRecorder struct {
	dst *string
}

func (a argRecorder) Match(v driver.Value) bool {
	s, ok := v.(string)
	if ok {
		*a.dst = s
	}
	return ok
}

func TestLogin(t *testing.T) {
	r, mock, db := newAuthRouter(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password FROM users WHERE email = $1")).
		WithArgs("a@a.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password"}).AddRow(1, "Ana", string(hash)))

	w := doJSON(r, http.MethodPost, "/auth/login", `{"email":"a@a.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["user_id"])
	assert.Equal(t, "Ana", resp["name"])
}

func TestLoginFailureShapeIsUniform(t *testing.T) {
	r, mock, db := newAuthRouter(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	// wrong password
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password FROM users WHERE email = $1")).
		WithArgs("a@a.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "password"}).AddRow(1, "Ana", string(hash)))
	wrongPw := doJSON(r, http.MethodPost, "/auth/login", `{"email":"a@a.com","password":"wrong"}`)

	// unknown email
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, password FROM users WHERE email = $1")).
		WithArgs("nobody@a.com").
		WillReturnError(sql.ErrNoRows)
	unknown := doJSON(r, http.MethodPost, "/auth/login", `{"email":"nobody@a.com","password":"pw"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)

	// identical body: no way to tell a bad password from a missing account
	assert.JSONEq(t, wrongPw.Body.String(), unknown.Body.String())
}
