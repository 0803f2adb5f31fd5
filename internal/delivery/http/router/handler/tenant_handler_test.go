package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"manor/internal/delivery/http/validator"
	"manor/internal/domain/entity"
	"manor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// stubTenantUsecase overrides only the methods a test exercises. Calling an
// unstubbed method panics through the embedded nil interface.
type stubTenantUsecase struct {
	usecase.TenantUsecase

	assignFn func(ctx context.Context, tenantID, apartmentID int64, leaseStart, leaseEnd *time.Time) (*entity.Tenant, error)
	getFn    func(ctx context.Context, id int64) (*entity.Tenant, error)
}

func (s *stubTenantUsecase) AssignApartment(ctx context.Context, tenantID, apartmentID int64, leaseStart, leaseEnd *time.Time) (*entity.Tenant, error) {
	return s.assignFn(ctx, tenantID, apartmentID, leaseStart, leaseEnd)
}

func (s *stubTenantUsecase) GetTenant(ctx context.Context, id int64) (*entity.Tenant, error) {
	return s.getFn(ctx, id)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTenantHandler_AssignApartment(t *testing.T) {
	apartmentID := int64(7)
	stub := &stubTenantUsecase{
		assignFn: func(_ context.Context, tenantID, gotApartmentID int64, _, _ *time.Time) (*entity.Tenant, error) {
			assert.Equal(t, int64(3), tenantID)
			assert.Equal(t, apartmentID, gotApartmentID)

			return &entity.Tenant{
				ID:          tenantID,
				FullName:    "Ada Mensah",
				Email:       "ada@example.com",
				ApartmentID: &gotApartmentID,
			}, nil
		},
	}
	h := &TenantHandler{tenantUC: stub, logger: discardLogger()}

	c, rec := newTestContext(t, http.MethodPost, "/tenants/3/apartment", `{"apartment_id": 7}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.AssignApartment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"apartment_id":7`)
}

func TestTenantHandler_AssignApartment_MissingApartmentID(t *testing.T) {
	h := &TenantHandler{tenantUC: &stubTenantUsecase{}, logger: discardLogger()}

	c, rec := newTestContext(t, http.MethodPost, "/tenants/3/apartment", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	err := h.AssignApartment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestTenantHandler_GetTenant_InvalidID(t *testing.T) {
	h := &TenantHandler{tenantUC: &stubTenantUsecase{}, logger: discardLogger()}

	c, rec := newTestContext(t, http.MethodGet, "/tenants/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetTenant(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
