package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"invoice-analytics/internal/model"
	"invoice-analytics/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type fakeInvoiceService struct {
	result  service.InvoiceListResult
	invoice *model.Invoice
	err     error
	gotQ    service.InvoiceListQuery
}

func (f *fakeInvoiceService) ListInvoices(_ context.Context, q service.InvoiceListQuery) (service.InvoiceListResult, error) {
	f.gotQ = q
	return f.result, f.err
}

func (f *fakeInvoiceService) GetInvoice(_ context.Context, id string) (*model.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.invoice, nil
}

func newInvoiceRouter(svc *fakeInvoiceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewInvoiceHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func TestListInvoicesEndpoint(t *testing.T) {
	svc := &fakeInvoiceService{
		result: service.InvoiceListResult{Data: []model.Invoice{}, Total: 0, Page: 2, Limit: 10, TotalPages: 0},
	}
	router := newInvoiceRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices?search=acme&status=pending&page=2&limit=10", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.gotQ.Search != "acme" || svc.gotQ.Status != "pending" {
		t.Errorf("filters not forwarded: %+v", svc.gotQ)
	}
	if svc.gotQ.Page != 2 || svc.gotQ.Limit != 10 {
		t.Errorf("pagination not forwarded: %+v", svc.gotQ)
	}

	var body service.InvoiceListResult
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Page != 2 || body.Limit != 10 {
		t.Errorf("body = %+v", body)
	}
}

func TestListInvoicesValidationFailure(t *testing.T) {
	router := newInvoiceRouter(&fakeInvoiceService{err: &service.ValidationError{Msg: "unsortable field: foo"}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices?sortBy=foo", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetInvoiceEndpointNotFound(t *testing.T) {
	router := newInvoiceRouter(&fakeInvoiceService{err: gorm.ErrRecordNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices/6f1e1bd1-64c0-4b55-b2b5-9d5d54b1c001", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["error"] != "Invoice not found" {
		t.Errorf("error = %q", body["error"])
	}
}
