package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/merqado/commerce-api/internal/api/metrics"
	"github.com/merqado/commerce-api/internal/api/middleware"
	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	listFn   func(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string, actor *domain.User) error
}

func (s *stubProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
	return s.listFn(ctx, in)
}

func (s *stubProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProductService) Delete(ctx context.Context, id string, actor *domain.User) error {
	return s.deleteFn(ctx, id, actor)
}

func testDistributor() *domain.User {
	return &domain.User{
		ID:          "dist-1",
		Email:       "dist@example.com",
		PrimaryRole: domain.RoleDistributor,
		Roles:       []domain.Role{domain.RoleDistributor},
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			if in.Actor == nil || in.Actor.ID != "dist-1" {
				t.Fatalf("actor not forwarded: %+v", in.Actor)
			}
			now := time.Now().UTC()
			return &domain.Product{
				ID: "prod-1", Name: in.Name, Price: in.Price,
				StockQuantity: in.StockQuantity, IsActive: true,
				OwnerID: in.Actor.ID, CreatedAt: now, UpdatedAt: now,
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/products",
		`{"name":"Widget","price":9.99,"stock_quantity":5}`)
	c.Set(middleware.PrincipalKey, testDistributor())

	before := testutil.ToFloat64(metrics.ProductMutationsTotal.WithLabelValues("create"))
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(metrics.ProductMutationsTotal.WithLabelValues("create")); got != before+1 {
		t.Fatalf("expected create mutation counter to increment, got %v -> %v", before, got)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["owner_id"] != "dist-1" {
		t.Fatalf("unexpected owner: %v", resp["owner_id"])
	}
}

func TestProductHandler_Create_InvalidPrice(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, _ ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/products", `{"name":"Widget","price":-1}`)
	c.Set(middleware.PrincipalKey, testDistributor())

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubProductService{
		getFn: func(_ context.Context, _ string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestProductHandler_List_ForwardsQuery(t *testing.T) {
	stub := &stubProductService{
		listFn: func(_ context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
			if in.CompanyID != "co-1" || !in.ActiveOnly || in.Page != 2 || in.Limit != 5 {
				t.Fatalf("query not forwarded: %+v", in)
			}
			return &ports.ListProductsResult{Page: 2, Limit: 5, Total: 0, TotalPages: 0}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/products?company_id=co-1&active=true&page=2&limit=5", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["pagination"]; !ok {
		t.Fatalf("expected pagination envelope, got %+v", resp)
	}
}

func TestProductHandler_Update_Forbidden(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, _ string, _ ports.UpdateProductInput) (*domain.Product, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/products/prod-1", `{"price":12.5}`)
	c.SetParamNames("id")
	c.SetParamValues("prod-1")
	c.Set(middleware.PrincipalKey, testDistributor())

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string, actor *domain.User) error {
			if id != "prod-1" || actor == nil {
				t.Fatalf("unexpected args: %s %+v", id, actor)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/products/prod-1", "")
	c.SetParamNames("id")
	c.SetParamValues("prod-1")
	c.Set(middleware.PrincipalKey, testDistributor())

	before := testutil.ToFloat64(metrics.ProductMutationsTotal.WithLabelValues("delete"))
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(metrics.ProductMutationsTotal.WithLabelValues("delete")); got != before+1 {
		t.Fatalf("expected delete mutation counter to increment, got %v -> %v", before, got)
	}
}
