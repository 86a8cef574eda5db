package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/merqado/commerce-api/internal/core/ports"
)

// CompanyHandler serves the read-only company reference collection. There is
// no service layer in between: the routes are pure reads with no rules to apply.
type CompanyHandler struct {
	companies ports.CompanyRepository
}

func NewCompanyHandler(companies ports.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// List handles GET /companies.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {array}  domain.Company
// @Router       /companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.companies.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get handles GET /companies/:id.
//
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  domain.Company
// @Failure      404  {object}  map[string]string
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.companies.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}
