package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carewellhq/clinic-admin/internal/dto"
	"github.com/carewellhq/clinic-admin/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation rejections happen before any database call, so these run against
// services with no connection.

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var envelope dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestAddAuthor_MissingName(t *testing.T) {
	h := NewAuthorHandler(services.NewAuthorService(nil))
	app := fiber.New()
	app.Post("/addAuthor", h.Create)

	resp, err := app.Test(jsonRequest("POST", "/addAuthor", `{"bio":"writes things"}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeError(t, resp)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "name")
}

func TestAddAuthor_InvalidBody(t *testing.T) {
	h := NewAuthorHandler(services.NewAuthorService(nil))
	app := fiber.New()
	app.Post("/addAuthor", h.Create)

	resp, err := app.Test(jsonRequest("POST", "/addAuthor", `{not json`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddContact_MissingPhone(t *testing.T) {
	h := NewContactHandler(services.NewContactService(nil))
	app := fiber.New()
	app.Post("/addContact", h.Create)

	resp, err := app.Test(jsonRequest("POST", "/addContact", `{"name":"A"}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeError(t, resp)
	assert.False(t, envelope.Success)
}

func TestAddContact_InvalidEmail(t *testing.T) {
	h := NewContactHandler(services.NewContactService(nil))
	app := fiber.New()
	app.Post("/addContact", h.Create)

	resp, err := app.Test(jsonRequest("POST", "/addContact",
		`{"name":"A","phone":"123","email":"not-an-email"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDownloadContactsExcel_MissingDates(t *testing.T) {
	h := NewContactHandler(services.NewContactService(nil))
	app := fiber.New()
	app.Get("/downloadContactsExcel", h.DownloadExcel)

	resp, err := app.Test(httptest.NewRequest("GET", "/downloadContactsExcel?startDate=2024-01-01", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeError(t, resp)
	assert.Contains(t, envelope.Message, "endDate")
}

func TestAddDiagnosis_MissingName(t *testing.T) {
	h := NewDiagnosisHandler(services.NewDiagnosisService(nil))
	app := fiber.New()
	app.Post("/addDiagnosis", h.Create)

	resp, err := app.Test(jsonRequest("POST", "/addDiagnosis", `{"name":"   "}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddOccupation_MissingName(t *testing.T) {
	h := NewOccupationHandler(services.NewOccupationService(nil))
	app := fiber.New()
	app.Post("/addOccupation", h.Create)

	resp, err := app.Test(jsonRequest("POST", "/addOccupation", `{}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddStaff_MissingRequiredFields(t *testing.T) {
	h := NewStaffHandler(services.NewStaffService(nil))
	app := fiber.New()
	app.Post("/addStaff", h.Create)

	// gender and phoneNo absent
	resp, err := app.Test(jsonRequest("POST", "/addStaff",
		`{"firstName":"Asha","lastName":"Rao"}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeError(t, resp)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "gender")
}

func TestSearchStaff_MissingTerm(t *testing.T) {
	h := NewStaffHandler(services.NewStaffService(nil))
	app := fiber.New()
	app.Post("/searchStaff/:id", h.Search)

	resp, err := app.Test(jsonRequest("POST", "/searchStaff/center-1", `{"search":""}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeError(t, resp)
	assert.Contains(t, envelope.Message, "search")
}
