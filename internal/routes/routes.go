package routes

import (
	"time"

	"github.com/carewellhq/clinic-admin/internal/config"
	"github.com/carewellhq/clinic-admin/internal/handlers"
	"github.com/carewellhq/clinic-admin/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Setup mounts the route tables. Paths keep the verb-style names the admin
// frontend already calls (including the PUT get-by-id routes).
func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	authorHandler *handlers.AuthorHandler,
	contactHandler *handlers.ContactHandler,
	diagnosisHandler *handlers.DiagnosisHandler,
	occupationHandler *handlers.OccupationHandler,
	staffHandler *handlers.StaffHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// All entity groups sit behind the JWT guard; tokens come from the
	// upstream auth service.
	guard := middleware.JWTProtected(cfg)

	author := api.Group("/author", guard)
	author.Post("/addAuthor", authorHandler.Create)
	author.Get("/getAuthors", authorHandler.List)
	author.Put("/getAuthorById/:id", authorHandler.Get)
	author.Put("/updateAuthor/:id", authorHandler.Update)
	author.Delete("/deleteAuthor/:id", authorHandler.Delete)
	author.Get("/author-image/:id", authorHandler.Image)

	contact := api.Group("/contact", guard)
	contact.Post("/addContact", contactHandler.Create)
	contact.Get("/getContacts", contactHandler.List)
	contact.Get("/downloadContactsExcel", contactHandler.DownloadExcel)
	contact.Put("/updateContact/:id", contactHandler.Update)

	diagnosis := api.Group("/diagnosis", guard)
	diagnosis.Post("/addDiagnosis", diagnosisHandler.Create)
	diagnosis.Get("/getDiagnoses", diagnosisHandler.List)
	diagnosis.Put("/getDiagnosisById/:id", diagnosisHandler.Get)
	diagnosis.Put("/updateDiagnosis/:id", diagnosisHandler.Update)
	diagnosis.Delete("/deleteDiagnosis/:id", diagnosisHandler.Delete)

	occupation := api.Group("/occupation", guard)
	occupation.Post("/addOccupation", occupationHandler.Create)
	occupation.Get("/getOccupations", occupationHandler.List)
	occupation.Put("/getOccupationById/:id", occupationHandler.Get)
	occupation.Put("/updateOccupation/:id", occupationHandler.Update)
	occupation.Delete("/deleteOccupation/:id", occupationHandler.Delete)

	staff := api.Group("/staff", guard)
	staff.Post("/addStaff", staffHandler.Create)
	staff.Get("/getStaff/:id", staffHandler.ListByCenter)
	staff.Get("/getIRStaff/:id", staffHandler.ListIR)
	staff.Get("/getOtherStaff/:id", staffHandler.ListOther)
	staff.Put("/getStaffById/:id", staffHandler.Get)
	staff.Put("/updateStaff/:id", staffHandler.Update)
	staff.Delete("/deleteStaff/:id", staffHandler.Delete)
	staff.Post("/searchStaff/:id", staffHandler.Search)
	staff.Get("/getStaffExcel", staffHandler.DownloadExcel)
}
