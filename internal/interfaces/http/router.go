package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huluca/repairshop-backend/internal/application/cleanup"
	"github.com/huluca/repairshop-backend/internal/application/notify"
	"github.com/huluca/repairshop-backend/internal/application/provision"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
	"github.com/huluca/repairshop-backend/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProvisionUC   *provision.UseCase
	FanoutUC      *notify.FanoutUseCase
	RepairReactor *notify.RepairReactor
	ChatReactor   *notify.ChatReactor
	CleanupUC     *cleanup.UseCase
	Verifier      repository.TokenVerifier
	JobsSecret    string
	Log           *logger.Logger
}

// Router registers the three endpoint families: authenticated callables,
// pipeline event endpoints, and scheduler job endpoints.
func Router(app *fiber.App, deps RouterDeps) {
	// Callables (require a verified ID token)
	api := app.Group("/api", AuthMiddleware(deps.Verifier))
	staffHandler := NewStaffHandler(deps.ProvisionUC)
	api.Post("/staff", staffHandler.Create)
	notificationHandler := NewNotificationHandler(deps.FanoutUC)
	api.Post("/notifications", notificationHandler.Send)

	// Event endpoints (invoked by the document-store pipeline)
	events := app.Group("/events")
	eventHandler := NewEventHandler(deps.RepairReactor, deps.ChatReactor, deps.Log)
	events.Post("/repairs/created", eventHandler.RepairCreated)
	events.Post("/repairs/updated", eventHandler.RepairUpdated)
	events.Post("/chats/created", eventHandler.ChatMessageCreated)

	// Job endpoints (invoked by the scheduler)
	jobs := app.Group("/jobs", RequireJobSecret(deps.JobsSecret))
	jobHandler := NewJobHandler(deps.CleanupUC, deps.Log)
	jobs.Post("/cleanup-repairs", jobHandler.CleanupRepairs)
	jobs.Post("/cleanup-tokens", jobHandler.CleanupTokens)
}
