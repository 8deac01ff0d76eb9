package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kideo/kideo/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	familyService      service.FamilyServiceI
	kidsService        service.KidsServiceI
	tasksService       service.TasksServiceI
	completionsService service.CompletionsServiceI
	rewardsService     service.RewardsServiceI
	badgesService      service.BadgesServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	FamilyService      service.FamilyServiceI
	KidsService        service.KidsServiceI
	TasksService       service.TasksServiceI
	CompletionsService service.CompletionsServiceI
	RewardsService     service.RewardsServiceI
	BadgesService      service.BadgesServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		familyService:      servicesOptions.FamilyService,
		kidsService:        servicesOptions.KidsService,
		tasksService:       servicesOptions.TasksService,
		completionsService: servicesOptions.CompletionsService,
		rewardsService:     servicesOptions.RewardsService,
		badgesService:      servicesOptions.BadgesService,
		jwtService:         servicesOptions.JwtService,
	}
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/family", s.GetFamily)
			r.Put("/family/multipliers", s.UpdateMultipliers)
			r.Delete("/family/multipliers", s.ResetMultipliers)

			r.Post("/kids", s.CreateKid)
			r.Get("/kids", s.GetKids)
			r.Get("/kids/{id}", s.GetKid)
			r.Delete("/kids/{id}", s.DeleteKid)
			r.Get("/kids/{id}/completions", s.GetKidCompletions)
			r.Get("/kids/{id}/redemptions", s.GetKidRedemptions)
			r.Get("/kids/{id}/badges", s.GetKidBadges)
			r.Get("/kids/{id}/progress", s.GetKidProgress)

			r.Post("/tasks", s.CreateTask)
			r.Get("/tasks", s.GetTasks)
			r.Put("/tasks/{id}", s.UpdateTask)
			r.Delete("/tasks/{id}", s.DeleteTask)

			r.Post("/completions", s.LogCompletion)
			r.Get("/completions/pending", s.GetPendingCompletions)
			r.Post("/completions/{id}/approve", s.ApproveCompletion)
			r.Post("/completions/{id}/reject", s.RejectCompletion)

			r.Post("/rewards", s.CreateReward)
			r.Get("/rewards", s.GetRewards)
			r.Put("/rewards/{id}", s.UpdateReward)
			r.Delete("/rewards/{id}", s.DeleteReward)

			r.Post("/redemptions", s.RequestRedemption)
			r.Get("/redemptions/pending", s.GetPendingRedemptions)
			r.Post("/redemptions/{id}/approve", s.ApproveRedemption)
			r.Post("/redemptions/{id}/reject", s.RejectRedemption)
			r.Post("/redemptions/{id}/fulfill", s.FulfillRedemption)

			r.Get("/badges", s.GetBadgeCatalog)
		})
	})
}

func (s *Server) Run(address string) error {
	s.registerRoutes()
	return http.ListenAndServe(address, s.mx)
}
