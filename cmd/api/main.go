// @title Kideo API
// @description API for family chore tracker "Kideo"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/kideo/kideo/internal/api"
	"github.com/kideo/kideo/internal/repository"
	"github.com/kideo/kideo/internal/service"
	"github.com/kideo/kideo/pkg/cleanup"
	"github.com/kideo/kideo/pkg/config"
	jwtservice "github.com/kideo/kideo/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	usersRepo := repository.NewUsersRepo(pool)
	familiesRepo := repository.NewFamiliesRepo(pool)
	kidsRepo := repository.NewKidsRepo(pool)
	tasksRepo := repository.NewTasksRepo(pool)
	completionsRepo := repository.NewCompletionsRepo(pool)
	rewardsRepo := repository.NewRewardsRepo(pool)
	redemptionsRepo := repository.NewRedemptionsRepo(pool)
	badgesRepo := repository.NewBadgesRepo(pool)

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo, familiesRepo),
		FamilyService:      service.NewFamilyService(familiesRepo),
		KidsService:        service.NewKidsService(kidsRepo, familiesRepo, badgesRepo),
		TasksService:       service.NewTasksService(tasksRepo, familiesRepo),
		CompletionsService: service.NewCompletionsService(completionsRepo, tasksRepo, kidsRepo, familiesRepo, badgesRepo),
		RewardsService:     service.NewRewardsService(rewardsRepo, redemptionsRepo, kidsRepo, familiesRepo),
		BadgesService:      service.NewBadgesService(badgesRepo, completionsRepo, kidsRepo, familiesRepo),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
