package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/respond"
	authhttp "github.com/Dipanshu0612/Time-Tracker-API/internal/auth/http"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth/credentials"
	authmw "github.com/Dipanshu0612/Time-Tracker-API/internal/auth/middleware"
	authrepo "github.com/Dipanshu0612/Time-Tracker-API/internal/auth/repository"
	authsvc "github.com/Dipanshu0612/Time-Tracker-API/internal/auth/service"
	projecthttp "github.com/Dipanshu0612/Time-Tracker-API/internal/projects/http"
	projectsvc "github.com/Dipanshu0612/Time-Tracker-API/internal/projects/service"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/ratelimit"
	summaryhttp "github.com/Dipanshu0612/Time-Tracker-API/internal/summary/http"
	summaryrepo "github.com/Dipanshu0612/Time-Tracker-API/internal/summary/repository"
	summarysvc "github.com/Dipanshu0612/Time-Tracker-API/internal/summary/service"
	taskhttp "github.com/Dipanshu0612/Time-Tracker-API/internal/tasks/http"
	tasksvc "github.com/Dipanshu0612/Time-Tracker-API/internal/tasks/service"
	entryhttp "github.com/Dipanshu0612/Time-Tracker-API/internal/timeentries/http"
	entrysvc "github.com/Dipanshu0612/Time-Tracker-API/internal/timeentries/service"
)

type V1Deps struct {
	DB          *sql.DB
	Credentials *credentials.Service
	// LoginLimiter guards /verify-user. nil disables throttling.
	LoginLimiter ratelimit.Limiter
}

// Services are built once per router; the summary exporter reuses Summaries.
type Services struct {
	Projects  *projectsvc.ProjectService
	Summaries *summarysvc.SummaryService
}

func NewServices(db *sql.DB) Services {
	projects := projectsvc.NewProjectService(db)
	return Services{
		Projects:  projects,
		Summaries: summarysvc.NewSummaryService(projects, summaryrepo.NewSummaryRepository(db)),
	}
}

func RegisterV1(r gin.IRouter, dep V1Deps, svc Services) {
	r.GET("/", welcome)

	authService := authsvc.NewAuthService(authrepo.NewUserRepository(dep.DB), dep.Credentials)
	var loginGuards []gin.HandlerFunc
	if dep.LoginLimiter != nil {
		loginGuards = append(loginGuards, ratelimit.Middleware(dep.LoginLimiter))
	}
	authhttp.New(authService).Register(r, loginGuards...)

	summaryhttp.New(svc.Summaries).Register(r)

	private := r.Group("")
	private.Use(authmw.BearerAuth(dep.Credentials))

	projecthttp.New(svc.Projects).Register(private)
	taskhttp.New(tasksvc.NewTaskService(dep.DB, svc.Projects)).Register(private)
	entryhttp.New(entrysvc.NewEntryService(dep.DB, svc.Projects)).Register(private)
}

func welcome(c *gin.Context) {
	respond.OK(c, gin.H{
		"message":     "Welcome to the time tracker API!",
		"description": "A RESTful API to help freelancers track time spent on projects and generate work summaries.",
	})
}
