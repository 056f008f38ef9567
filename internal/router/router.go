package routes

import (
	"net/http"

	_ "github.com/oggyb/pagetracker/internal/docs" // swagger docs
	"github.com/oggyb/pagetracker/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home HomeHandler
	Page PageHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type PageHandler interface {
	GetPage(w http.ResponseWriter, r *http.Request)
	GetAccessCount(w http.ResponseWriter, r *http.Request)
	GetTracked(w http.ResponseWriter, r *http.Request)
	ListTracked(w http.ResponseWriter, r *http.Request)
	ControlScheduler(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("GET /pages", d.Page.GetPage)
	mux.HandleFunc("GET /pages/count", d.Page.GetAccessCount)
	mux.HandleFunc("GET /pages/ledger", d.Page.GetTracked)
	mux.HandleFunc("GET /pages/tracked", d.Page.ListTracked)
	mux.HandleFunc("POST /scheduler", d.Page.ControlScheduler)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
