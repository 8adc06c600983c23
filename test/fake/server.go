/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fake implements an in-memory courier service.  It is used to test
// the acceptance harness itself, and to run the suites without a deployed
// service.
package fake

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/oapi-codegen/runtime"
)

type courierWrite struct {
	Login     string  `json:"login"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName,omitempty"`
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type okResult struct {
	OK bool `json:"ok"`
}

type loginResult struct {
	ID int `json:"id"`
}

type errorResult struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server serves the courier API from a Store.
type Server struct {
	store  *Store
	logger logr.Logger
}

func New(logger logr.Logger) *Server {
	return NewWithStore(NewStore(), logger)
}

func NewWithStore(store *Store, logger logr.Logger) *Server {
	return &Server{
		store:  store,
		logger: logger,
	}
}

// Store returns the backing store.
func (s *Server) Store() *Store {
	return s.store
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)

	router.Post("/api/v1/courier", s.registerCourier)
	router.Post("/api/v1/courier/login", s.loginCourier)
	router.Delete("/api/v1/courier/{id}", s.deleteCourier)

	return router
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.V(1).Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start), "traceparent", r.Header.Get("Traceparent"))
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, &errorResult{
		Code:    statusCode,
		Message: message,
	})
}

func (s *Server) registerCourier(w http.ResponseWriter, r *http.Request) {
	var request courierWrite

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if request.Login == "" || request.Password == "" {
		writeError(w, http.StatusBadRequest, "insufficient data to create an account")
		return
	}

	if err := s.store.Create(request.Login, request.Password, request.FirstName); err != nil {
		if errors.Is(err, ErrConflict) {
			writeError(w, http.StatusConflict, "this login is already in use")
			return
		}

		s.logger.Error(err, "failed to create courier")
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, &okResult{OK: true})
}

func (s *Server) loginCourier(w http.ResponseWriter, r *http.Request) {
	var request credentials

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if request.Login == "" || request.Password == "" {
		writeError(w, http.StatusBadRequest, "insufficient data to log in")
		return
	}

	id, err := s.store.Authenticate(request.Login, request.Password)
	if err != nil {
		writeError(w, http.StatusNotFound, "account not found")
		return
	}

	writeJSON(w, http.StatusOK, &loginResult{ID: id})
}

func (s *Server) deleteCourier(w http.ResponseWriter, r *http.Request) {
	var id int

	if err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true}); err != nil {
		writeError(w, http.StatusBadRequest, "invalid courier id")
		return
	}

	if err := s.store.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "courier with this id not found")
		return
	}

	writeJSON(w, http.StatusOK, &okResult{OK: true})
}
