// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withMetrics, withSecurityHeaders)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// promhttp negotiates its own compression
	router.Handle(metricsPath, promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip, middleware.RequestSize(maxBodyBytes))
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)
			r.Get("/auth/session", h.session)
			r.Post("/auth/first-password", h.setFirstPassword)

			r.Route("/users", func(r chi.Router) {
				r.With(h.requireAdmin).Get("/", h.listUsers)
				r.With(h.requireAdmin).Post("/", h.createUser)
				r.Patch("/{id}", h.updateUser)
				r.With(h.requireAdmin).Delete("/{id}", h.deleteUser)
				r.Put("/{id}/password", h.changePassword)
				r.Put("/{id}/picture", h.updateProfilePicture)
			})

			r.Get("/info", h.getInfoPage)
			r.With(h.requireAdmin).Put("/info", h.updateInfoPage)

			r.Route("/bulletin", func(r chi.Router) {
				r.Get("/", h.listPosts)
				r.Post("/", h.createPost)
				r.Post("/{id}/view", h.viewPost)
				r.Post("/{id}/vote", h.votePost)
			})

			r.Route("/tickets", func(r chi.Router) {
				r.Get("/", h.listTickets)
				r.Post("/", h.createTicket)
				r.Post("/{id}/view", h.viewTicket)
				r.Get("/{id}/comments", h.listComments)
				r.Post("/{id}/comments", h.addComment)
				r.Post("/{id}/assignees", h.assignTicket)
				r.Delete("/{id}/assignees/{assignee}", h.unassignTicket)
				r.Put("/{id}/status", h.updateTicketStatus)
			})

			r.Route("/reminders", func(r chi.Router) {
				r.Get("/", h.listReminders)
				r.Post("/", h.createReminder)
				r.Post("/{id}/toggle", h.toggleReminder)
				r.Delete("/{id}", h.deleteReminder)
			})

			r.Route("/food", func(r chi.Router) {
				r.Get("/", h.listFoodItems)
				r.Post("/", h.createFoodItem)
				r.Post("/{id}/view", h.viewFoodItem)
				r.Post("/{id}/vote", h.voteFoodItem)
			})

			r.Route("/meal-plan", func(r chi.Router) {
				r.Get("/", h.weeklyPlan)
				r.Put("/{day}", h.planMeal)
				r.Delete("/{day}", h.removePlannedMeal)
				r.Put("/{day}/cooking", h.updateCookingDetails)
				r.Post("/{day}/paid", h.markAsPaid)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", h.listWishlistItems)
				r.Post("/", h.createWishlistItem)
				r.Post("/{id}/view", h.viewWishlistItem)
				r.Post("/{id}/vote", h.voteWishlistItem)
				r.With(h.requireAdmin).Put("/{id}/status", h.updateWishlistStatus)
			})
		})
	})

	return router
}
