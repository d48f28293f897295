package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/theflightrs/Speedchannel-Ultimate/internal/auth"
)

// NewRouter mounts the API. Everything under /api requires a valid
// bearer token; per-operation authorization lives in the usecases.
func NewRouter(h *Handlers, authmw *auth.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(authmw.Authenticate)

		r.Route("/channels", func(r chi.Router) {
			r.Post("/", h.createChannel)
			r.Get("/", h.listChannels)

			r.Route("/{channelID}", func(r chi.Router) {
				r.Get("/", h.getChannel)
				r.Put("/", h.updateChannel)
				r.Delete("/", h.deleteChannel)

				r.Get("/members", h.listMembers)
				r.Delete("/members/{userID}", h.removeMember)
				r.Put("/members/{userID}/role", h.assignRole)

				r.Post("/join-requests", h.knock)
				r.Get("/join-requests", h.listKnocks)

				r.Post("/invitations", h.invite)
				r.Post("/invitations/respond", h.respondToInvitation)
				r.Delete("/invitations/{recipientID}", h.retractInvitation)

				r.Post("/messages", h.sendMessage)
				r.Get("/messages", h.listMessages)
			})
		})

		r.Post("/join-requests/{requestID}/respond", h.respondToKnock)
		r.Get("/invitations", h.listInvitations)
		r.Delete("/messages/{messageID}", h.deleteMessage)
		r.Post("/admin/messages/purge", h.purgeMessages)

		r.Get("/users", h.searchUsers)

		r.Get("/settings", h.listSettings)
		r.Put("/settings/{key}", h.setSetting)
	})

	return r
}
