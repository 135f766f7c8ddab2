package catalog

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"yatra/globals"
	"yatra/middleware"
	"yatra/utils"
)

// Handlers exposes the catalog over HTTP through one shared loader; the
// stale-lookup guard inside it is keyed per caller session.
type Handlers struct {
	loader *Loader
}

func NewHandlers() *Handlers {
	client := NewClient(
		globals.Getenv("PLACES_API_URL", "https://api.geoapify.com/v2/places"),
		globals.Getenv("PLACES_API_KEY", ""),
		5,
	)
	return &Handlers{loader: NewLoader(client)}
}

// GET /api/destinations
func (h *Handlers) GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Destinations())
}

// sessionKey identifies the caller so re-selections within one session can
// supersede each other without touching anyone else's lookups.
func sessionKey(r *http.Request) string {
	if id := middleware.RequestingUserID(r); id != "" {
		return id
	}
	return r.Header.Get("x-session-id")
}

// GET /api/destinations/:id/details
// Joined hotels/restaurants/attractions for one destination. Answers 204 when
// the same session superseded this lookup with a newer selection while it was
// in flight.
func (h *Handlers) GetDestinationDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dest := DestinationByID(ps.ByName("id"))
	if dest == nil {
		http.Error(w, "Destination not found", http.StatusNotFound)
		return
	}

	details, fresh, err := h.loader.Details(r.Context(), sessionKey(r), dest.Name)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error loading destination details")
		return
	}
	if !fresh {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": details})
}
