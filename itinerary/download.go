package itinerary

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"yatra/export"
	"yatra/models"
)

// POST /api/itineraries/export/pdf
func DownloadPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serveExport(w, r, "pdf", "application/pdf", export.PDF)
}

// POST /api/itineraries/export/docx
func DownloadDocx(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serveExport(w, r, "docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", export.Docx)
}

// serveExport renders the posted snapshot with one exporter and streams the
// artifact as an attachment. The renderer returns either complete bytes or
// an error; a failed export sends no partial output.
func serveExport(w http.ResponseWriter, r *http.Request, ext, contentType string,
	render func(models.ItinerarySnapshot) ([]byte, error)) {

	var snap models.ItinerarySnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(snap.Days) == 0 {
		http.Error(w, "Itinerary has no days", http.StatusBadRequest)
		return
	}

	data, err := render(snap)
	if err != nil {
		log.Printf("itinerary %s export failed: %v", ext, err)
		http.Error(w, "Failed to generate document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename=`+export.Filename(snap.TripName, ext))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
