package pages

import (
	"net/http"

	"awsomemath/internal/handlers"
)

// StartPage is the JSON body of GET /pages.
type StartPage struct {
	Welcome string `json:"welcome"`
	Pages   []Page `json:"pages"`
}

// List handles GET /pages.
func List(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, r, http.StatusOK, StartPage{Welcome: Welcome, Pages: Catalog()})
}
