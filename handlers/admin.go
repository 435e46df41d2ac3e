package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"waterme/db"
)

func Home(c *gin.Context) {
	c.String(http.StatusOK, "Water Me API")
}

type AdminHandler struct {
	DB *sql.DB
}

func NewAdminHandler(conn *sql.DB) *AdminHandler {
	return &AdminHandler{DB: conn}
}

// UpdateDBLight is the one-off migration route for databases created before
// the light_level column existed. Bare text on purpose.
func (h *AdminHandler) UpdateDBLight(c *gin.Context) {
	if err := db.EnsureLightLevel(h.DB); err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
		return
	}
	c.String(http.StatusOK, "Success! light_level column created.")
}
