package handler

import (
	"net/http"

	"business-dashboard-backend/internal/action"

	"github.com/gin-gonic/gin"
)

// renderResult maps an orchestrator result onto the HTTP response: redirects
// use 303 so the browser re-fetches the listing with GET, form errors render
// the {errors, message} shape the form components consume.
func renderResult(c *gin.Context, res action.Result) {
	switch res.Kind {
	case action.KindRedirect:
		c.Redirect(http.StatusSeeOther, res.Target)
	case action.KindFormError:
		body := gin.H{"message": res.Message}
		if len(res.Errors) > 0 {
			body["errors"] = res.Errors
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case action.KindDone:
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
}
