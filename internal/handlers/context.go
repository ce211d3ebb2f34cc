package handlers

import (
	"github.com/gin-gonic/gin"

	"portal-calma/internal/models"
)

// currentUser pulls the account loaded by the session middleware.
func currentUser(c *gin.Context) (*models.PortalUser, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.PortalUser)
	return user, ok
}

// currentCompanyID resolves the tenant for the request. Admins may inspect
// any tenant via the company_id query parameter; everyone else is scoped to
// their own company.
func currentCompanyID(c *gin.Context) string {
	user, ok := currentUser(c)
	if !ok {
		return ""
	}
	if user.Role == models.RoleAdmin {
		if override := c.Query("company_id"); override != "" {
			return override
		}
	}
	return user.CompanyID
}
