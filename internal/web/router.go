package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manishasuddala09/customercrudfrontend/internal/api"
	"github.com/manishasuddala09/customercrudfrontend/internal/middleware"
)

// SetupRouter wires the navigable routes to the page handlers. templatesGlob
// points at the HTML templates so tests can load them from their own
// working directory.
func SetupRouter(svc api.Service, templatesGlob string, perPage int) *gin.Engine {
	h := NewHandler(svc, perPage)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.LoadHTMLGlob(templatesGlob)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/customers")
	})

	customers := r.Group("/customers")
	{
		customers.GET("", h.CustomerList)
		customers.GET("/new", h.CustomerFormPage)
		customers.POST("/new", h.CustomerFormSubmit)
		customers.GET("/:id", h.CustomerDetail)
		customers.GET("/:id/edit", h.CustomerFormPage)
		customers.POST("/:id/edit", h.CustomerFormSubmit)
		customers.GET("/:id/delete", h.CustomerDeleteConfirm)
		customers.POST("/:id/delete", h.CustomerDelete)

		customers.GET("/:id/addresses/new", h.AddressFormPage)
		customers.POST("/:id/addresses/new", h.AddressFormSubmit)
		customers.GET("/:id/addresses/:addressId/edit", h.AddressFormPage)
		customers.POST("/:id/addresses/:addressId/edit", h.AddressFormSubmit)
		customers.POST("/:id/addresses/:addressId/delete", h.AddressDelete)
	}

	return r
}
