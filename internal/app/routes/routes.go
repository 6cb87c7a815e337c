package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeforms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	pageController *controllers.PageController,
	collegeFormController *controllers.CollegeFormController,
) {
	// Exact paths only: /list/ is unknown, not a redirect
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.GET("/", pageController.Index)
	router.GET("/get", collegeFormController.GetByID)
	router.GET("/list", collegeFormController.List)

	router.POST("/create", collegeFormController.Create)
	router.POST("/update", collegeFormController.Update)
	router.POST("/delete", collegeFormController.Delete)

	// Unknown paths and methods get an empty 404
	router.HandleMethodNotAllowed = false
	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})
}
