package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hazen1Yang/pathfinder-backend/services"
)

type CareerController struct {
	Catalog *services.CatalogService
}

func NewCareerController(catalog *services.CatalogService) *CareerController {
	return &CareerController{Catalog: catalog}
}

// List serves the career catalog, optionally narrowed by program id and a
// title search term. Program filter applies first, then the search.
func (cc *CareerController) List(c *gin.Context) {
	careers := cc.Catalog.Careers()
	if program := c.Query("program"); program != "" {
		careers = cc.Catalog.ByProgram(program)
	}
	if term := c.Query("q"); term != "" {
		careers = services.FilterByTitle(careers, term)
	}
	c.JSON(http.StatusOK, careers)
}

func (cc *CareerController) Get(c *gin.Context) {
	career, ok := cc.Catalog.Career(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
		return
	}
	c.JSON(http.StatusOK, career)
}

// ProgramCareers lists the careers a program leads to.
func (cc *CareerController) ProgramCareers(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Catalog.ByProgram(c.Param("id")))
}
