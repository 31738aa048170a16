package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/travelprojects-api/dto"
	"github.com/travelprojects-api/services"
)

// ProjectController handles travel project API endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// RegisterRoutes registers project routes
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", c.ListProjects)
		projects.POST("", c.CreateProject)
		projects.GET("/:id", c.GetProject)
		projects.PUT("/:id", c.UpdateProject)
		projects.PATCH("/:id", c.UpdateProject)
		projects.DELETE("/:id", c.DeleteProject)
	}
}

// ListProjects returns all projects, newest first
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	projects, err := c.projectService.ListProjects()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// GetProject returns one project with its ordered place list
func (c *ProjectController) GetProject(ctx *gin.Context) {
	project, err := c.projectService.GetProjectDetail(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// CreateProject creates a project, optionally with inline places
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// UpdateProject updates a project's name, description or start date
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project unless one of its places is visited
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	if err := c.projectService.DeleteProject(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
