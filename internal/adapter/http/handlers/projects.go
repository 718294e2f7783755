package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jongwon/todo-app/internal/adapter/http/dto"
	"github.com/jongwon/todo-app/internal/adapter/http/mapper"
	"github.com/jongwon/todo-app/internal/adapter/http/middleware"
	"github.com/jongwon/todo-app/internal/adapter/http/validation"
	"github.com/jongwon/todo-app/internal/core/ports"
	"github.com/jongwon/todo-app/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListProjects, "failed to list projects")
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	project, err := h.projectService.CreateProject(
		c.Request.Context(),
		middleware.GetCaller(c),
		validation.BuildCreateProjectInput(req),
	)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateProject, "failed to create project")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, apierrors.MsgProjectNotFound)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetProject, "failed to get project", zap.String("project_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectDetail(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, apierrors.MsgProjectNotFound)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidProjectPayload)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), middleware.GetCaller(c), id, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateProject, "failed to update project", zap.String("project_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

// DeleteProject soft-deletes the project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, apierrors.MsgProjectNotFound)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteProject, "failed to delete project", zap.String("project_id", id))
		return
	}

	c.JSON(http.StatusOK, apierrors.CreateMessage(apierrors.MsgProjectDeleted, middleware.GetLang(c)))
}
