package handlers

import (
	"errors"
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

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskQuery)
		return
	}

	filter, err := validation.BuildTaskFilter(query)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidTaskQuery) {
			respondBadRequest(c, apierrors.MsgInvalidTaskQuery)
			return
		}
		respondError(c, err, apierrors.MsgFailListTask, "failed to list tasks")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), middleware.GetCaller(c), filter)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidTaskPayload) {
			respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
			return
		}
		respondError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetCaller(c), input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, apierrors.MsgTaskNotFound)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetCaller(c), id)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetTask, "failed to get task", zap.String("task_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, apierrors.MsgTaskNotFound)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidTaskPayload) {
			respondBadRequest(c, apierrors.MsgInvalidTaskPayload)
			return
		}
		respondError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.String("task_id", id))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetCaller(c), id, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.String("task_id", id))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, apierrors.MsgTaskNotFound)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetCaller(c), id); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.String("task_id", id))
		return
	}

	c.JSON(http.StatusOK, apierrors.CreateMessage(apierrors.MsgTaskDeleted, middleware.GetLang(c)))
}
