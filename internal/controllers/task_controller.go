package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager-be/internal/entities"
	"taskmanager-be/internal/models"
	"taskmanager-be/internal/service"
)

type TaskController struct {
	taskService service.TaskService
}

func NewTaskController(taskService service.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

// CreateTask handles POST /allTasks/
func (tc *TaskController) CreateTask(c *gin.Context) {
	var task entities.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		writeBindError(c, err)
		return
	}

	id, err := tc.taskService.Create(c.Request.Context(), &task)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Success(models.CreateResponse{ID: id}, "Task Created"))
}

// ListTasks handles GET /allTasks/ - returns up to 100 tasks as a bare array
func (tc *TaskController) ListTasks(c *gin.Context) {
	tasks, err := tc.taskService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask handles PUT /allTasks/:taskId
func (tc *TaskController) UpdateTask(c *gin.Context) {
	taskID := c.Param("taskId")

	var task entities.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		writeBindError(c, err)
		return
	}

	if err := tc.taskService.Update(c.Request.Context(), taskID, &task); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Success(nil, "Task Updated Successfully"))
}

// DeleteTask handles DELETE /allTasks/:taskId
func (tc *TaskController) DeleteTask(c *gin.Context) {
	taskID := c.Param("taskId")

	if err := tc.taskService.Delete(c.Request.Context(), taskID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Success(nil, "Task Deleted Successfully"))
}
