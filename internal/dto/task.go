package dto

import (
	"github.com/emreglvibecoder/darth-vader-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"baslik"`
	Completed bool   `json:"tamamlandi"`
	OwnerID   uint64 `json:"owner_id"`
}

// TaskCreatedResponse is returned after a task is stored
type TaskCreatedResponse struct {
	Message string `json:"mesaj"`
	ID      uint64 `json:"id"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		OwnerID:   task.OwnerID,
	}
}

// ToTaskDTOs converts tasks keeping their order; never returns nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, ToTaskDTO(task))
	}
	return dtos
}
