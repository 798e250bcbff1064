package dto

import (
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/services"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64      `json:"id"`
	UserName string      `json:"user_name"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// SessionDTO represents the logged-in user and the menu entries they may open
type SessionDTO struct {
	User UserDTO             `json:"user"`
	Menu []services.MenuItem `json:"menu"`
}

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID       uint64 `json:"id"`
	TeamName string `json:"team_name"`
}

// NameDTO is one entry of a task form lookup table
type NameDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		UserName: user.UserName,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// ToSessionDTO converts a logged-in user to SessionDTO
func ToSessionDTO(user models.User) SessionDTO {
	return SessionDTO{
		User: ToUserDTO(user),
		Menu: services.Menu(user.Role),
	}
}

// ToTeamDTO converts a Team model to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		ID:       team.ID,
		TeamName: team.TeamName,
	}
}

// ToNameDTOs converts a lookup table
func ToNameDTOs(refs []repository.NameRef) []NameDTO {
	items := make([]NameDTO, len(refs))
	for i, ref := range refs {
		items[i] = NameDTO{ID: ref.ID, Name: ref.Name}
	}
	return items
}
