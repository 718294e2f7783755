package mapper

import (
	"github.com/jongwon/todo-app/internal/adapter/http/dto"
	"github.com/jongwon/todo-app/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Email:     user.Email,
		Name:      copyString(user.Name),
		CreatedAt: formatTime(user.CreatedAt),
	}
}
