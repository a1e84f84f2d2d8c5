package v1

// UserInfoPayload - профиль, присланный клиентом от внешнего провайдера
// @Description Профиль пользователя от внешнего провайдера
type UserInfoPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthRequest DTO для логина через внешнего провайдера
// @Description DTO для логина через внешнего провайдера
type AuthRequest struct {
	Token    string          `json:"token" validate:"required"`
	UserInfo UserInfoPayload `json:"userInfo"`
}

// UserResponse DTO с данными пользователя
// @Description DTO с данными пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse DTO для ответа на логин
// @Description DTO для ответа на логин: сессионный токен и пользователь
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateIncidentRequest DTO для подачи репорта.
// Координаты - указатели: ноль - валидное значение, отсутствие поля - нет.
// @Description DTO для подачи репорта о происшествии
type CreateIncidentRequest struct {
	Lat         *float64 `json:"lat" validate:"required,latitude"`
	Long        *float64 `json:"long" validate:"required,longitude"`
	Description string   `json:"description" validate:"required"`
	IsAnonymous bool     `json:"is_anonymous"`
}

// CreateIncidentResponse DTO для ответа на подачу репорта
// @Description DTO для ответа на подачу репорта
type CreateIncidentResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// IncidentResponse DTO одного репорта в выдаче.
// Флаги verified/is_anonymous отдаются как 0/1 по контракту дашборда.
// @Description DTO одного репорта о происшествии
type IncidentResponse struct {
	ID          int64   `json:"id"`
	UserID      *int64  `json:"user_id"`
	Lat         float64 `json:"lat"`
	Long        float64 `json:"long"`
	Description string  `json:"description"`
	Timestamp   string  `json:"timestamp"`
	Verified    int     `json:"verified"`
	IsAnonymous int     `json:"is_anonymous"`
}

// ListIncidentsResponse DTO для выдачи репортов за окно времени
// @Description DTO для выдачи репортов за окно времени
type ListIncidentsResponse struct {
	Incidents []*IncidentResponse `json:"incidents"`
}
