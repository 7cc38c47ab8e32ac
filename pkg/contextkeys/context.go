package contextkeys

// Кастомный тип, чтобы избежать коллизий ключей в context
type contextKey string

// DBContextKey - ключ, по которому хранится *gorm.DB (пул или транзакция)
const DBContextKey = contextKey("db")

// CurrentUserKey - ключ, по которому AuthMiddleware кладет *models.User
const CurrentUserKey = contextKey("current_user")
