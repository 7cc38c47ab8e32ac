package dto

// UpdateSkillsRequest - замена списка навыков.
// required на слайсе отсекает только nil (отсутствующее поле);
// пустой список валиден - им навыки очищаются. dive проверяет, что
// каждый элемент - непустая строка; если клиент прислал не-список,
// ошибка возникает еще при биндинге JSON (400).
type UpdateSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,dive,min=1"`
}

// UpdateAvailabilityRequest - доступность в часах; 0 = недоступен
type UpdateAvailabilityRequest struct {
	Hours int `json:"hours" validate:"min=0"`
}

// UpdateLocationRequest - обновление координат, обе обязательны
type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// NearbyQuery - параметры поиска исполнителей рядом
type NearbyQuery struct {
	Lat *float64 `form:"lat" validate:"required"`
	Lng *float64 `form:"lng" validate:"required"`
}

// NearbyWorker - результат поиска рядом.
// Дистанция - евклидова, в градусах (заглушка, не геодезия).
type NearbyWorker struct {
	ID       string   `json:"id"`
	Skills   []string `json:"skills"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Distance float64  `json:"distance"`
}
