package dto

type CreateNotificationRequest struct {
	UserID       *int64  `json:"user_id" validate:"required"`
	Type         string  `json:"type" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Message      string  `json:"message" validate:"required"`
	SensorID     *string `json:"sensor_id"`
	EvacuationID *int64  `json:"evacuation_id"`
	IsImportant  *bool   `json:"is_important"`
}

type BroadcastRequest struct {
	Type        string  `json:"type" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Message     string  `json:"message" validate:"required"`
	SensorID    *string `json:"sensor_id"`
	IsImportant *bool   `json:"is_important"`
	RoleFilter  *string `json:"role_filter" validate:"omitempty,oneof=all resident expert emergency admin"`
}
