package domain

import "time"

type Notification struct {
	ID           int64      `db:"id"`
	UserID       int64      `db:"user_id"`
	Type         string     `db:"type"`
	Title        string     `db:"title"`
	Message      string     `db:"message"`
	SensorID     *string    `db:"sensor_id"`
	EvacuationID *int64     `db:"evacuation_id"`
	IsRead       bool       `db:"is_read"`
	IsImportant  bool       `db:"is_important"`
	ReadAt       *time.Time `db:"read_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type NotificationView struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Message      string  `json:"message"`
	SensorID     *string `json:"sensor_id"`
	EvacuationID *int64  `json:"evacuation_id"`
	IsRead       bool    `json:"is_read"`
	IsImportant  bool    `json:"is_important"`
	ReadAt       *string `json:"read_at"`
	CreatedAt    string  `json:"created_at"`
}

func (n *Notification) View() *NotificationView {
	v := &NotificationView{
		ID:           n.ID,
		UserID:       n.UserID,
		Type:         n.Type,
		Title:        n.Title,
		Message:      n.Message,
		SensorID:     n.SensorID,
		EvacuationID: n.EvacuationID,
		IsRead:       n.IsRead,
		IsImportant:  n.IsImportant,
		CreatedAt:    n.CreatedAt.UTC().Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		t := n.ReadAt.UTC().Format(time.RFC3339)
		v.ReadAt = &t
	}
	return v
}
