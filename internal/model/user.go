package model

import "time"

// User — учётная запись владельца секретов.
// Password хранит bcrypt-хеш, никогда не сырой пароль.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
