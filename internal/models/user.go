package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // bcrypt hash
	Avatar       string    `gorm:"default:🌱" json:"avatar"`
	Bio          string    `gorm:"size:300" json:"bio"`
	Admin        bool      `gorm:"default:false;index" json:"admin"`
	Banned       bool      `gorm:"default:false;index" json:"banned"`
	ShowNSFW     bool      `gorm:"default:false" json:"show_nsfw"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserView 对外展示的用户信息（管理员列表、封禁列表、搜索结果共用）
type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	Admin     bool      `json:"admin"`
	Banned    bool      `json:"banned"`
	CreatedAt time.Time `json:"created_at"`
}
