package models

import (
	"time"
)

// SiteID 站点是单例，永远只有 id=1 这一行。
// 并发创建时由主键约束保证只有一个赢家。
const SiteID uint = 1

type Site struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `json:"description"`
	CreatorID        uint      `gorm:"not null;index" json:"creator_id"`
	Creator          User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	EnableDownvotes  bool      `gorm:"default:true" json:"enable_downvotes"`
	OpenRegistration bool      `gorm:"default:true" json:"open_registration"`
	EnableNSFW       bool      `gorm:"default:false" json:"enable_nsfw"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SiteView 站点详情，附带创建者用户名和渲染后的描述
type SiteView struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	DescriptionHTML  string    `json:"description_html"`
	CreatorID        uint      `json:"creator_id"`
	CreatorName      string    `json:"creator_name"`
	EnableDownvotes  bool      `json:"enable_downvotes"`
	OpenRegistration bool      `json:"open_registration"`
	EnableNSFW       bool      `json:"enable_nsfw"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
