package model

import "time"

// Allowed FileNode types.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// FileNode is one record in a user's storage tree. Only IsPublic is
// mutable after creation; records are never physically deleted here.
type FileNode struct {
	ID uint64 `gorm:"primaryKey"`

	UserID uint64 `gorm:"column:user_id;index;not null"`

	Name string `gorm:"column:name;size:255;not null"`

	Type string `gorm:"column:type;size:16;not null"`

	IsPublic bool `gorm:"column:is_public;not null;default:false"`

	// 0 means the root of the owner's tree, otherwise the ID of a
	// folder node.
	ParentID uint64 `gorm:"column:parent_id;index;not null;default:0"`

	// Opaque blob handle. Empty for folders, always set for file and
	// image nodes. The metadata record does not own the bytes behind it.
	LocalPath string `gorm:"column:local_path;size:512;not null;default:''"`

	CreatedAt time.Time
}

// TableName returns the database table name.
func (FileNode) TableName() string {
	return "file_node"
}
