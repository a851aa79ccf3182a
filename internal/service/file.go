package service

import (
	"FileHub/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PageSize is the fixed listing page size.
const PageSize = 20

// RootParentID marks nodes at the root of a user's tree.
const RootParentID = 0

// Files is the file metadata store: a durable tree of file and folder
// records queried by id, owner, and parent.
type Files struct {
	db *gorm.DB
}

// NewFiles creates the file metadata service.
func NewFiles(db *gorm.DB) *Files {
	return &Files{db: db}
}

// CreateFileParams describes a node to insert. LocalPath must be set
// for non-folder types; the caller persists the bytes first.
type CreateFileParams struct {
	OwnerID   uint64
	Name      string
	Type      string
	ParentID  uint64
	IsPublic  bool
	LocalPath string
}

func validType(t string) bool {
	switch t {
	case model.TypeFolder, model.TypeFile, model.TypeImage:
		return true
	}
	return false
}

// CheckParent validates that a parent reference points at an existing
// folder. The parent's owner is intentionally not cross-checked against
// the creator; the two error cases are reported separately.
func (f *Files) CheckParent(ctx context.Context, parentID uint64) error {
	if parentID == RootParentID {
		return nil
	}
	var parent model.FileNode
	err := f.db.WithContext(ctx).Where("id = ?", parentID).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrParentNotFound
	}
	if err != nil {
		return err
	}
	if parent.Type != model.TypeFolder {
		return ErrParentNotFolder
	}
	return nil
}

// Create validates the node's own fields and inserts it. All fields
// except IsPublic are immutable afterwards. The parent reference is
// validated once, by CheckParent: callers run it before persisting any
// bytes, so a rejected upload never allocates a blob.
func (f *Files) Create(ctx context.Context, p CreateFileParams) (*model.FileNode, error) {
	if p.Name == "" {
		return nil, ErrMissingName
	}
	if !validType(p.Type) {
		return nil, ErrMissingType
	}
	if p.Type != model.TypeFolder && p.LocalPath == "" {
		return nil, ErrMissingData
	}
	if p.Type == model.TypeFolder && p.LocalPath != "" {
		return nil, errors.New("folder cannot carry a local path")
	}

	node := &model.FileNode{
		UserID:    p.OwnerID,
		Name:      p.Name,
		Type:      p.Type,
		IsPublic:  p.IsPublic,
		ParentID:  p.ParentID,
		LocalPath: p.LocalPath,
	}
	if err := f.db.WithContext(ctx).Create(node).Error; err != nil {
		return nil, err
	}
	return node, nil
}

// GetByID returns a node regardless of owner.
func (f *Files) GetByID(ctx context.Context, id uint64) (*model.FileNode, error) {
	var node model.FileNode
	err := f.db.WithContext(ctx).Where("id = ?", id).First(&node).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// GetOwned returns a node only if it belongs to ownerID. Absent and
// not-owned are the same outcome.
func (f *Files) GetOwned(ctx context.Context, id, ownerID uint64) (*model.FileNode, error) {
	var node model.FileNode
	err := f.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&node).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// ListChildren returns one zero-indexed page of an owner's children
// under parentID, in insertion order. Plain skip/limit: no cross-page
// guarantee under concurrent inserts.
func (f *Files) ListChildren(ctx context.Context, ownerID, parentID uint64, page int) ([]model.FileNode, error) {
	if page < 0 {
		page = 0
	}
	var nodes []model.FileNode
	err := f.db.WithContext(ctx).
		Where("user_id = ? AND parent_id = ?", ownerID, parentID).
		Order("id ASC").
		Offset(page * PageSize).
		Limit(PageSize).
		Find(&nodes).Error
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// SetPublic flips visibility with a single UPDATE scoped to id and
// owner, then returns the fresh record. Absent maps to not-found, never
// to a permissions error.
func (f *Files) SetPublic(ctx context.Context, id, ownerID uint64, value bool) (*model.FileNode, error) {
	res := f.db.WithContext(ctx).
		Model(&model.FileNode{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("is_public", value)
	if res.Error != nil {
		return nil, res.Error
	}
	// RowsAffected is 0 both for a missing record and for a no-op
	// update to the same value, so existence needs the reload.
	return f.GetOwned(ctx, id, ownerID)
}

// Count returns the number of file nodes.
func (f *Files) Count(ctx context.Context) (int64, error) {
	var count int64
	err := f.db.WithContext(ctx).Model(&model.FileNode{}).Count(&count).Error
	return count, err
}

// Alive reports whether the backing database answers.
func (f *Files) Alive(ctx context.Context) bool {
	sqlDB, err := f.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}
