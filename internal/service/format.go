package service

import "FileHub/model"

// FileView is the wire shape of a file node. ParentID renders as the
// literal 0 for root-level nodes.
type FileView struct {
	ID       uint64 `json:"id"`
	UserID   uint64 `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID uint64 `json:"parentId"`
}

// FormatFile is the single mapping from a metadata record to its wire
// shape, shared by every handler that returns a file.
func FormatFile(node *model.FileNode) FileView {
	return FileView{
		ID:       node.ID,
		UserID:   node.UserID,
		Name:     node.Name,
		Type:     node.Type,
		IsPublic: node.IsPublic,
		ParentID: node.ParentID,
	}
}

// FormatFiles maps a listing page; it always yields a non-nil slice so
// an empty page serializes as [].
func FormatFiles(nodes []model.FileNode) []FileView {
	views := make([]FileView, 0, len(nodes))
	for i := range nodes {
		views = append(views, FormatFile(&nodes[i]))
	}
	return views
}
