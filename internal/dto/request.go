package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UploadFileRequest is the POST /files body. ParentID is a string with
// "0" meaning the root of the caller's tree; Data carries base64 bytes
// and is required for every type except folder.
type UploadFileRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}
