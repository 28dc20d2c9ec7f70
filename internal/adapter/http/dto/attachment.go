package dto

type AttachmentItem struct {
	ID           uint64 `json:"id"`
	TacheID      uint64 `json:"tacheId"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Mimetype     string `json:"mimetype"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	CreatedAt    string `json:"createdAt"`
}
