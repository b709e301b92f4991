package entity

import "time"

type FileMetadata struct {
	ID          string `json:"id" firestore:"id"`
	OwnerID     string `json:"owner_id" firestore:"ownerId"`
	FileType    string `json:"file_type" firestore:"fileType"` // avatar, attachment, portfolio
	Path        string `json:"path" firestore:"path"`
	Size        int64  `json:"size" firestore:"size"`
	ContentType string `json:"content_type" firestore:"contentType"`
	RefType     string `json:"ref_type,omitempty" firestore:"refType,omitempty"`
	RefID       string `json:"ref_id,omitempty" firestore:"refId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
