package models

import "time"

// AdminUser is a console operator from the "admin_users" collection.
type AdminUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email" validate:"required,email"`
	DisplayName string    `json:"displayName,omitempty"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ImageAsset is an entry in the shared image library. URL points at the
// uploaded object in the blob store.
type ImageAsset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	URL         string    `json:"url"`
	StoragePath string    `json:"storagePath,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
