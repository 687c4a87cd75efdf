package handler

import (
	"time"

	"github.com/viddeck/viddeck/internal/domain"
)

// userDTO is the JSON representation of a user. The password hash is
// deliberately absent.
type userDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, Name: u.Name}
}

// debugUserDTO adds the creation time for the debug listing.
type debugUserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

func toDebugUserDTO(u domain.User) debugUserDTO {
	return debugUserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// fileDTO is the JSON representation of a stored upload.
type fileDTO struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
	URL          string `json:"url"`
}

func toFileDTO(f *domain.UploadedFile) fileDTO {
	return fileDTO{
		Filename:     f.StoredName,
		OriginalName: f.OriginalName,
		MimeType:     f.MimeType,
		Size:         f.SizeBytes,
		Path:         f.StoragePath,
		URL:          f.URL,
	}
}
