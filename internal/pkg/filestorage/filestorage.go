package filestorage

import (
	"mime/multipart"

	"github.com/kmuriuki/campusreg/internal/app/models"
)

// Storage defines the interface for document upload storage.
type Storage interface {
	// SaveUpload stores an uploaded file under a subdirectory and
	// returns a reference suitable for a document set.
	SaveUpload(fileHeader *multipart.FileHeader, subPath string) (models.FileRef, error)

	// DeleteFile removes a stored file by its accessible URL or path.
	DeleteFile(filePath string) error
}
