package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (string, error)
	DeleteFile(filePath string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return newError(KindStorage, err, "failed to create upload directory")
	}

	return nil
}

// SaveFile copies the upload to a uniquely named file in the upload directory
// and returns its path. The caller owns the file and must delete it.
func (s *storageService) SaveFile(file *multipart.FileHeader) (string, error) {
	if err := s.EnsureUploadDir(); err != nil {
		return "", err
	}

	filePath := filepath.Join(s.uploadPath, fmt.Sprintf("cv_%s.pdf", uuid.New().String()))

	src, err := file.Open()
	if err != nil {
		return "", newError(KindStorage, err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", newError(KindStorage, err, "failed to create destination file")
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return "", newError(KindStorage, err, "failed to save file")
	}

	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return "", newError(KindStorage, err, "failed to save file")
	}

	return filePath, nil
}

// DeleteFile removes a file written by SaveFile. A file that is already gone
// is not an error.
func (s *storageService) DeleteFile(filePath string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return newError(KindStorage, err, "failed to delete file")
	}
	return nil
}
