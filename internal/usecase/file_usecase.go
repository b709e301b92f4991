package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/internal/domain/service"
	"skillswap/pkg/errors"
)

var allowedFileTypes = map[string]bool{
	"avatar":     true,
	"attachment": true,
	"portfolio":  true,
}

// Avatars and portfolio pieces are meant to be seen; attachments are
// private to their owner.
var publicFileTypes = map[string]bool{
	"avatar":    true,
	"portfolio": true,
}

type FileUseCase struct {
	storage  service.FileUploadService
	metaRepo repository.FileMetadataRepository
	maxSize  int64
}

func NewFileUseCase(storage service.FileUploadService, metaRepo repository.FileMetadataRepository, maxSizeMB int64) *FileUseCase {
	return &FileUseCase{
		storage:  storage,
		metaRepo: metaRepo,
		maxSize:  maxSizeMB * 1024 * 1024,
	}
}

type UploadInput struct {
	File        io.Reader
	Filename    string
	FileType    string
	ContentType string
	Size        int64
	RefType     string
	RefID       string
}

func (uc *FileUseCase) Upload(ctx context.Context, ownerID string, input UploadInput) (*entity.FileMetadata, error) {
	if !allowedFileTypes[input.FileType] {
		return nil, errors.BadRequest("File type must be avatar, attachment or portfolio", nil)
	}
	if input.Size > uc.maxSize {
		return nil, errors.BadRequest("File exceeds the maximum upload size", nil)
	}

	path, size, err := uc.storage.UploadFile(ctx, input.File, input.FileType, input.Filename)
	if err != nil {
		return nil, errors.Internal("Failed to store file", err)
	}

	metadata := &entity.FileMetadata{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		FileType:    input.FileType,
		Path:        path,
		Size:        size,
		ContentType: input.ContentType,
		RefType:     input.RefType,
		RefID:       input.RefID,
		CreatedAt:   time.Now(),
	}

	if err := uc.metaRepo.Create(ctx, metadata); err != nil {
		// Orphaned file on disk is better than metadata without a file.
		_ = uc.storage.DeleteFile(ctx, path)
		return nil, err
	}

	return metadata, nil
}

func (uc *FileUseCase) Open(ctx context.Context, fileID, userID, userRole string) (*entity.FileMetadata, io.ReadCloser, error) {
	metadata, err := uc.metaRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, nil, errors.NotFound("File", err)
	}

	if !publicFileTypes[metadata.FileType] && metadata.OwnerID != userID && userRole != entity.RoleAdmin {
		return nil, nil, errors.Forbidden("You don't have permission to read this file", nil)
	}

	reader, err := uc.storage.OpenFile(ctx, metadata.Path)
	if err != nil {
		return nil, nil, errors.NotFound("File", err)
	}

	return metadata, reader, nil
}

func (uc *FileUseCase) Delete(ctx context.Context, fileID, userID, userRole string) error {
	metadata, err := uc.metaRepo.GetByID(ctx, fileID)
	if err != nil {
		return errors.NotFound("File", err)
	}

	if metadata.OwnerID != userID && userRole != entity.RoleAdmin {
		return errors.Forbidden("You don't have permission to delete this file", nil)
	}

	if err := uc.storage.DeleteFile(ctx, metadata.Path); err != nil {
		return errors.Internal("Failed to delete file", err)
	}

	return uc.metaRepo.Delete(ctx, fileID)
}
