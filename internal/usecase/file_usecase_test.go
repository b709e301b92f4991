package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/domain/entity"
)

type memFileMetadataRepo struct {
	files map[string]*entity.FileMetadata
}

func newMemFileMetadataRepo() *memFileMetadataRepo {
	return &memFileMetadataRepo{files: make(map[string]*entity.FileMetadata)}
}

func (r *memFileMetadataRepo) Create(_ context.Context, metadata *entity.FileMetadata) error {
	r.files[metadata.ID] = metadata
	return nil
}

func (r *memFileMetadataRepo) GetByID(_ context.Context, id string) (*entity.FileMetadata, error) {
	metadata, ok := r.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s not found", id)
	}
	return metadata, nil
}

func (r *memFileMetadataRepo) Delete(_ context.Context, id string) error {
	delete(r.files, id)
	return nil
}

type memStorage struct {
	blobs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (s *memStorage) UploadFile(_ context.Context, file io.Reader, fileType, filename string) (string, int64, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", 0, err
	}
	path := fileType + "/" + filename
	s.blobs[path] = data
	return path, int64(len(data)), nil
}

func (s *memStorage) OpenFile(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.blobs[path]
	if !ok {
		return nil, fmt.Errorf("no blob at %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) DeleteFile(_ context.Context, path string) error {
	delete(s.blobs, path)
	return nil
}

func newFileEnv() (*memFileMetadataRepo, *memStorage, *FileUseCase) {
	metaRepo := newMemFileMetadataRepo()
	storage := newMemStorage()
	return metaRepo, storage, NewFileUseCase(storage, metaRepo, 10)
}

func uploadFile(t *testing.T, uc *FileUseCase, ownerID, fileType, content string) *entity.FileMetadata {
	t.Helper()
	metadata, err := uc.Upload(context.Background(), ownerID, UploadInput{
		File:        strings.NewReader(content),
		Filename:    "doc.txt",
		FileType:    fileType,
		ContentType: "text/plain",
		Size:        int64(len(content)),
	})
	require.NoError(t, err)
	return metadata
}

func TestUploadRejectsUnknownType(t *testing.T) {
	_, _, uc := newFileEnv()

	_, err := uc.Upload(context.Background(), "user1", UploadInput{
		File:     strings.NewReader("x"),
		Filename: "x.bin",
		FileType: "backup",
		Size:     1,
	})
	assert.Error(t, err)
}

func TestOpenAttachmentOwnerOnly(t *testing.T) {
	_, _, uc := newFileEnv()
	ctx := context.Background()
	metadata := uploadFile(t, uc, "user1", "attachment", "private notes")

	// Owner reads it back.
	_, reader, err := uc.Open(ctx, metadata.ID, "user1", entity.RoleClient)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	reader.Close()
	assert.Equal(t, "private notes", string(data))

	// Another user does not.
	_, _, err = uc.Open(ctx, metadata.ID, "user2", entity.RoleFreelancer)
	assert.Error(t, err)

	// Admins do.
	_, reader, err = uc.Open(ctx, metadata.ID, "moderator", entity.RoleAdmin)
	require.NoError(t, err)
	reader.Close()
}

func TestOpenPublicTypesForAnyone(t *testing.T) {
	_, _, uc := newFileEnv()
	ctx := context.Background()

	for _, fileType := range []string{"avatar", "portfolio"} {
		metadata := uploadFile(t, uc, "user1", fileType, "public bytes")
		_, reader, err := uc.Open(ctx, metadata.ID, "user2", entity.RoleClient)
		require.NoError(t, err)
		reader.Close()
	}
}

func TestDeleteFileOwnerOrAdmin(t *testing.T) {
	metaRepo, storage, uc := newFileEnv()
	ctx := context.Background()
	metadata := uploadFile(t, uc, "user1", "attachment", "bytes")

	assert.Error(t, uc.Delete(ctx, metadata.ID, "user2", entity.RoleFreelancer))

	require.NoError(t, uc.Delete(ctx, metadata.ID, "user1", entity.RoleClient))
	assert.Empty(t, metaRepo.files)
	assert.Empty(t, storage.blobs)
}
