package filestorage

import (
	"mime/multipart"
)

// FileStorage is the blob store the services write attachments through.
// Contents pass through untouched; the store returns an opaque URL that
// the ledger keeps as a weak reference.
type FileStorage interface {
	// SaveFile stores an uploaded file under the given subdirectory and
	// returns its accessible URL.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing
	// file is not an error.
	DeleteFile(fileURL string) error
}
