package drivepath

import (
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
)

const (
	mimeTypeGoogleAppFolder = "application/vnd.google-apps.folder"
	mimeTypePrefixGoogleApp = "application/vnd.google-apps."
)

// FileID identifies a file or folder in Google Drive.
type FileID string

type FileInfo struct {
	Name    string
	ID      FileID
	Size    int64
	Mime    string
	ModTime time.Time
}

func (i FileInfo) IsFolder() bool {
	return i.Mime == mimeTypeGoogleAppFolder
}

func (i FileInfo) IsAppFile() bool {
	return strings.HasPrefix(i.Mime, mimeTypePrefixGoogleApp)
}

func newFileInfo(f *drive.File) FileInfo {
	modTime, _ := time.Parse(time.RFC3339, f.ModifiedTime)
	return FileInfo{
		Name:    f.Name,
		ID:      FileID(f.Id),
		Size:    f.Size,
		Mime:    f.MimeType,
		ModTime: modTime,
	}
}
