package drivepath

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Jumpaku/go-elempath/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const (
	driveFileFields  = "parents,id,name,mimeType,size,modifiedTime"
	driveFilesFields = "nextPageToken,files(parents,id,name,mimeType,size,modifiedTime)"
)

func (r *Resolver) findByID(ctx context.Context, fileID string) (file *drive.File, found bool, err error) {
	r.logger.WithField("file_id", fileID).Debug("getting drive file")
	file, err = r.service.Files.Get(fileID).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx).
		Do()
	if err != nil {
		var gErr *googleapi.Error
		if stderrors.As(err, &gErr) {
			if gErr.Code == http.StatusNotFound {
				return nil, false, nil
			}
		}
		return nil, false, errors.NewAPIError("failed to get files", err)
	}
	return file, true, nil
}

func (r *Resolver) findAllIn(ctx context.Context, parentID string) (files []*drive.File, err error) {
	q := fmt.Sprintf("'%s' in parents and trashed = false", escapeQuery(parentID))
	return r.queryFiles(ctx, q)
}

func (r *Resolver) findAllByNameIn(ctx context.Context, parentID string, name string) (files []*drive.File, err error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(name), escapeQuery(parentID))
	return r.queryFiles(ctx, q)
}

func (r *Resolver) queryFiles(ctx context.Context, query string) (results []*drive.File, err error) {
	r.logger.WithFields(logrus.Fields{"query": query}).Debug("listing drive files")
	err = r.service.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(query).
		Fields(driveFilesFields).
		Pages(ctx, func(list *drive.FileList) error {
			results = append(results, list.Files...)
			return nil
		})
	if err != nil {
		return nil, errors.NewAPIError("failed to query files", err)
	}
	return results, nil
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}
