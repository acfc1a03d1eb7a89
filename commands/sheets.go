package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
)

type version struct {
	revision string
	modified time.Time
}

func getSpreadsheetID(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func getVersion(gdrive *drive.Service, fileID string, ctx context.Context) (*version, error) {
	page := ""
	latest := version{
		revision: "",
		modified: time.Time{},
	}

	for {
		call := drive.NewRevisionsService(gdrive).List(fileID)
		if page != "" {
			call.PageToken(page)
		}

		revisions, err := call.Context(ctx).Do()
		if err != nil {
			return nil, err
		}

		for _, revision := range revisions.Revisions {
			datetime, err := time.Parse("2006-01-02T15:04:05.999Z", revision.ModifiedTime)
			if err != nil {
				return nil, err
			}

			if latest.modified.Before(datetime) {
				latest.revision = revision.Id
				latest.modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision for file ID %s", fileID)
	}

	return &latest, nil
}

// The last synchronized revision of a spreadsheet is recorded under workdir so that
// an unchanged spreadsheet is not reloaded on the next run.
func cachedRevision(workdir, fileID string) string {
	b, err := os.ReadFile(filepath.Join(workdir, fmt.Sprintf("%s.revision", fileID)))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(b))
}

func storeRevision(workdir, fileID, revision string) error {
	if err := os.MkdirAll(workdir, 0770); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(workdir, fmt.Sprintf("%s.revision", fileID)), []byte(revision+"\n"), 0660)
}
