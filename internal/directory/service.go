// Package directory orchestrates the full analysis pipeline: locate the
// directory folder and spreadsheet in Drive, extract business records,
// attach classified images from each business's folder, and validate
// completeness.
package directory

import (
	"context"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/directory-cli/internal/config"
	"github.com/sells-group/directory-cli/internal/images"
	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/internal/sheet"
	"github.com/sells-group/directory-cli/internal/validator"
	"github.com/sells-group/directory-cli/pkg/drive"
)

// Service runs directory analyses against Google Drive.
type Service struct {
	client    drive.Client
	publisher *images.Publisher

	folderName string
	sheetName  string

	mainFolder *drive.File
	sheetFile  *drive.File
}

// NewService creates a directory service. Initialize must be called before
// any analysis method.
func NewService(client drive.Client, driveCfg config.DriveConfig, imagesCfg config.ImagesConfig) *Service {
	return &Service{
		client:     client,
		publisher:  images.NewPublisher(client, imagesCfg.RatePerSecond),
		folderName: driveCfg.FolderName,
		sheetName:  driveCfg.SheetName,
	}
}

// Initialize verifies Drive access and locates the main directory folder
// and the businesses spreadsheet inside it.
func (s *Service) Initialize(ctx context.Context) error {
	if err := s.client.TestConnection(ctx); err != nil {
		return eris.Wrap(err, "directory: drive connection")
	}

	folder, err := s.findMainFolder(ctx)
	if err != nil {
		return err
	}
	s.mainFolder = folder

	file, err := s.findSheetFile(ctx)
	if err != nil {
		return err
	}
	s.sheetFile = file

	zap.L().Info("directory initialized",
		zap.String("folder", folder.Name),
		zap.String("folder_id", folder.ID),
		zap.String("sheet", file.Name),
		zap.String("sheet_mime", file.MimeType))
	return nil
}

// findMainFolder searches for the configured folder name. An exact
// case-insensitive match wins; otherwise the first contains-match is used.
func (s *Service) findMainFolder(ctx context.Context) (*drive.File, error) {
	folders, err := s.client.SearchFiles(ctx, drive.SearchOptions{
		Query:      s.folderName,
		MimeType:   drive.FolderMimeType,
		MaxResults: 25,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "directory: search folder %q", s.folderName)
	}
	if len(folders) == 0 {
		return nil, eris.Errorf("directory: folder %q not found", s.folderName)
	}

	for i, f := range folders {
		if strings.EqualFold(f.Name, s.folderName) {
			return &folders[i], nil
		}
	}
	zap.L().Warn("no exact folder name match, using first result",
		zap.String("wanted", s.folderName),
		zap.String("using", folders[0].Name))
	return &folders[0], nil
}

// findSheetFile locates the businesses spreadsheet inside the main folder.
// Native Google Sheets are preferred, then CSV, then XLSX uploads.
func (s *Service) findSheetFile(ctx context.Context) (*drive.File, error) {
	files, err := s.client.SearchFiles(ctx, drive.SearchOptions{
		Query:      s.sheetName,
		FolderID:   s.mainFolder.ID,
		MaxResults: 25,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "directory: search sheet %q", s.sheetName)
	}

	for _, mime := range []string{
		drive.SpreadsheetMimeType,
		"text/csv",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	} {
		for i, f := range files {
			if f.MimeType == mime {
				return &files[i], nil
			}
		}
	}
	return nil, eris.Errorf("directory: spreadsheet %q not found in %q", s.sheetName, s.mainFolder.Name)
}

// FetchGrid downloads the spreadsheet and parses it into a raw cell grid.
// Native sheets go through the CSV export endpoint; uploaded files are
// downloaded and parsed by mime type.
func (s *Service) FetchGrid(ctx context.Context) ([][]string, error) {
	if s.sheetFile == nil {
		return nil, eris.New("directory: not initialized")
	}

	if s.sheetFile.MimeType == drive.SpreadsheetMimeType {
		csvText, err := s.client.ExportCSV(ctx, s.sheetFile.ID)
		if err != nil {
			return nil, eris.Wrap(err, "directory: export sheet")
		}
		return sheet.GridFromCSV(strings.NewReader(csvText))
	}

	data, err := s.client.Download(ctx, s.sheetFile.ID)
	if err != nil {
		return nil, eris.Wrap(err, "directory: download sheet")
	}
	if strings.Contains(s.sheetFile.MimeType, "spreadsheetml") {
		return sheet.GridFromXLSXBytes(data)
	}
	return sheet.GridFromCSV(strings.NewReader(string(data)))
}

// ListBusinessFolders returns the per-business image folders under the main
// directory folder.
func (s *Service) ListBusinessFolders(ctx context.Context) ([]drive.File, error) {
	if s.mainFolder == nil {
		return nil, eris.New("directory: not initialized")
	}
	folders, err := s.client.SearchFiles(ctx, drive.SearchOptions{
		FolderID:   s.mainFolder.ID,
		MimeType:   drive.FolderMimeType,
		MaxResults: 1000,
	})
	if err != nil {
		return nil, eris.Wrap(err, "directory: list business folders")
	}
	return folders, nil
}

// BusinessImages returns the image files in one business folder.
func (s *Service) BusinessImages(ctx context.Context, folderID string) ([]drive.File, error) {
	files, err := s.client.SearchFiles(ctx, drive.SearchOptions{
		FolderID:   folderID,
		MaxResults: 1000,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "directory: list folder %s", folderID)
	}
	return images.FilterImages(files), nil
}

// ErrFolderNotFound is returned when no image folder matches a business name.
var ErrFolderNotFound = eris.New("directory: business folder not found")

// BusinessImagesByName finds a business's image folder by name and returns
// its classified, published images.
func (s *Service) BusinessImagesByName(ctx context.Context, name string) ([]model.ClassifiedImage, model.ImageFolder, error) {
	folders, err := s.ListBusinessFolders(ctx)
	if err != nil {
		return nil, model.ImageFolder{}, err
	}

	folder := matchFolder(folders, name)
	if folder == nil {
		return nil, model.ImageFolder{}, ErrFolderNotFound
	}
	info := model.ImageFolder{ID: folder.ID, Name: folder.Name, Found: true}

	files, err := s.BusinessImages(ctx, folder.ID)
	if err != nil {
		return nil, info, err
	}
	return s.publisher.Process(ctx, name, files), info, nil
}

// LoadBusinesses extracts every business from the spreadsheet and attaches
// its classified, published images. A business whose folder is missing or
// unreadable gets zero images; only structural failures return an error.
func (s *Service) LoadBusinesses(ctx context.Context) ([]model.Business, error) {
	grid, err := s.FetchGrid(ctx)
	if err != nil {
		return nil, err
	}
	records := sheet.Extract(grid)

	folders, err := s.ListBusinessFolders(ctx)
	if err != nil {
		return nil, err
	}

	businesses := make([]model.Business, 0, len(records))
	for _, record := range records {
		b := model.Business{BusinessRecord: record}

		folder := matchFolder(folders, record.Name)
		if folder == nil {
			zap.L().Debug("no image folder for business", zap.String("business", record.Name))
			businesses = append(businesses, b)
			continue
		}
		b.ImageFolder = model.ImageFolder{ID: folder.ID, Name: folder.Name, Found: true}

		files, err := s.BusinessImages(ctx, folder.ID)
		if err != nil {
			zap.L().Warn("skipping images for business",
				zap.String("business", record.Name),
				zap.Error(err))
			businesses = append(businesses, b)
			continue
		}
		b.Images = s.publisher.Process(ctx, record.Name, files)
		businesses = append(businesses, b)
	}
	return businesses, nil
}

// Analyze loads every business and builds the completeness report.
func (s *Service) Analyze(ctx context.Context) (validator.Report, error) {
	businesses, err := s.LoadBusinesses(ctx)
	if err != nil {
		return validator.Report{}, err
	}
	return validator.BuildReport(businesses), nil
}

// PublishSummary counts the work done by PublishAll.
type PublishSummary struct {
	Folders int `json:"folders"`
	Images  int `json:"images"`
}

// PublishAll re-runs the image publisher over every business folder,
// granting public read access to any file that lost it.
func (s *Service) PublishAll(ctx context.Context) (PublishSummary, error) {
	folders, err := s.ListBusinessFolders(ctx)
	if err != nil {
		return PublishSummary{}, err
	}

	var (
		mu      sync.Mutex
		summary PublishSummary
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, folder := range folders {
		g.Go(func() error {
			files, err := s.BusinessImages(ctx, folder.ID)
			if err != nil {
				zap.L().Warn("skipping folder",
					zap.String("folder", folder.Name),
					zap.Error(err))
				return nil
			}
			published := s.publisher.Process(ctx, folder.Name, files)

			mu.Lock()
			summary.Folders++
			summary.Images += len(published)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}

// matchFolder finds the folder for a business name: exact case-insensitive
// first, then sanitized substring in either direction. Folder names in
// practice drift from the spreadsheet ("Acme Co." vs "acme co images").
func matchFolder(folders []drive.File, name string) *drive.File {
	for i, f := range folders {
		if strings.EqualFold(f.Name, name) {
			return &folders[i]
		}
	}

	want := sanitizeName(name)
	if want == "" {
		return nil
	}
	for i, f := range folders {
		got := sanitizeName(f.Name)
		if got == "" {
			continue
		}
		if strings.Contains(got, want) || strings.Contains(want, got) {
			return &folders[i]
		}
	}
	return nil
}

// sanitizeName lowercases and strips everything but letters and digits.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
