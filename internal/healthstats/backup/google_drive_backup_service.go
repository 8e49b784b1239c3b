package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/2beens/healthstats/internal/healthstats/export"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
)

const (
	rootBackupsFolderName = "healthstats-backup"

	// DefaultWeeksToBackup is how many completed weeks a single run covers.
	DefaultWeeksToBackup = 4
)

// weekExporter builds the self-contained weekly payload, the reports
// service implements it.
type weekExporter interface {
	ExportWeek(ctx context.Context, date string) (export.WeekPayload, error)
}

type GoogleDriveBackupService struct {
	service         *drive.Service
	exporter        weekExporter
	backupsFolderId string
	shareWithEmail  string
}

func NewGoogleDriveBackupService(
	ctx context.Context,
	credentialsJson []byte,
	exporter weekExporter,
	shareWithEmail string,
) (*GoogleDriveBackupService, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJson, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse drive credentials: %w", err)
	}

	// outgoing upload calls get traced too
	httpClient := oauth2.NewClient(ctx, creds.TokenSource)
	httpClient.Transport = otelhttp.NewTransport(httpClient.Transport)

	// https://github.com/googleapis/google-api-go-client/blob/master/drive/v3/drive-gen.go
	driveService, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	rootFolderQuery := fmt.Sprintf("mimeType = 'application/vnd.google-apps.folder' and trashed = false and name = '%s'", rootBackupsFolderName)
	backupsFolder, err := driveService.
		Files.List().
		Q(rootFolderQuery).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve files: %w", err)
	}

	backupsFolderId := ""
	if len(backupsFolder.Files) >= 1 {
		rbf := backupsFolder.Files[0]
		if len(backupsFolder.Files) > 1 {
			log.Printf("attention: found %d root backups folders, will take the first one: %s", len(backupsFolder.Files), rbf.Id)
		}
		backupsFolderId = rbf.Id
	}

	s := &GoogleDriveBackupService{
		service:        driveService,
		exporter:       exporter,
		shareWithEmail: shareWithEmail,
	}

	if backupsFolderId == "" {
		log.Println("root backups folder not found, recreating ...")
		backupsFolderId, err = s.createRootBackupsFolder()
		if err != nil {
			return nil, fmt.Errorf("failed to create root backups folder: %w", err)
		}
		log.Printf("new root backups folder created: %s", backupsFolderId)
	} else {
		log.Printf("found backups folder ID: %s", backupsFolderId)
	}

	s.backupsFolderId = backupsFolderId

	return s, nil
}

// Reinit drops the whole backups folder and uploads everything again.
func (s *GoogleDriveBackupService) Reinit(ctx context.Context, baseTime time.Time, weeksToBackup int) (uploaded int, err error) {
	ctx, span := tracing.GlobalBackupTracer.Start(ctx, "backup.reinit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	log.Println("weekly exports backup reinit starting ...")

	err = s.service.Files.
		Delete(s.backupsFolderId).
		Do()
	if err != nil {
		return 0, err
	}

	backupsFolderId, err := s.createRootBackupsFolder()
	if err != nil {
		return 0, fmt.Errorf("failed to create root backups folder: %w", err)
	}

	log.Printf("new root backups folder created: %s", backupsFolderId)

	s.backupsFolderId = backupsFolderId

	return s.DoBackup(ctx, baseTime, weeksToBackup)
}

// DoBackup uploads the weekly export payload for each of the last
// weeksToBackup completed weeks, skipping weeks already present in the
// backups folder. Completed weeks never change, so reruns are cheap.
// Returns the number of uploaded files.
func (s *GoogleDriveBackupService) DoBackup(ctx context.Context, baseTime time.Time, weeksToBackup int) (uploaded int, err error) {
	ctx, span := tracing.GlobalBackupTracer.Start(ctx, "backup.doBackup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	currentBackupFiles, err := s.getBackupFiles(s.backupsFolderId)
	if err != nil {
		return 0, err
	}

	presentFileNames := make(map[string]bool, len(currentBackupFiles))
	if len(currentBackupFiles) == 0 {
		log.Println("backups folder empty, full backup follows ...")
	} else {
		log.Println("current backup files:")
		for _, file := range currentBackupFiles {
			log.Printf(" -- %s (%s)\n", file.Name, file.Id)
			presentFileNames[file.Name] = true
		}
	}

	for _, weekStart := range weekStartsToBackup(baseTime, weeksToBackup) {
		payload, err := s.exporter.ExportWeek(ctx, weekStart)
		if err != nil {
			return uploaded, fmt.Errorf("failed to build week %s payload: %w", weekStart, err)
		}

		fileName := payload.FileName()
		if presentFileNames[fileName] {
			log.Printf("%s: already backed up, skipping", fileName)
			continue
		}

		if err := s.uploadWeekPayload(payload); err != nil {
			return uploaded, fmt.Errorf("failed to backup week %s: %w", weekStart, err)
		}
		uploaded++
	}

	if uploaded == 0 {
		log.Println("no new weekly exports to backup, done")
	} else {
		log.Printf("%d weekly exports backed up", uploaded)
	}

	return uploaded, nil
}

// weekStartsToBackup lists the Mondays of the last weeksToBackup completed
// weeks, most recent first. The running week is left out, its export would
// change with every new day log.
func weekStartsToBackup(baseTime time.Time, weeksToBackup int) []string {
	currentWeekStart, _ := stats.WeekBounds(baseTime.Format(stats.DateLayout))
	weekStarts := make([]string, 0, weeksToBackup)
	for i := 1; i <= weeksToBackup; i++ {
		weekStarts = append(weekStarts, stats.AddDays(currentWeekStart, -7*i))
	}
	return weekStarts
}

func (s *GoogleDriveBackupService) uploadWeekPayload(payload export.WeekPayload) error {
	fileName := payload.FileName()

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal payload: %w", fileName, err)
	}

	log.Printf("%s: creating file on google drive ...", fileName)
	fileMeta := &drive.File{
		Name: fileName,
		// https://developers.google.com/drive/api/v3/mime-types
		MimeType: "application/vnd.google-apps.file",
		Parents:  []string{s.backupsFolderId},
	}

	backupFile, err := s.service.
		Files.Create(fileMeta).
		Fields("id, parents").
		Media(bytes.NewReader(payloadJson)).
		Do()
	if err != nil {
		return fmt.Errorf("%s: failed to create backup file: %w", fileName, err)
	}

	if s.shareWithEmail != "" {
		permissionId, err := s.updateFilePermission(backupFile.Id)
		if err != nil {
			return fmt.Errorf("%s: failed to create additional permission: %s", fileName, err)
		}
		log.Printf("%s: backup file [permission %s] saved: %s", fileName, permissionId, backupFile.Id)
	} else {
		log.Printf("%s: backup file saved: %s", fileName, backupFile.Id)
	}

	return nil
}

func (s *GoogleDriveBackupService) createRootBackupsFolder() (string, error) {
	backupsFolderMeta := &drive.File{
		Name:     rootBackupsFolderName,
		MimeType: "application/vnd.google-apps.folder",
	}

	bfRes, err := s.service.
		Files.Create(backupsFolderMeta).
		Fields("id").
		Do()
	if err != nil {
		return "", err
	}

	if s.shareWithEmail != "" {
		if pId, err := s.updateFilePermission(bfRes.Id); err != nil {
			return bfRes.Id, fmt.Errorf("failed to create additional permission for root backup folder: %s", err)
		} else {
			log.Printf("permission %s created for root backup folder %s", pId, bfRes.Id)
		}
	}

	return bfRes.Id, nil
}

func (s *GoogleDriveBackupService) updateFilePermission(fileId string) (string, error) {
	permission := &drive.Permission{
		EmailAddress: s.shareWithEmail,
		Type:         "user",
		Role:         "reader",
	}

	createdPermission, err := s.service.Permissions.
		Create(fileId, permission).
		Do()
	if err != nil {
		return "", err
	}

	return createdPermission.Id, nil
}

func (s *GoogleDriveBackupService) getBackupFiles(backupsFolderId string) ([]*drive.File, error) {
	backupFilesQuery := fmt.Sprintf("'%s' in parents and mimeType != 'application/vnd.google-apps.folder' and trashed = false", backupsFolderId)
	backups, err := s.service.
		Files.List().
		Q(backupFilesQuery).
		Fields("files(id, name)").
		Do()
	if err != nil {
		return nil, err
	}

	return backups.Files, nil
}
