package internal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"
)

var ErrTooManyFiles = errors.New("too many files")

type Services struct {
	Log      *LogStore
	Media    *MediaStore
	Notifier *Notifier
}

func NewServices(store *LogStore, media *MediaStore, notifier *Notifier) *Services {
	return &Services{Log: store, Media: media, Notifier: notifier}
}

// CreateSubmission รับคำร้องหนึ่งรายการ: เก็บไฟล์แนบ เติมเวลา แล้ว append ลง log
// ตรวจจำนวนไฟล์ก่อนเก็บ จะได้ไม่มีไฟล์ค้างบน disk เมื่อคำร้องถูกปฏิเสธ
// ถ้า append ล้มเหลวหลังเก็บไฟล์แล้ว ไฟล์จะไม่ถูกลบ (ยอมรับตามขอบเขตระบบ)
func (s *Services) CreateSubmission(sub *Submission, files []*multipart.FileHeader) (*Submission, error) {
	if len(files) > MaxFilesCount {
		return nil, ErrTooManyFiles
	}

	sub.Files = make([]Attachment, 0, len(files))
	for _, fh := range files {
		att, err := s.Media.Save(fh)
		if err != nil {
			return nil, fmt.Errorf("save attachment %s: %w", fh.Filename, err)
		}
		sub.Files = append(sub.Files, att)
	}

	sub.CreatedAt = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	if err := s.Log.Append(sub); err != nil {
		return nil, fmt.Errorf("append submission: %w", err)
	}

	log.Printf("New submission from %q (%d file(s))", sub.Name, len(sub.Files))
	s.Notifier.SubmissionReceived(sub)

	return sub, nil
}

func (s *Services) ListSubmissions() ([]Submission, int, error) {
	return s.Log.ReadAll()
}

// ExportCSV เขียนคำร้องทั้งหมดเป็น CSV ลง writer ที่ให้มา
func (s *Services) ExportCSV(w io.Writer) error {
	subs, _, err := s.Log.ReadAll()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{
		"name", "phone", "address", "message", "latitude", "longitude", "files", "created_at",
	})

	for _, sub := range subs {
		urls := make([]string, 0, len(sub.Files))
		for _, f := range sub.Files {
			urls = append(urls, f.URL)
		}

		_ = cw.Write([]string{
			sub.Name,
			sub.Phone,
			sub.Address,
			sub.Message,
			sub.Latitude,
			sub.Longitude,
			strings.Join(urls, ";"),
			sub.CreatedAt,
		})
	}

	log.Printf("CSV export done: %d row(s)", len(subs))
	return nil
}
