package internal

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// จำนวนไฟล์แนบสูงสุดต่อหนึ่งคำร้อง
const MaxFilesCount = 10

// MediaStore เก็บไฟล์แนบลงโฟลเดอร์ uploads และให้เข้าถึงผ่าน /uploads/<filename>
type MediaStore struct {
	dir       string
	urlPrefix string
}

func NewMediaStore(dir string) *MediaStore {
	return &MediaStore{dir: dir, urlPrefix: "/uploads/"}
}

func (m *MediaStore) Dir() string {
	return m.dir
}

// Save เขียนไฟล์ลง disk ด้วยชื่อไม่ซ้ำรูปแบบ <millis>-<random>-<ชื่อเดิม>
func (m *MediaStore) Save(fh *multipart.FileHeader) (Attachment, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return Attachment{}, fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return Attachment{}, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	original := filepath.Base(fh.Filename)
	name := uniqueName(original)

	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return Attachment{}, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return Attachment{}, fmt.Errorf("save file: %w", err)
	}

	return Attachment{
		Filename:     name,
		OriginalName: original,
		URL:          m.urlPrefix + name,
	}, nil
}

func uniqueName(original string) string {
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), original)
}
