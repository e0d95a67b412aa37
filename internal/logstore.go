package internal

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogStore — ที่เก็บคำร้องแบบ append-only (NDJSON หนึ่งบรรทัดต่อหนึ่งคำร้อง)
// ทุกการเขียนผ่าน mutex ตัวเดียว จึงไม่มีการเขียนบรรทัดซ้อนกัน
type LogStore struct {
	path string

	mu sync.Mutex
	f  *os.File
}

func OpenLogStore(path string) (*LogStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &LogStore{path: path, f: f}, nil
}

func (s *LogStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.f.Close()
}

// Append เขียนคำร้องหนึ่งรายการเป็นหนึ่งบรรทัด เขียนทั้งบรรทัดด้วย Write ครั้งเดียว
func (s *LogStore) Append(sub *Submission) error {
	line, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.f.Write(line); err != nil {
		return fmt.Errorf("append submission: %w", err)
	}
	return nil
}

// ReadAll คืนคำร้องทั้งหมดตามลำดับที่เขียน บรรทัดที่ parse ไม่ได้จะถูกข้าม
// และนับจำนวนไว้เป็นค่า diagnostic; ไฟล์ที่ยังไม่มีถือว่าว่างเปล่า ไม่ใช่ error
func (s *LogStore) ReadAll() ([]Submission, int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Submission{}, 0, nil
		}
		return nil, 0, fmt.Errorf("read log file: %w", err)
	}

	subs := make([]Submission, 0)
	skipped := 0

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var sub Submission
		if err := json.Unmarshal([]byte(line), &sub); err != nil {
			skipped++
			continue
		}
		subs = append(subs, sub)
	}

	if skipped > 0 {
		log.Printf("log store: skipped %d malformed line(s) in %s", skipped, s.path)
	}

	return subs, skipped, nil
}
