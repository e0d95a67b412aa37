package internal

// Attachment — ไฟล์แนบหนึ่งไฟล์ของคำร้อง
type Attachment struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	URL          string `json:"url"`
}

// Submission — คำร้องหนึ่งรายการ พิกัดเก็บเป็น string ตามที่ฟอร์มส่งมา
// ฝั่ง server ไม่แปลงและไม่ตรวจสอบค่า
type Submission struct {
	Name      string       `json:"name"`
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	Message   string       `json:"message"`
	Latitude  string       `json:"latitude"`
	Longitude string       `json:"longitude"`
	Files     []Attachment `json:"files"`
	CreatedAt string       `json:"createdAt"`
}

type IntakeResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *Submission `json:"data,omitempty"`
}
