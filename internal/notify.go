package internal

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier ส่งสรุปคำร้องใหม่เข้า chat ของผู้ดูแลผ่าน Telegram
// เป็น optional: ถ้าไม่ตั้งค่า token/chat id จะได้ nil และทุก method เป็น no-op
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(cfg *Config) *Notifier {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		log.Println("Telegram notifications disabled (TELEGRAM_TOKEN / TELEGRAM_CHAT_ID not set)")
		return nil
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Printf("Telegram notifications disabled: %v", err)
		return nil
	}
	api.Debug = false

	log.Printf("Telegram notifications enabled (@%s)", api.Self.UserName)
	return &Notifier{api: api, chatID: cfg.TelegramChatID}
}

func (n *Notifier) SubmissionReceived(sub *Submission) {
	if n == nil {
		return
	}

	text := fmt.Sprintf(
		"มีคำร้องใหม่\n\nชื่อ: %s\nเบอร์โทร: %s\nที่อยู่: %s\n\n%s\n\nพิกัด: %s, %s\nไฟล์แนบ: %d ไฟล์",
		sub.Name, sub.Phone, sub.Address, sub.Message, sub.Latitude, sub.Longitude, len(sub.Files),
	)

	if _, err := n.api.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		log.Printf("Telegram notify failed: %v", err)
	}
}
