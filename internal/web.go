package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// โครงสร้าง HTTP-server (หน้าเว็บและ API)
type Web struct {
	Cfg      *Config
	Services *Services
}

func NewWeb(cfg *Config, svc *Services) *Web {
	return &Web{
		Cfg:      cfg,
		Services: svc,
	}
}

func (w *Web) Router() *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", uuid.NewString())
		c.Next()
	})

	// API

	// รับคำร้องพร้อมไฟล์แนบ
	r.POST("/api/requests", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(400, IntakeResponse{Success: false, Message: "ไม่สามารถอ่านข้อมูลฟอร์มได้"})
			return
		}

		sub := &Submission{
			Name:      c.PostForm("name"),
			Phone:     c.PostForm("phone"),
			Address:   c.PostForm("address"),
			Message:   c.PostForm("message"),
			Latitude:  c.PostForm("latitude"),
			Longitude: c.PostForm("longitude"),
		}

		created, err := w.Services.CreateSubmission(sub, form.File["mediaFiles"])
		if err != nil {
			if errors.Is(err, ErrTooManyFiles) {
				c.JSON(400, IntakeResponse{
					Success: false,
					Message: fmt.Sprintf("แนบไฟล์ได้สูงสุด %d ไฟล์", MaxFilesCount),
				})
				return
			}
			log.Printf("create submission: %v", err)
			c.JSON(500, IntakeResponse{Success: false, Message: "เกิดข้อผิดพลาดในการบันทึกคำร้อง"})
			return
		}

		c.JSON(200, IntakeResponse{Success: true, Message: "รับคำร้องเรียบร้อย", Data: created})
	})

	// ดูคำร้องทั้งหมด (ต้องมี token)
	r.GET("/api/requests", func(c *gin.Context) {
		if !w.auth(c.Query("token")) {
			c.String(401, "unauthorized")
			return
		}

		subs, _, err := w.Services.ListSubmissions()
		if err != nil {
			log.Printf("list submissions: %v", err)
			c.String(500, "read error")
			return
		}
		c.JSON(200, subs)
	})

	// ผู้ดูแล

	r.GET("/admin", func(c *gin.Context) {
		if !w.auth(c.Query("token")) {
			c.String(401, "unauthorized")
			return
		}

		subs, skipped, err := w.Services.ListSubmissions()
		if err != nil {
			log.Printf("admin view: %v", err)
			c.String(500, "read error")
			return
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(200)
		if err := adminTmpl.Execute(c.Writer, newAdminPage(subs, skipped)); err != nil {
			log.Printf("admin template: %v", err)
		}
	})

	r.GET("/export", func(c *gin.Context) {
		if !w.auth(c.Query("token")) {
			c.String(401, "unauthorized")
			return
		}

		name := fmt.Sprintf("export_requests_%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		if err := w.Services.ExportCSV(c.Writer); err != nil {
			c.String(500, err.Error())
			return
		}
	})

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// กัน 404 ใน browser
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})

	// Static
	r.Static("/uploads", w.Services.Media.Dir())
	r.Static("/static", w.Cfg.FrontendDir)

	// path อื่นๆ (ยกเว้น /api, /uploads) = หน้าฟอร์มประชาชน
	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/uploads/") {
			c.String(404, "not found")
			return
		}
		c.File(filepath.Join(w.Cfg.FrontendDir, "index.html"))
	})

	return r
}

func (w *Web) StartHTTP(ctx context.Context) error {
	addr := ":" + w.Cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: w.Router(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Backend started on http://localhost%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ตรวจสอบ token ของผู้ดูแล
func (w *Web) auth(token string) bool {
	if token == "" {
		return false
	}
	if w.Cfg.APIToken != "" && token == w.Cfg.APIToken {
		return true
	}
	if w.Cfg.AdminSecret != "" && token == w.Cfg.AdminSecret {
		return true
	}
	return false
}
