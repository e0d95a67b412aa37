package internal

import (
	"fmt"
	"html/template"
	"time"
)

type adminRow struct {
	Index     int
	Sub       Submission
	Coords    string
	CreatedAt string
}

type adminPage struct {
	Total   int
	Skipped int
	Rows    []adminRow
}

func newAdminPage(subs []Submission, skipped int) adminPage {
	page := adminPage{Total: len(subs), Skipped: skipped}
	for i, sub := range subs {
		page.Rows = append(page.Rows, adminRow{
			Index:     i + 1,
			Sub:       sub,
			Coords:    fmt.Sprintf("%s, %s", sub.Latitude, sub.Longitude),
			CreatedAt: formatLocalTime(sub.CreatedAt),
		})
	}
	return page
}

func formatLocalTime(iso string) string {
	t, err := time.Parse("2006-01-02T15:04:05.000Z", iso)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, iso); err != nil {
			return iso
		}
	}
	return t.Local().Format("2/1/2006 15:04:05")
}

var adminTmpl = template.Must(template.New("admin").Parse(`<html>
  <head>
    <meta charset="utf-8" />
    <title>Admin - จัดการคำร้อง</title>
    <style>
      body { font-family: sans-serif; margin: 2em; background: #f8f9fa; }
      h2 { color: #2c3e50; }
      .admin-header { display: flex; justify-content: space-between; align-items: center; }
      .admin-header .count { color: #555; font-size: 1em; }
      table { border-collapse: collapse; width: 100%; background: #fff; }
      th, td { border: 1px solid #aaa; padding: 6px 10px; }
      th { background: #e9ecef; }
      tr:nth-child(even) { background: #f6f6f6; }
      a { color: #007bff; text-decoration: none; }
      a:hover { text-decoration: underline; }
    </style>
  </head>
  <body>
    <div class="admin-header">
      <h2>ระบบผู้ดูแล - รายการคำร้องที่ได้รับ</h2>
      <span class="count">ทั้งหมด {{.Total}} รายการ{{if .Skipped}} (ข้าม {{.Skipped}} บรรทัดที่อ่านไม่ได้){{end}}</span>
    </div>
    <table>
      <thead>
        <tr>
          <th>#</th>
          <th>ชื่อ</th>
          <th>เบอร์โทร</th>
          <th>ที่อยู่</th>
          <th>ข้อความ</th>
          <th>พิกัด</th>
          <th>ไฟล์แนบ</th>
          <th>เวลาที่ส่ง</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>{{.Index}}</td>
          <td>{{.Sub.Name}}</td>
          <td>{{.Sub.Phone}}</td>
          <td>{{.Sub.Address}}</td>
          <td>{{.Sub.Message}}</td>
          <td>{{.Coords}}</td>
          <td>{{if .Sub.Files}}{{range .Sub.Files}}<a href="{{.URL}}" target="_blank">{{.OriginalName}}</a><br/>{{end}}{{else}}-{{end}}</td>
          <td>{{.CreatedAt}}</td>
        </tr>
        {{else}}
        <tr><td colspan="8" align="center">ยังไม่มีข้อมูล</td></tr>
        {{end}}
      </tbody>
    </table>
  </body>
</html>
`))
