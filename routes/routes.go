package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Afriels/presensi-new/handlers"
	"github.com/Afriels/presensi-new/qrcode"
	"github.com/Afriels/presensi-new/repository"
)

// Register merangkai semua rute HTTP. Repositori dibangun di sini dari
// handle database yang disuntikkan.
func Register(e *echo.Echo, db *gorm.DB) {
	// ===== Handlers =====
	cls := handlers.NewClassHandler(repository.NewClassRepository(db))
	sub := handlers.NewSubjectHandler(repository.NewSubjectRepository(db))
	tch := handlers.NewTeacherHandler(repository.NewTeacherRepository(db))
	std := handlers.NewStudentHandler(repository.NewStudentRepository(db))
	tms := handlers.NewAttendanceTimeHandler(repository.NewAttendanceTimeRepository(db))
	rec := handlers.NewAttendanceRecordHandler(repository.NewAttendanceRecordRepository(db))
	sch := handlers.NewScheduleHandler(repository.NewScheduleRepository(db))
	att := handlers.NewAttendanceHandler(repository.NewAttendanceRepository(db))
	rpt := handlers.NewReportHandler(repository.NewAttendanceRecordRepository(db))
	qr := handlers.NewQRHandler(qrcode.NewBuilder())
	dash := handlers.NewDashboardHandler(db)

	e.GET("/health", handlers.Health)
	e.GET("/dashboard/summary", dash.Summary)

	// ===== Master data =====
	e.GET("/classes", cls.List)
	e.GET("/classes/:id", cls.Get)
	e.POST("/classes", cls.Create)
	e.PUT("/classes/:id", cls.Update)
	e.DELETE("/classes/:id", cls.Delete)

	e.GET("/subjects", sub.List)
	e.GET("/subjects/:id", sub.Get)
	e.POST("/subjects", sub.Create)
	e.PUT("/subjects/:id", sub.Update)
	e.DELETE("/subjects/:id", sub.Delete)

	e.GET("/teachers", tch.List)
	e.GET("/teachers/:id", tch.Get)
	e.POST("/teachers", tch.Create)
	e.PUT("/teachers/:id", tch.Update)
	e.DELETE("/teachers/:id", tch.Delete)

	e.GET("/students", std.List)
	e.GET("/students/:id", std.Get)
	e.POST("/students", std.Create)
	e.PUT("/students/:id", std.Update)
	e.DELETE("/students/:id", std.Delete)

	e.GET("/schedules", sch.List)
	e.GET("/schedules/:id", sch.Get)
	e.POST("/schedules", sch.Create)
	e.PUT("/schedules/:id", sch.Update)
	e.DELETE("/schedules/:id", sch.Delete)

	// ===== Presensi =====
	e.GET("/attendance-times", tms.List)
	e.POST("/attendance-times", tms.Create)
	e.PUT("/attendance-times/:id", tms.Update)
	e.DELETE("/attendance-times/:id", tms.Delete)

	e.GET("/attendance-records", rec.List)
	e.GET("/attendance-records/range", rec.Range)
	e.POST("/attendance-records", rec.Create)
	e.PUT("/attendance-records/:id", rec.Update)
	e.DELETE("/attendance-records/:id", rec.Delete)

	// Absensi lama (per jadwal)
	e.GET("/attendance", att.List)
	e.GET("/attendance/by-date", att.ByDate)
	e.POST("/attendance", att.Create)
	e.PUT("/attendance/:id", att.Update)
	e.DELETE("/attendance/:id", att.Delete)

	// ===== Laporan & QR =====
	e.GET("/reports/export", rpt.Export)

	e.POST("/qr/select", qr.Select)
	e.POST("/qr/generate", qr.Generate)
	e.GET("/qr/image", qr.Image)
	e.GET("/qr/download", qr.Download)
	e.POST("/qr/reset", qr.Reset)
}
