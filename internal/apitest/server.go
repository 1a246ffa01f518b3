// Package apitest provides an in-process stand-in for the records backend,
// exposing the same endpoint families and response envelope over a real TCP
// listener so client, service and integration tests run against actual HTTP.
package apitest

import (
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/noah-isme/campus-admin-go/internal/dto"
)

// Server hosts the fake backend for the lifetime of a test.
type Server struct {
	app      *fiber.App
	db       *gorm.DB
	listener net.Listener
}

// NewServer starts the fake backend on a loopback port with a private
// in-memory database.
func NewServer() (*Server, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&dto.Student{}, &dto.Course{}, &dto.Teacher{}, &dto.Grade{}, &dto.Attendance{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	server := &Server{app: app, db: db, listener: listener}
	server.register(app.Group("/api"))

	go func() {
		_ = app.Listener(listener)
	}()

	return server, nil
}

// URL returns the base URL clients should be configured with.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String() + "/api"
}

// Close shuts the fake backend down.
func (s *Server) Close() {
	_ = s.app.Shutdown()
}

func sendData(c *fiber.Ctx, status int, data interface{}, message string) error {
	payload := fiber.Map{}
	if data != nil {
		payload["data"] = data
	}
	if message != "" {
		payload["message"] = message
	}
	return c.Status(status).JSON(payload)
}

func sendList(c *fiber.Ctx, data interface{}, total int) error {
	return c.JSON(fiber.Map{"data": data, "total": total})
}

func sendError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func generatedCode(prefix string) string {
	id := uuid.NewString()
	return prefix + id[:8]
}
