package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tiketera/payment-extractor/internal/extractor"
	"github.com/tiketera/payment-extractor/internal/models"
	"github.com/tiketera/payment-extractor/internal/parser"
	"github.com/tiketera/payment-extractor/internal/writer"
)

const version = "1.0.0"

// StatementResponse is the JSON response from /api/statement.
type StatementResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	DateRange    *string              `json:"dateRange"`
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	CSV          string               `json:"csv,omitempty"`
}

// ReceiptResponse is the JSON response from /api/receipt.
type ReceiptResponse struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error,omitempty"`
	Receipt *models.ReceiptRecord `json:"receipt,omitempty"`
}

// Handler holds the HTTP handlers for the extraction API.
type Handler struct {
	log        *zap.Logger
	statements *parser.StatementParser
}

// NewHandler builds the handler, validating the statement column layout once.
func NewHandler(log *zap.Logger) (*Handler, error) {
	sp, err := parser.NewStatementParser()
	if err != nil {
		return nil, err
	}
	return &Handler{log: log, statements: sp}, nil
}

// Register sets up the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Use(h.requestTracing)
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/statement", h.handleStatement)
	app.Post("/api/receipt", h.handleReceipt)
}

// requestTracing tags every request with an ID and logs its outcome.
func (h *Handler) requestTracing(c *fiber.Ctx) error {
	id := uuid.NewString()
	c.Locals("requestID", id)
	c.Set("X-Request-ID", id)

	start := time.Now()
	err := c.Next()

	h.log.Info("request",
		zap.String("requestId", id),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
	return err
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// handleStatement accepts a multipart statement PDF (form field "file", with
// an optional "password" field) and returns the extracted transactions.
// A wrong password is the one failure the engine refuses to work around.
func (h *Handler) handleStatement(c *fiber.Ctx) error {
	data, err := formFileBytes(c, "file")
	if err != nil {
		return statementError(c, fiber.StatusBadRequest, err.Error())
	}

	pages, err := extractor.ExtractTokens(data, c.FormValue("password"))
	if err != nil {
		if errors.Is(err, extractor.ErrWrongPassword) {
			return statementError(c, fiber.StatusUnauthorized, "Wrong statement password.")
		}
		return statementError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
	}

	result := h.statements.Parse(pages)

	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{IncludeHeader: true}
	if err := csvWriter.Write(&csvBuf, result); err != nil {
		return statementError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	if c.Query("format") == "csv" {
		c.Set("Content-Type", "text/csv")
		c.Set("Content-Disposition", `attachment; filename="transactions.csv"`)
		return c.Send(csvBuf.Bytes())
	}

	return c.JSON(StatementResponse{
		Success:      true,
		DateRange:    result.DateRange,
		Transactions: result.Transactions,
		Count:        len(result.Transactions),
		CSV:          csvBuf.String(),
	})
}

// handleReceipt accepts a multipart receipt image (form field "file"),
// runs OCR over it, and returns the extracted receipt fields. All fields
// are independently nullable; the caller decides what counts as "enough".
func (h *Handler) handleReceipt(c *fiber.Ctx) error {
	data, err := formFileBytes(c, "file")
	if err != nil {
		return receiptError(c, fiber.StatusBadRequest, err.Error())
	}

	eng, err := extractor.NewEngine()
	if err != nil {
		return receiptError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	defer eng.Close()

	text, err := eng.Recognize(data)
	if err != nil {
		return receiptError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	rec := parser.ParseReceipt(text)
	return c.JSON(ReceiptResponse{Success: true, Receipt: &rec})
}

func formFileBytes(c *fiber.Ctx, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("no file uploaded; use form field %q", field)
	}
	return readMultipartFile(fh)
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}

func statementError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(StatementResponse{Success: false, Error: msg})
}

func receiptError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ReceiptResponse{Success: false, Error: msg})
}
