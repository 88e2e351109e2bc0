package api

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/document"
	"github.com/gestion-eventos/briefd/pkg/generator"
	"github.com/gestion-eventos/briefd/pkg/metrics"
	"github.com/gestion-eventos/briefd/pkg/store"
)

// errEventsDisabled is returned when no event store is configured.
var errEventsDisabled = errors.New("event store is not enabled")

// generateBriefHandler handles POST /api/v1/briefs.
// The body is the brief input JSON; ?format= overrides the configured format.
func (s *Server) generateBriefHandler(c *gin.Context) {
	start := time.Now()

	gen, err := s.generatorFor(c.Query("format"))
	if err != nil {
		s.fail(c, metrics.SourcePayload, start, err)
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.fail(c, metrics.SourcePayload, start, err)
		return
	}
	res, err := gen.Generate(body)
	if err != nil {
		s.fail(c, metrics.SourcePayload, start, err)
		return
	}
	s.sendDocument(c, metrics.SourcePayload, start, res)
}

// previewBriefHandler handles POST /api/v1/briefs/preview.
// It returns the resolved fields as JSON without producing a document.
func (s *Server) previewBriefHandler(c *gin.Context) {
	start := time.Now()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.fail(c, metrics.SourcePreview, start, err)
		return
	}
	gen := generator.New(document.TextWriter{}, s.renderOpts)
	fields, err := gen.Preview(body)
	if err != nil {
		s.fail(c, metrics.SourcePreview, start, err)
		return
	}
	s.metrics.ObserveGeneration(metrics.SourcePreview, metrics.OutcomeOK, time.Since(start))
	c.JSON(http.StatusOK, &PreviewResponse{
		FileName: generator.FileName(fields.Title, s.extension()),
		Fields:   fields,
	})
}

// eventBriefHandler handles GET /api/v1/events/:id/brief.
// The brief is assembled from the stored event and its approved proposals.
func (s *Server) eventBriefHandler(c *gin.Context) {
	start := time.Now()

	if s.source == nil {
		s.metrics.ObserveGeneration(metrics.SourceEvent, metrics.OutcomeError, time.Since(start))
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, &ErrorResponse{
			Error:     errEventsDisabled.Error(),
			RequestID: c.GetString(requestIDKey),
		})
		return
	}

	gen, err := s.generatorFor(c.Query("format"))
	if err != nil {
		s.fail(c, metrics.SourceEvent, start, err)
		return
	}
	raw, err := s.source.LoadBriefInput(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, metrics.SourceEvent, start, err)
		return
	}
	res, err := gen.GenerateRaw(raw)
	if err != nil {
		s.fail(c, metrics.SourceEvent, start, err)
		return
	}
	s.sendDocument(c, metrics.SourceEvent, start, res)
}

func (s *Server) sendDocument(c *gin.Context, source string, start time.Time, res *generator.Result) {
	s.metrics.ObserveGeneration(source, metrics.OutcomeOK, time.Since(start))
	s.metrics.ObserveDocument(extensionOf(res.FileName), len(res.Data), res.Approved)

	slog.Info("Brief generated",
		"source", source,
		"file_name", res.FileName,
		"approved", res.Approved,
		"bytes", len(res.Data),
		"request_id", c.GetString(requestIDKey))

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.FileName}))
	c.Header("Content-Length", strconv.Itoa(len(res.Data)))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

func (s *Server) fail(c *gin.Context, source string, start time.Time, err error) {
	s.metrics.ObserveGeneration(source, outcomeOf(err), time.Since(start))
	abortWithError(c, err)
}

func (s *Server) extension() string {
	w, err := document.NewWriter(s.format)
	if err != nil {
		return string(document.FormatDOCX)
	}
	return w.Extension()
}

// outcomeOf classifies an error for the generations counter.
func outcomeOf(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, brief.ErrInvalidInput),
		errors.Is(err, document.ErrUnknownFormat),
		errors.As(err, &tooLarge):
		return metrics.OutcomeInvalid
	case errors.Is(err, store.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func extensionOf(fileName string) string {
	return strings.TrimPrefix(filepath.Ext(fileName), ".")
}
