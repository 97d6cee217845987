package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aipsms/ai-engine/models"
	"github.com/aipsms/ai-engine/storage"
	"github.com/aipsms/ai-engine/utils"
)

// ResumeParser builds a profile from an uploaded document.
type ResumeParser interface {
	Parse(ctx context.Context, filename string, content []byte) (*models.ResumeProfile, error)
}

// ResumeHandler handles resume upload and analysis
type ResumeHandler struct {
	parser    ResumeParser
	store     storage.UploadStore
	extractor *utils.DocumentExtractor
	maxBytes  int64
	logger    *zap.Logger
}

// NewResumeHandler creates a new resume handler. store may be nil to skip archiving.
func NewResumeHandler(parser ResumeParser, store storage.UploadStore, maxBytes int64, logger *zap.Logger) *ResumeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeHandler{
		parser:    parser,
		store:     store,
		extractor: utils.NewDocumentExtractor(),
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// AnalyzeResume parses an uploaded resume
// @Summary Analyze resume
// @Description Upload a PDF or DOCX resume and extract email, phone, skills and education
// @Tags Resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (.pdf or .docx)"
// @Success 200 {object} models.AnalyzeResumeResponse "Parsed resume"
// @Failure 400 {object} models.ErrorResponse "Invalid upload"
// @Failure 413 {object} models.ErrorResponse "Upload too large"
// @Failure 429 {object} models.ErrorResponse "Too many uploads"
// @Failure 500 {object} models.ErrorResponse "Parsing failed"
// @Router /analyze-resume [post]
func (h *ResumeHandler) AnalyzeResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "Upload too large", err)
			return
		}
		respondError(c, http.StatusBadRequest, "A resume file is required in the 'file' field", err)
		return
	}

	if !h.extractor.IsSupportedFormat(header.Filename) {
		respondError(c, http.StatusBadRequest, "Invalid file format. Only PDF and DOCX are supported.",
			fmt.Errorf("%w: %s", utils.ErrUnsupportedFormat, header.Filename))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read resume file", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read resume file", err)
		return
	}

	ctx := c.Request.Context()
	profile, err := h.parser.Parse(ctx, header.Filename, content)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("resume parsing failed", zap.String("filename", header.Filename), zap.Error(err))
		}
		respondError(c, status, "Failed to parse resume", err)
		return
	}

	resp := models.AnalyzeResumeResponse{
		Filename: header.Filename,
		Data:     *profile,
	}

	if h.store != nil {
		location, err := h.store.Save(ctx, header.Filename, content)
		if err != nil {
			h.logger.Warn("resume not archived", zap.String("filename", header.Filename), zap.Error(err))
		} else {
			resp.Stored = location
		}
	}

	h.logger.Info("resume analyzed",
		zap.String("filename", header.Filename),
		zap.Int("bytes", len(content)),
		zap.Int("skills", len(profile.Skills)),
	)
	c.JSON(http.StatusOK, resp)
}
