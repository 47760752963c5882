package api

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"whisperd/internal/config"
	"whisperd/internal/health"
	"whisperd/internal/model"
	"whisperd/internal/transcribe"
	"whisperd/internal/utils"
	"whisperd/internal/whisper"
)

// Server holds the request-handling dependencies. The model handle is loaded
// once at startup and injected here read-only; handlers never mutate
// process-wide state.
type Server struct {
	cfg      *config.Config
	svc      *transcribe.Service
	reporter *health.Reporter
}

// NewServer creates the API server around the shared model handle.
func NewServer(cfg *config.Config, svc *transcribe.Service, reporter *health.Reporter) *Server {
	return &Server{cfg: cfg, svc: svc, reporter: reporter}
}

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(r *gin.Engine, s *Server) {
	r.GET("/health", s.healthCheck)
	r.GET("/models", s.listModels)
	r.POST("/transcribe", s.transcribeAudio)
	r.POST("/transcribe-realtime", s.transcribeRealtime)
}

// healthCheck reports model-load state. Always 200: the payload carries the
// status, probes decide what to do with "unhealthy".
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, s.reporter.Report())
}

// listModels returns the static model catalog plus the active configuration.
func (s *Server) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, model.ModelsResponse{
		AvailableModels: whisper.Catalog(),
		CurrentModel:    s.cfg.ModelSize,
		Device:          s.cfg.Device,
	})
}

// transcribeAudio handles the primary transcription path.
func (s *Server) transcribeAudio(c *gin.Context) {
	file, err := formAudioFile(c, "audio_file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "audio_file is required. Error: "+err.Error())
		return
	}

	data, err := readMultipartFile(file)
	if err != nil {
		log.Printf("[Transcribe] Failed to read upload: %v", err)
		utils.Error(c, http.StatusBadRequest, "failed to read audio file: "+err.Error())
		return
	}

	language := c.DefaultPostForm("language", "tl")
	contentType := file.Header.Get("Content-Type")

	result, err := s.svc.Transcribe(c.Request.Context(), data, contentType, language)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// transcribeRealtime handles short streaming chunks on the low-latency path.
func (s *Server) transcribeRealtime(c *gin.Context) {
	file, err := formAudioFile(c, "audio_chunk")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "audio_chunk is required. Error: "+err.Error())
		return
	}

	data, err := readMultipartFile(file)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "failed to read audio chunk: "+err.Error())
		return
	}

	language := c.DefaultPostForm("language", "tl")

	result, err := s.svc.TranscribeRealtime(c.Request.Context(), data, language)
	if err != nil {
		s.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writeServiceError maps the transcription error taxonomy onto HTTP codes.
func (s *Server) writeServiceError(c *gin.Context, err error) {
	var invalid *transcribe.InvalidInputError
	switch {
	case errors.Is(err, transcribe.ErrModelNotLoaded):
		utils.Error(c, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &invalid):
		utils.Error(c, http.StatusBadRequest, invalid.Reason)
	default:
		log.Printf("[API] Transcription error: %v", err)
		utils.Error(c, http.StatusInternalServerError, err.Error())
	}
}

// formAudioFile fetches the multipart file under the expected field name,
// falling back to the generic names some clients send.
func formAudioFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err == nil {
		return file, nil
	}
	for _, alt := range []string{"audio", "file"} {
		if file, altErr := c.FormFile(alt); altErr == nil {
			return file, nil
		}
	}
	return nil, err
}

func readMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
