package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
	"github.com/heartmarshall/synphony-backend/internal/synphony"
	"github.com/heartmarshall/synphony-backend/internal/synphony/markup"
	"github.com/heartmarshall/synphony-backend/pkg/ctxutil"
)

type readersService interface {
	SaveSettings(ctx context.Context, input readers.SaveSettingsInput) (*domain.Curriculum, error)
	AddSample(ctx context.Context, input readers.AddSampleInput) (*domain.SampleText, error)
	ListCurricula(ctx context.Context) ([]*domain.Curriculum, error)
	DeleteCurriculum(ctx context.Context, name string) error
	StageWords(ctx context.Context, input readers.StageWordsInput) ([]domain.WordRecord, error)
	StageLetters(ctx context.Context, input readers.StageLettersInput) ([]string, error)
	CheckDecodable(ctx context.Context, input readers.CheckDecodableInput) (markup.DecodableResult, error)
	CheckLeveled(ctx context.Context, input readers.CheckLeveledInput) (markup.LeveledResult, error)
	BookStats(ctx context.Context, input readers.BookStatsInput) (synphony.BookReport, error)
	Sentences(ctx context.Context, input readers.SentencesInput) ([]domain.TextFragment, error)
}

// ReadersHandler serves the curriculum and text analysis endpoints.
type ReadersHandler struct {
	svc          readersService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewReadersHandler creates a ReadersHandler. Request bodies larger than
// maxBodyBytes are rejected.
func NewReadersHandler(svc readersService, logger *slog.Logger, maxBodyBytes int64) *ReadersHandler {
	return &ReadersHandler{svc: svc, log: logger.With("handler", "readers"), maxBodyBytes: maxBodyBytes}
}

// Register adds the API routes to mux.
func (h *ReadersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/curricula", h.ListCurricula)
	mux.HandleFunc("PUT /api/v1/curricula/{name}/settings", h.SaveSettings)
	mux.HandleFunc("DELETE /api/v1/curricula/{name}", h.DeleteCurriculum)
	mux.HandleFunc("POST /api/v1/curricula/{name}/samples", h.AddSample)
	mux.HandleFunc("GET /api/v1/curricula/{name}/stages/{stage}/words", h.StageWords)
	mux.HandleFunc("GET /api/v1/curricula/{name}/stages/{stage}/letters", h.StageLetters)
	mux.HandleFunc("POST /api/v1/curricula/{name}/check/decodable", h.CheckDecodable)
	mux.HandleFunc("POST /api/v1/curricula/{name}/check/leveled", h.CheckLeveled)
	mux.HandleFunc("POST /api/v1/curricula/{name}/book-stats", h.BookStats)
	mux.HandleFunc("POST /api/v1/sentences", h.Sentences)
}

type curriculumResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Settings  json.RawMessage `json:"settings,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type sampleRequest struct {
	FileName string `json:"file_name"`
	Kind     string `json:"kind"`
	Content  string `json:"content"`
}

type sampleResponse struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	Kind      string    `json:"kind"`
	Length    int       `json:"length"`
	UpdatedAt time.Time `json:"updated_at"`
}

type decodableRequest struct {
	Stage    int              `json:"stage"`
	Elements []markup.Element `json:"elements"`
}

type leveledRequest struct {
	Level    int              `json:"level"`
	Elements []markup.Element `json:"elements"`
}

type bookStatsRequest struct {
	Level int      `json:"level"`
	Pages []string `json:"pages"`
}

type sentencesRequest struct {
	Text       string `json:"text"`
	ExtraPunct string `json:"extra_punct"`
}

type wordsResponse struct {
	Stage int                 `json:"stage"`
	Sort  string              `json:"sort"`
	Words []domain.WordRecord `json:"words"`
}

type lettersResponse struct {
	Stage   int      `json:"stage"`
	Letters []string `json:"letters"`
}

type sentencesResponse struct {
	Fragments []domain.TextFragment `json:"fragments"`
}

// ListCurricula handles GET /api/v1/curricula.
func (h *ReadersHandler) ListCurricula(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCurricula(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]curriculumResponse, len(list))
	for i, c := range list {
		resp[i] = toCurriculumResponse(c, false)
	}
	writeJSON(w, http.StatusOK, resp)
}

// SaveSettings handles PUT /api/v1/curricula/{name}/settings. The body is
// the settings document itself.
func (h *ReadersHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	ctx := h.curriculumCtx(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.bodyError(w, err)
		return
	}

	cur, err := h.svc.SaveSettings(ctx, readers.SaveSettingsInput{
		Name:     r.PathValue("name"),
		Settings: body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCurriculumResponse(cur, true))
}

// DeleteCurriculum handles DELETE /api/v1/curricula/{name}.
func (h *ReadersHandler) DeleteCurriculum(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCurriculum(h.curriculumCtx(r), r.PathValue("name")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddSample handles POST /api/v1/curricula/{name}/samples.
func (h *ReadersHandler) AddSample(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if !h.decode(w, r, &req) {
		return
	}

	sample, err := h.svc.AddSample(h.curriculumCtx(r), readers.AddSampleInput{
		Curriculum: r.PathValue("name"),
		FileName:   req.FileName,
		Kind:       domain.SampleKind(req.Kind),
		Content:    req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sampleResponse{
		ID:        sample.ID,
		FileName:  sample.FileName,
		Kind:      sample.Kind.String(),
		Length:    len(sample.Content),
		UpdatedAt: sample.UpdatedAt,
	})
}

// StageWords handles GET /api/v1/curricula/{name}/stages/{stage}/words.
func (h *ReadersHandler) StageWords(w http.ResponseWriter, r *http.Request) {
	stage, ok := pathInt(w, r, "stage")
	if !ok {
		return
	}
	sort := domain.SortType(r.URL.Query().Get("sort"))

	words, err := h.svc.StageWords(h.curriculumCtx(r), readers.StageWordsInput{
		Curriculum: r.PathValue("name"),
		Stage:      stage,
		Sort:       sort,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if sort == "" {
		sort = domain.SortAlphabetic
	}
	writeJSON(w, http.StatusOK, wordsResponse{Stage: stage, Sort: string(sort), Words: words})
}

// StageLetters handles GET /api/v1/curricula/{name}/stages/{stage}/letters.
func (h *ReadersHandler) StageLetters(w http.ResponseWriter, r *http.Request) {
	stage, ok := pathInt(w, r, "stage")
	if !ok {
		return
	}

	letters, err := h.svc.StageLetters(h.curriculumCtx(r), readers.StageLettersInput{
		Curriculum: r.PathValue("name"),
		Stage:      stage,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lettersResponse{Stage: stage, Letters: letters})
}

// CheckDecodable handles POST /api/v1/curricula/{name}/check/decodable.
func (h *ReadersHandler) CheckDecodable(w http.ResponseWriter, r *http.Request) {
	var req decodableRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.svc.CheckDecodable(h.curriculumCtx(r), readers.CheckDecodableInput{
		Curriculum: r.PathValue("name"),
		Stage:      req.Stage,
		Elements:   req.Elements,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CheckLeveled handles POST /api/v1/curricula/{name}/check/leveled.
func (h *ReadersHandler) CheckLeveled(w http.ResponseWriter, r *http.Request) {
	var req leveledRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.svc.CheckLeveled(h.curriculumCtx(r), readers.CheckLeveledInput{
		Curriculum: r.PathValue("name"),
		Level:      req.Level,
		Elements:   req.Elements,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// BookStats handles POST /api/v1/curricula/{name}/book-stats.
func (h *ReadersHandler) BookStats(w http.ResponseWriter, r *http.Request) {
	var req bookStatsRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.svc.BookStats(h.curriculumCtx(r), readers.BookStatsInput{
		Curriculum: r.PathValue("name"),
		Level:      req.Level,
		Pages:      req.Pages,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Sentences handles POST /api/v1/sentences.
func (h *ReadersHandler) Sentences(w http.ResponseWriter, r *http.Request) {
	var req sentencesRequest
	if !h.decode(w, r, &req) {
		return
	}

	fragments, err := h.svc.Sentences(r.Context(), readers.SentencesInput{
		Text:       req.Text,
		ExtraPunct: req.ExtraPunct,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sentencesResponse{Fragments: fragments})
}

func (h *ReadersHandler) curriculumCtx(r *http.Request) context.Context {
	return ctxutil.WithCurriculum(r.Context(), domain.NormalizeName(r.PathValue("name")))
}

func (h *ReadersHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes)).Decode(dst); err != nil {
		h.bodyError(w, err)
		return false
	}
	return true
}

func (h *ReadersHandler) bodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation error",
			Fields: []fieldError{{Field: name, Message: "must be an integer"}},
		})
		return 0, false
	}
	return n, true
}

func toCurriculumResponse(c *domain.Curriculum, withSettings bool) curriculumResponse {
	resp := curriculumResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if withSettings && json.Valid(c.Settings) {
		resp.Settings = json.RawMessage(c.Settings)
	}
	return resp
}
